package codeblock

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

func render(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	md := goldmark.New(
		goldmark.WithExtensions(New(opts...)),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(src), &buf))
	return buf.String()
}

func TestRender_FencedBlockWithLanguage(t *testing.T) {
	out := render(t, "```rust\nfn main() {}\n```\n")
	require.Equal(t, "<code-block>fn main() {}\n</code-block>\n", out)
}

func TestRender_FencedBlockWithoutLanguage(t *testing.T) {
	out := render(t, "```\nhello\n```\n")
	require.Equal(t, "<code-block>hello\n</code-block>\n", out)
}

func TestRender_IndentedBlock(t *testing.T) {
	out := render(t, "Intro\n\n    x := 1\n")
	require.Equal(t, "<p>Intro</p>\n<code-block>x := 1\n</code-block>\n", out)
}

func TestRender_ConsecutiveBlocksArePairedInOrder(t *testing.T) {
	out := render(t, "```go\nfirst\n```\n```\nsecond\n```\n")
	require.Equal(t, "<code-block>first\n</code-block>\n<code-block>second\n</code-block>\n", out)

	require.Equal(t, 2, strings.Count(out, "<code-block>"))
	require.Equal(t, 2, strings.Count(out, "</code-block>"))
	require.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestRender_EscapesBlockText(t *testing.T) {
	out := render(t, "```html\n<b>a & b</b>\n```\n")
	require.Equal(t, "<code-block>&lt;b&gt;a &amp; b&lt;/b&gt;\n</code-block>\n", out)
}

func TestRender_NoCodeBlocksMatchesDefaultRendering(t *testing.T) {
	src := "# Title\n\nSome *emphasis* and `inline code`.\n\n- one\n- two\n\n[link](https://example.com)\n"

	var plain bytes.Buffer
	require.NoError(t, goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe())).Convert([]byte(src), &plain))

	out := render(t, src)
	require.Equal(t, plain.String(), out)
	require.NotContains(t, out, DefaultMarkers.Open)
	require.NotContains(t, out, DefaultMarkers.Close)
}

func TestRender_CustomMarkers(t *testing.T) {
	out := render(t, "```sh\nls\n```\n", WithMarkers(Markers{Open: "[[code]]", Close: "[[/code]]"}))
	require.Equal(t, "[[code]]ls\n[[/code]]\n", out)
}

func TestRender_StateClearedAfterDocument(t *testing.T) {
	state := &State{}
	state.Enter("stale")

	// An unterminated fence is closed by the end of the document.
	out := render(t, "```go\nx := 1\n", WithState(state))
	require.Equal(t, "<code-block>x := 1\n</code-block>\n", out)
	require.False(t, state.Active())
}

func TestRender_HighlightingFallsBackToMarkers(t *testing.T) {
	out := render(t, "```no-such-language\nplain\n```\n", WithHighlighting("github"))
	require.Equal(t, "<code-block>plain\n</code-block>\n", out)
}

func TestRender_HighlightingHandlesKnownLanguage(t *testing.T) {
	out := render(t, "```go\npackage main\n```\n\n    indented\n", WithHighlighting("github"))
	require.Contains(t, out, "<pre")
	require.NotContains(t, out, "<code-block>package")
	require.Contains(t, out, "<code-block>indented\n</code-block>\n")
}

func TestState(t *testing.T) {
	var s State
	lang, open := s.Language()
	require.False(t, open)
	require.Empty(t, lang)

	s.Enter("rust")
	lang, open = s.Language()
	require.True(t, open)
	require.Equal(t, "rust", lang)

	s.Exit()
	require.False(t, s.Active())

	s.Enter("")
	require.True(t, s.Active())

	s.Reset()
	require.False(t, s.Active())

	// An exit with no open block leaves the state clear.
	s.Exit()
	require.False(t, s.Active())
}
