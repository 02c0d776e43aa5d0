// Package codeblock rewrites code block markup during goldmark rendering.
//
// goldmark renders by walking the parsed document and calling the node renderer
// registered for each node kind once on entry and once on exit. This package
// registers renderers for code blocks that write a literal marker pair in place
// of <pre><code>...</code></pre>, leaving every other node to the default HTML
// renderer. A single State follows the walk: it is reset when the document is
// entered, set when a block is entered (remembering its language tag) and
// cleared when the block is exited.
package codeblock

import (
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

const (
	// rendererPriority beats the default HTML renderer (1000).
	rendererPriority = 100
	// fallbackPriority sits between goldmark-highlighting (200) and the default
	// HTML renderer so fenced blocks go to the highlighter.
	fallbackPriority = 300
)

// Option configures the extension.
type Option func(*extender)

// WithMarkers sets the token pair written around each block.
func WithMarkers(m Markers) Option {
	return func(e *extender) {
		e.markers = m
	}
}

// WithState shares a State with the caller.
func WithState(s *State) Option {
	return func(e *extender) {
		e.state = s
	}
}

// WithHighlighting renders fenced blocks with chroma using the named style.
// Blocks chroma has no lexer for keep the marker pair.
func WithHighlighting(style string) Option {
	return func(e *extender) {
		e.style = style
	}
}

type extender struct {
	markers Markers
	state   *State
	style   string
}

// New returns a goldmark extension that wraps code blocks in markers.
func New(opts ...Option) goldmark.Extender {
	e := &extender{markers: DefaultMarkers}
	for _, opt := range opts {
		opt(e)
	}
	if e.state == nil {
		e.state = &State{}
	}
	return e
}

// Extend implements goldmark.Extender.
func (e *extender) Extend(m goldmark.Markdown) {
	priority := rendererPriority
	if e.style != "" {
		highlighting.NewHighlighting(
			highlighting.WithStyle(e.style),
			highlighting.WithWrapperRenderer(Wrapper(e.markers, e.state)),
		).Extend(m)
		priority = fallbackPriority
	}
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewRenderer(e.markers, e.state), priority),
	))
}

// Wrapper returns a goldmark-highlighting wrapper that writes markers around
// fenced blocks the highlighter could not handle.
func Wrapper(markers Markers, state *State) highlighting.WrapperRenderer {
	return func(w util.BufWriter, ctx highlighting.CodeBlockContext, entering bool) {
		if ctx.Highlighted() {
			return
		}
		if entering {
			lang, _ := ctx.Language()
			state.Enter(string(lang))
			_, _ = w.WriteString(markers.Open)
			return
		}
		_, _ = w.WriteString(markers.Close)
		_ = w.WriteByte('\n')
		state.Exit()
	}
}
