// Package markdown converts guide markdown to HTML fragments.
package markdown

import (
	"bytes"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/kuzik/guidegen/internal/codeblock"
)

// Options selects the markdown dialect and code block handling.
type Options struct {
	Markers codeblock.Markers

	// GFM enables tables, strikethrough, autolinks and task lists.
	GFM bool

	// HeadingIDs adds generated id attributes to headings.
	HeadingIDs bool

	// Math enables $inline$ and $$display$$ MathJax spans.
	Math bool

	// HighlightStyle renders fenced blocks server-side with this chroma style.
	// Empty keeps the marker pair for every block.
	HighlightStyle string
}

// DefaultOptions returns plain CommonMark with the default markers.
func DefaultOptions() Options {
	return Options{Markers: codeblock.DefaultMarkers}
}

// Converter handles markdown to HTML conversion.
type Converter struct {
	md goldmark.Markdown
}

// DefaultConverter returns a converter using DefaultOptions.
func DefaultConverter() *Converter {
	return NewConverter(DefaultOptions())
}

// NewConverter creates a converter for the given options.
func NewConverter(opts Options) *Converter {
	if opts.Markers == (codeblock.Markers{}) {
		opts.Markers = codeblock.DefaultMarkers
	}
	blockOpts := []codeblock.Option{codeblock.WithMarkers(opts.Markers)}
	if opts.HighlightStyle != "" {
		blockOpts = append(blockOpts, codeblock.WithHighlighting(opts.HighlightStyle))
	}
	extensions := []goldmark.Extender{codeblock.New(blockOpts...)}
	if opts.GFM {
		extensions = append(extensions, extension.GFM)
	}
	if opts.Math {
		extensions = append(extensions, mathjax.MathJax)
	}

	var parserOpts []parser.Option
	if opts.HeadingIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	return &Converter{md: md}
}

// ToHTML converts markdown content to HTML.
func (c *Converter) ToHTML(src []byte) (string, error) {
	b, err := c.ToHTMLBytes(src)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToHTMLBytes converts markdown content to HTML bytes.
func (c *Converter) ToHTMLBytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Convert is a convenience function using the default converter.
func Convert(src []byte) (string, error) {
	return DefaultConverter().ToHTML(src)
}
