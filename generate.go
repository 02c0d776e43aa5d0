// Package guidegen renders the markdown guides in guides/ to HTML fragments in
// generated_guides/, wrapping code blocks in <code-block> markers for the
// site's highlighter. Run it with go generate before building the site.
package guidegen

//go:generate go run ./cmd/guidegen
