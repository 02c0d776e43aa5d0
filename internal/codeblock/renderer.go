package codeblock

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Markers is the literal token pair written around a code block's text.
type Markers struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// DefaultMarkers are the tokens the site's highlighting layer looks for.
var DefaultMarkers = Markers{
	Open:  "<code-block>",
	Close: "</code-block>",
}

// Renderer replaces the default <pre><code> markup of fenced and indented code
// blocks with Markers. The block's lines are written escaped, exactly as the
// default renderer writes them.
type Renderer struct {
	html.Config
	markers Markers
	state   *State
}

// NewRenderer returns a code block renderer that tracks blocks in state.
func NewRenderer(markers Markers, state *State, opts ...html.Option) renderer.NodeRenderer {
	if state == nil {
		state = &State{}
	}
	r := &Renderer{
		Config:  html.NewConfig(),
		markers: markers,
		state:   state,
	}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

// SetOption implements renderer.SetOptioner so the markdown instance's HTML
// options (unsafe, xhtml) reach this renderer too.
func (r *Renderer) SetOption(name renderer.OptionName, value any) {
	r.Config.SetOption(name, value)
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *Renderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindDocument, r.renderDocument)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *Renderer) renderDocument(_ util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.state.Reset()
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	return r.renderBlock(w, source, node, nil, entering)
}

func (r *Renderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.FencedCodeBlock)
	return r.renderBlock(w, source, n, n.Language(source), entering)
}

func (r *Renderer) renderBlock(w util.BufWriter, source []byte, node ast.Node, language []byte, entering bool) (ast.WalkStatus, error) {
	if entering {
		r.state.Enter(string(language))
		_, _ = w.WriteString(r.markers.Open)
		r.writeLines(w, source, node)
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString(r.markers.Close)
	_ = w.WriteByte('\n')
	r.state.Exit()
	return ast.WalkContinue, nil
}

func (r *Renderer) writeLines(w util.BufWriter, source []byte, node ast.Node) {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		r.Writer.RawWrite(w, line.Value(source))
	}
}
