// Package guides regenerates the HTML artifacts for a directory of markdown guides.
//
// A run first removes every artifact from the output directory, then converts
// each source guide, one at a time, into <output>/<name><ext>. The first error
// stops the run; artifacts already written are left in place.
package guides

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kuzik/guidegen/internal/config"
	"github.com/kuzik/guidegen/internal/markdown"
	"github.com/kuzik/guidegen/internal/templates"
)

// Generator converts guides according to a Config. It is not safe for
// concurrent use.
type Generator struct {
	cfg       config.Config
	converter *markdown.Converter
	layout    *templates.Layout
	logger    *log.Logger
}

// New validates cfg and prepares a generator. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g := &Generator{
		cfg:       cfg,
		converter: markdown.NewConverter(cfg.MarkdownOptions()),
		logger:    logger,
	}

	if cfg.Layout != "" {
		layout, err := templates.LoadLayout(cfg.Layout)
		if err != nil {
			return nil, err
		}
		g.layout = layout
	}

	return g, nil
}

// Run cleans the output directory and converts every source guide. It returns
// the written artifact paths in source order.
func (g *Generator) Run() ([]string, error) {
	removed, err := Clean(g.cfg.Output, "*"+g.cfg.Extension)
	if err != nil {
		return nil, err
	}
	for _, path := range removed {
		g.logger.Printf("Removed: %s", path)
	}

	sources, err := g.Sources()
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(sources))
	seen := make(map[string]string, len(sources))
	for _, src := range sources {
		out := ArtifactPath(g.cfg.Output, src, g.cfg.Extension)
		if prev, ok := seen[out]; ok {
			return written, fmt.Errorf("guides %s and %s both map to %s", prev, src, out)
		}
		seen[out] = src

		if err := g.ConvertFile(src, out); err != nil {
			return written, err
		}
		written = append(written, out)
	}

	return written, nil
}

// Sources lists the guides matched by the configured pattern, sorted by path.
func (g *Generator) Sources() ([]string, error) {
	sources, err := findFiles(g.cfg.Source, g.cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}
	return sources, nil
}

// ConvertFile renders the guide at src and writes it to out, replacing any
// existing file.
func (g *Generator) ConvertFile(src, out string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read guide: %w", err)
	}

	html, err := g.converter.ToHTMLBytes(content)
	if err != nil {
		return fmt.Errorf("convert %s: %w", src, err)
	}

	if g.layout != nil {
		html, err = g.layout.Render(stem(src), html)
		if err != nil {
			return fmt.Errorf("wrap %s: %w", src, err)
		}
	}

	if err := os.WriteFile(out, html, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	g.logger.Printf("Rendered: %s", out)
	return nil
}

// ArtifactPath derives the artifact path for a source guide: the guide's base
// name with its extension replaced by ext, inside outputDir.
func ArtifactPath(outputDir, src, ext string) string {
	return filepath.Join(outputDir, stem(src)+ext)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
