// Package templates wraps rendered guide fragments in an optional page layout.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// Page is the data a layout is executed with.
type Page struct {
	Title   string
	Content template.HTML
}

// Layout is a parsed html/template page.
type Layout struct {
	tmpl *template.Template
}

// LoadLayout reads and parses a layout file.
func LoadLayout(path string) (*Layout, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	return ParseLayout(filepath.Base(path), string(content))
}

// ParseLayout parses layout text.
func ParseLayout(name, text string) (*Layout, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", name, err)
	}
	return &Layout{tmpl: tmpl}, nil
}

// Render executes the layout with an already rendered HTML fragment.
func (l *Layout) Render(title string, fragment []byte) ([]byte, error) {
	var buf bytes.Buffer
	data := Page{
		Title:   title,
		Content: template.HTML(fragment),
	}
	if err := l.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute layout %s: %w", l.tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
