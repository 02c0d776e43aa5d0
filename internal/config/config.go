// Package config loads the generator's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/kuzik/guidegen/internal/codeblock"
	"github.com/kuzik/guidegen/internal/markdown"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Highlight configures optional server-side highlighting.
type Highlight struct {
	Style string `yaml:"style"`
}

// Config describes one generator run.
type Config struct {
	Source     string            `yaml:"source"`
	Output     string            `yaml:"output"`
	Pattern    string            `yaml:"pattern"`
	Extension  string            `yaml:"extension"`
	Markers    codeblock.Markers `yaml:"markers"`
	GFM        bool              `yaml:"gfm"`
	HeadingIDs bool              `yaml:"heading_ids"`
	Math       bool              `yaml:"math"`
	Highlight  Highlight         `yaml:"highlight"`
	Layout     string            `yaml:"layout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Source:    "guides",
		Output:    "generated_guides",
		Pattern:   "*.md",
		Extension: ".html",
		Markers:   codeblock.DefaultMarkers,
	}
}

// Load reads path and overlays it on Default. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Source) == "":
		return fmt.Errorf("%w: source directory is empty", ErrInvalid)
	case strings.TrimSpace(c.Output) == "":
		return fmt.Errorf("%w: output directory is empty", ErrInvalid)
	case !doublestar.ValidatePattern(c.Pattern):
		return fmt.Errorf("%w: bad source pattern %q", ErrInvalid, c.Pattern)
	case len(c.Extension) < 2 || c.Extension[0] != '.' || strings.ContainsAny(c.Extension, `/\*?[`):
		return fmt.Errorf("%w: bad artifact extension %q", ErrInvalid, c.Extension)
	case c.Markers.Open == "" || c.Markers.Close == "":
		return fmt.Errorf("%w: code block markers must both be set", ErrInvalid)
	}
	return nil
}

// MarkdownOptions maps the config onto converter options.
func (c Config) MarkdownOptions() markdown.Options {
	return markdown.Options{
		Markers:        c.Markers,
		GFM:            c.GFM,
		HeadingIDs:     c.HeadingIDs,
		Math:           c.Math,
		HighlightStyle: c.Highlight.Style,
	}
}
