package main

import (
	"flag"
	"log"
	"os"

	"github.com/kuzik/guidegen/internal/config"
	"github.com/kuzik/guidegen/internal/guides"
)

func main() {
	var (
		configPath string
		source     string
		output     string
		verbose    bool
	)

	flag.StringVar(&configPath, "config", "", "Path to YAML config (defaults apply when empty)")
	flag.StringVar(&source, "source", "", "Directory containing markdown guides")
	flag.StringVar(&output, "output", "", "Directory receiving generated HTML")
	flag.BoolVar(&verbose, "v", false, "Log removed and rendered files")
	flag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if source != "" {
		cfg.Source = source
	}
	if output != "" {
		cfg.Output = output
	}

	var logger *log.Logger
	if verbose {
		logger = log.New(os.Stderr, "guidegen: ", 0)
	}

	g, err := guides.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to prepare generator: %v", err)
	}
	if _, err := g.Run(); err != nil {
		log.Fatalf("Failed to generate guides: %v", err)
	}
}

// loadConfig returns the defaults when no path is given.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
