package guides

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Clean removes every file in dir matching pattern and returns the removed
// paths. dir is created when missing. Directories are never removed.
func Clean(dir, pattern string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	stale, err := findFiles(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}

	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("remove artifact: %w", err)
		}
	}

	return stale, nil
}

// findFiles returns the regular files under dir matching pattern, sorted.
func findFiles(dir, pattern string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob pattern: %w", err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		path := filepath.Join(dir, filepath.FromSlash(m))
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)

	return files, nil
}
