package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed defaults/*.md
var defaultGuides embed.FS

// WriteDefaults copies the bundled guides into dir, skipping any file that
// already exists so local edits survive restarts. It returns the number of
// files written.
func WriteDefaults(dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating content directory: %w", err)
	}

	entries, err := fs.ReadDir(defaultGuides, "defaults")
	if err != nil {
		return 0, fmt.Errorf("reading bundled guides: %w", err)
	}

	written := 0
	for _, entry := range entries {
		target := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(target); err == nil {
			continue
		}

		data, err := defaultGuides.ReadFile("defaults/" + entry.Name())
		if err != nil {
			return written, fmt.Errorf("reading bundled guide %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return written, fmt.Errorf("writing guide %s: %w", entry.Name(), err)
		}
		written++
	}
	return written, nil
}
