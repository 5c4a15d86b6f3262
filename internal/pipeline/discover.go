package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover returns the immediate (non-recursive) children of dir whose
// extension matches one of exts (configured without a leading dot,
// matched case-insensitively). Paths are sorted lexicographically so
// processing order is deterministic within a run.
func Discover(dir string, exts []string) ([]string, error) {
	want := make(map[string]bool, len(exts))
	for _, ext := range exts {
		want["."+strings.ToLower(ext)] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if want[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
