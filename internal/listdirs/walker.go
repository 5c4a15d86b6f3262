// Package listdirs collects the unique subdirectories of directories whose
// name starts with a configured letter set.
package listdirs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Collect walks the tree under searchPath. Every directory strictly below
// searchPath whose base name starts (case-insensitively) with one of
// letters contributes all of its nested subdirectories to the result. The
// returned paths are unique and sorted. Unreadable directories are
// reported through onError (when non-nil) and skipped; only a failure to
// read searchPath itself is returned as an error.
func Collect(searchPath string, letters []string, onError func(path string, err error)) ([]string, error) {
	root := filepath.Clean(searchPath)

	prefixes := make([]string, 0, len(letters))
	for _, l := range letters {
		if l != "" {
			prefixes = append(prefixes, strings.ToLower(l))
		}
	}

	var dirs []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if onError != nil {
				onError(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", searchPath, walkErr)
	}

	matches := func(name string) bool {
		lower := strings.ToLower(name)
		for _, p := range prefixes {
			if strings.HasPrefix(lower, p) {
				return true
			}
		}
		return false
	}

	unique := make(map[string]struct{})
	for _, dir := range dirs {
		for parent := filepath.Dir(dir); parent != root; parent = filepath.Dir(parent) {
			if parent == filepath.Dir(parent) {
				break // Filesystem root.
			}
			if matches(filepath.Base(parent)) {
				unique[dir] = struct{}{}
				break
			}
		}
	}

	out := make([]string, 0, len(unique))
	for dir := range unique {
		out = append(out, dir)
	}
	sort.Strings(out)
	return out, nil
}

// WriteList writes the collected paths to outputFile, one per line.
func WriteList(outputFile string, dirs []string) error {
	var b strings.Builder
	for _, dir := range dirs {
		b.WriteString(dir)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(outputFile, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}
	return nil
}
