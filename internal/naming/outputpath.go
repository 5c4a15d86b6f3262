// Package naming derives output file paths for processed media.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProcessedDirName is the per-input-directory subdirectory that receives
// processed files.
const ProcessedDirName = "processed_files"

// OutputDir returns the processed-files directory for an input directory.
func OutputDir(inputDir string) string {
	return filepath.Join(inputDir, ProcessedDirName)
}

// OutputPath builds the output file path for an input file:
//
//	<parent>/processed_files/<stem><outputExt>
//
// outputExt includes the leading dot. Two inputs sharing a stem but
// differing in extension map to the same output path; the later one
// overwrites the earlier. That matches the tool's historical behavior and
// is left as is.
func OutputPath(inputPath, outputExt string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(OutputDir(filepath.Dir(inputPath)), stem+outputExt)
}

// EnsureOutputDir creates the processed-files directory for inputDir,
// including missing parents. Creating an already-existing directory is not
// an error.
func EnsureOutputDir(inputDir string) (string, error) {
	dir := OutputDir(inputDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return dir, nil
}
