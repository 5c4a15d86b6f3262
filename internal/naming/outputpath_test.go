package naming

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ext  string
		want string
	}{
		{"mkv to mkv", "/media/movies/movie.mkv", ".mkv", "/media/movies/processed_files/movie.mkv"},
		{"mp4 to mkv", "/media/movies/clip.mp4", ".mkv", "/media/movies/processed_files/clip.mkv"},
		{"multi-dot stem", "/media/movie.part1.mkv", ".mkv", "/media/processed_files/movie.part1.mkv"},
		{"relative path", "in/show.mkv", ".mp4", filepath.Join("in", "processed_files", "show.mp4")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath(tt.in, tt.ext)
			if got != tt.want {
				t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.in, tt.ext, got, tt.want)
			}
		})
	}
}

// Two inputs sharing a stem map to the same output; the second overwrites
// the first. Documented behavior, not a bug.
func TestOutputPath_StemCollision(t *testing.T) {
	a := OutputPath("/media/movie.mkv", ".mkv")
	b := OutputPath("/media/movie.mp4", ".mkv")
	if a != b {
		t.Errorf("stems should collide: %q vs %q", a, b)
	}
}

func TestEnsureOutputDir(t *testing.T) {
	dir := t.TempDir()

	got, err := EnsureOutputDir(dir)
	if err != nil {
		t.Fatalf("EnsureOutputDir: %v", err)
	}
	if got != filepath.Join(dir, ProcessedDirName) {
		t.Errorf("returned path = %q", got)
	}
	fi, err := os.Stat(got)
	if err != nil || !fi.IsDir() {
		t.Fatalf("output directory not created: %v", err)
	}

	// Idempotent: creating again must not fail.
	if _, err := EnsureOutputDir(dir); err != nil {
		t.Errorf("EnsureOutputDir second call: %v", err)
	}
}
