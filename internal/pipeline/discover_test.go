package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestDiscover_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "movie.mkv")
	touch(t, dir, "show.mp4")
	touch(t, dir, "music.mp3")
	touch(t, dir, "readme.txt")

	files, err := Discover(dir, []string{"mkv", "mp4"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"movie.mkv", "show.mp4"}
	got := basenames(files)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "top.mkv")
	sub := filepath.Join(dir, "season1")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, sub, "nested.mkv")

	files, err := Discover(dir, []string{"mkv"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "top.mkv" {
		t.Errorf("got %v, want only top.mkv (no recursion)", basenames(files))
	}
}

func TestDiscover_SortedAndCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "zeta.mkv")
	touch(t, dir, "ALPHA.MKV")
	touch(t, dir, "mid.Mkv")

	files, err := Discover(dir, []string{"mkv"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3 (case-insensitive ext matching)", len(files))
	}
	for i := 1; i < len(files); i++ {
		if files[i] < files[i-1] {
			t.Errorf("not sorted: %q before %q", files[i-1], files[i])
		}
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	files, err := Discover(t.TempDir(), []string{"mkv"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "gone"), []string{"mkv"}); err == nil {
		t.Error("Discover should fail for a missing directory")
	}
}
