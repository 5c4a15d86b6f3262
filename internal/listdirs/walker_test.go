package listdirs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mktree(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestCollect_MatchingAncestors(t *testing.T) {
	root := t.TempDir()
	mktree(t, root,
		"Projects/app/src",
		"Projects/docs",
		"Samples/one",
		"zother/nested",
	)

	got, err := Collect(root, []string{"p", "s"}, nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	want := []string{
		"Projects/app",
		"Projects/app/src",
		"Projects/docs",
		"Samples/one",
	}
	rel := relAll(t, root, got)
	if strings.Join(rel, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", rel, want)
	}
}

// The matching directory itself is not part of the output; only its
// subdirectories are.
func TestCollect_ExcludesMatchingDirItself(t *testing.T) {
	root := t.TempDir()
	mktree(t, root, "Photos/2024")

	got, err := Collect(root, []string{"p"}, nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	rel := relAll(t, root, got)
	if len(rel) != 1 || rel[0] != "Photos/2024" {
		t.Errorf("got %v, want only Photos/2024", rel)
	}
}

func TestCollect_CaseInsensitive(t *testing.T) {
	root := t.TempDir()
	mktree(t, root, "projects/a", "PRojects2/b")

	got, err := Collect(root, []string{"P"}, nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %v, want both lowercase and uppercase matches", relAll(t, root, got))
	}
}

func TestCollect_DeepMatchBelowNonMatch(t *testing.T) {
	root := t.TempDir()
	mktree(t, root, "zother/Pvideos/x")

	got, err := Collect(root, []string{"p"}, nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	rel := relAll(t, root, got)
	if len(rel) != 1 || rel[0] != "zother/Pvideos/x" {
		t.Errorf("got %v, want only the subdirectory of the matching dir", rel)
	}
}

func TestCollect_NoMatches(t *testing.T) {
	root := t.TempDir()
	mktree(t, root, "alpha/one", "beta/two")

	got, err := Collect(root, []string{"z"}, nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestWriteList(t *testing.T) {
	out := filepath.Join(t.TempDir(), "subdirectory_list.txt")
	if err := WriteList(out, []string{"/a/b", "/a/c"}); err != nil {
		t.Fatalf("WriteList: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "/a/b\n/a/c\n" {
		t.Errorf("file content = %q", string(data))
	}
}
