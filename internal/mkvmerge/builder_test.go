package mkvmerge

import (
	"reflect"
	"testing"

	"github.com/backmassage/mkvtrim/internal/config"
)

func TestBuild_ArgumentVector(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MkvmergeExecutable = "/usr/bin/mkvmerge"
	cfg.SubtitleTracks = "3,4"

	got := Build(&cfg, "/in/movie.mkv", "/in/processed_files/movie.mkv")
	want := []string{
		"/usr/bin/mkvmerge",
		"-o", "/in/processed_files/movie.mkv",
		"--title", "",
		"--subtitle-tracks", "3,4",
		"/in/movie.mkv",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build = %v, want %v", got, want)
	}
}

func TestBuild_SelectorPassedVerbatim(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MkvmergeExecutable = "mkvmerge"
	cfg.SubtitleTracks = "eng,und"

	got := Build(&cfg, "a.mkv", "b.mkv")
	if got[6] != "eng,und" {
		t.Errorf("subtitle selector = %q, want untouched %q", got[6], "eng,und")
	}
}

func TestExecResult_Diagnostic(t *testing.T) {
	tests := []struct {
		name   string
		result ExecResult
		want   string
	}{
		{"output preferred", ExecResult{Output: "  Error: bad track  \n", Err: errExit}, "Error: bad track"},
		{"error fallback", ExecResult{Err: errExit}, "exit status 2"},
		{"empty", ExecResult{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Diagnostic(); got != tt.want {
				t.Errorf("Diagnostic() = %q, want %q", got, tt.want)
			}
		})
	}
}

var errExit = errExitStatus{}

type errExitStatus struct{}

func (errExitStatus) Error() string { return "exit status 2" }
