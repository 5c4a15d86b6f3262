// Package check provides the executable locator used before every run and
// the --check diagnostics mode.
package check

import (
	"os"
	"os/exec"
	"strings"

	"github.com/backmassage/mkvtrim/internal/config"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// LocateExecutable reports whether a regular file exists at path. This is
// the gate the orchestrator runs before touching any directory.
func LocateExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// RunCheck runs the interactive --check flow: reports whether the
// configured mkvmerge executable exists, prints its version, and checks
// each configured input directory. Informational only; returns false when
// the executable is missing so the command can exit nonzero.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkMkvmerge(cfg, log)
	checkInputDirectories(cfg, log)
	return ok
}

// checkMkvmerge verifies the configured executable path and logs the
// mkvmerge version string.
func checkMkvmerge(cfg *config.Config, log Logger) bool {
	if !LocateExecutable(cfg.MkvmergeExecutable) {
		log.Error("mkvmerge not found at %s", cfg.MkvmergeExecutable)
		return false
	}

	cmd := exec.Command(cfg.MkvmergeExecutable, "--version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("mkvmerge found but --version failed: %v", err)
		return true
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("mkvmerge: %s", firstLine)
	return true
}

// checkInputDirectories reports the status of each configured directory.
func checkInputDirectories(cfg *config.Config, log Logger) {
	for _, dir := range cfg.InputDirectories {
		if dir == "" {
			log.Warn("input directory entry is empty")
			continue
		}
		fi, err := os.Stat(dir)
		switch {
		case err != nil:
			log.Warn("input directory missing: %s", dir)
		case !fi.IsDir():
			log.Warn("not a directory: %s", dir)
		default:
			log.Success("input directory ok: %s", dir)
		}
	}
}
