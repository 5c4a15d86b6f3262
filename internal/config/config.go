// Package config holds runtime configuration: the JSON settings document,
// CLI flag parsing, and validation. The on-disk field names match the
// settings files shipped with earlier releases for drop-in compatibility.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. The json-tagged fields are populated
// by [Load] from the settings document; the remaining fields come from CLI
// flags via [ParseFlags]. It is passed by pointer to packages that need it.
type Config struct {
	// Settings document fields (all required, validated by [Validate]).
	MkvmergeExecutable string   `json:"mkvmerge_executable"`
	InputDirectories   []string `json:"input_directories"`
	FileExtensions     []string `json:"file_extensions"`  // No leading dot.
	SubtitleTracks     string   `json:"subtitle_tracks"`  // Passed verbatim to mkvmerge.
	OutputExtension    string   `json:"output_extension"` // Includes leading dot.

	// Runtime flags (not part of the settings document).
	ConfigPath string    `json:"-"` // Positional arg.
	LedgerDir  string    `json:"-"` // Default: ".".
	LogFile    string    `json:"-"` // Optional log file path.
	DryRun     bool      `json:"-"`
	Verbose    bool      `json:"-"`
	CheckOnly  bool      `json:"-"` // Run --check diagnostics and exit.
	ColorMode  ColorMode `json:"-"` // Default: "auto".
}

// DefaultConfig returns a Config with flag defaults applied. The settings
// document fields stay empty until [Load] fills them.
func DefaultConfig() Config {
	return Config{
		LedgerDir: ".",
		ColorMode: ColorAuto,
	}
}

// Load reads and parses the JSON settings document at path into cfg, then
// normalizes the executable and directory paths. A missing or malformed
// file is a fatal configuration error; nothing is processed afterward.
func Load(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.MkvmergeExecutable = NormalizeDirArg(cfg.MkvmergeExecutable)
	for i, dir := range cfg.InputDirectories {
		cfg.InputDirectories[i] = NormalizeDirArg(dir)
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string; empty strings stay empty for the runner to warn about.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that every settings field is present and well-formed.
// Called once, after [Load] and [ParseFlags], before any directory is
// touched. Validation failures are fatal.
func (c *Config) Validate() error {
	if c.MkvmergeExecutable == "" {
		return errors.New("config field mkvmerge_executable is required")
	}
	// An empty list is allowed (the run warns and finishes immediately);
	// a missing field is not.
	if c.InputDirectories == nil {
		return errors.New("config field input_directories is required")
	}
	if len(c.FileExtensions) == 0 {
		return errors.New("config field file_extensions is required")
	}
	for _, ext := range c.FileExtensions {
		if ext == "" {
			return errors.New("file_extensions entries must not be empty")
		}
		if strings.HasPrefix(ext, ".") {
			return fmt.Errorf("file_extensions entry %q must not start with a dot", ext)
		}
	}
	if c.SubtitleTracks == "" {
		return errors.New("config field subtitle_tracks is required")
	}
	if c.OutputExtension == "" {
		return errors.New("config field output_extension is required")
	}
	if !strings.HasPrefix(c.OutputExtension, ".") {
		return fmt.Errorf("output_extension %q must start with a dot", c.OutputExtension)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	return nil
}
