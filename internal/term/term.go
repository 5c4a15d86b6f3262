// Package term provides terminal styling state and TTY detection.
//
// Styles are package-level variables because multiple packages (logging,
// display) need them for output formatting. [Configure] sets them once
// during startup; when colors are disabled every style renders plain text.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/mkvtrim/internal/config"
)

// Styles for the fixed output palette. Plain (no-op) until [Configure] runs.
var (
	Red     = lipgloss.NewStyle()
	Green   = lipgloss.NewStyle()
	Yellow  = lipgloss.NewStyle()
	Blue    = lipgloss.NewStyle()
	Cyan    = lipgloss.NewStyle()
	Magenta = lipgloss.NewStyle()
)

var enabled bool

// Configure resolves the color mode and builds the package-level styles.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		plain := lipgloss.NewStyle()
		Red, Green, Yellow, Blue, Cyan, Magenta = plain, plain, plain, plain, plain, plain
		return
	}

	lipgloss.SetColorProfile(termenv.TrueColor)
	Red = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	Green = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	Yellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00"))
	Blue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#476FE8"))
	Cyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	Magenta = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8842B7"))
}

// Enabled reports whether styled output is currently active.
func Enabled() bool { return enabled }

// resolve determines whether colors should be enabled based on the
// configured mode, TTY detection, and the NO_COLOR env var
// (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
