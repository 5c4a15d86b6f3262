package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-color) are applied after Parse so Config
// defaults hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing config
// file argument).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("mkvtrim", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var negated negatedFlags

	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.StringVar(&cfg.LedgerDir, "ledger-dir", cfg.LedgerDir, "Directory for the success/error ledger files")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not invoke mkvmerge or touch the ledger")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Stream mkvmerge output live; debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&negated.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&negated.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&negated.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&negated.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&negated.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&negated.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if negated.noColor {
		cfg.ColorMode = ColorNever
	} else if negated.forceColor {
		cfg.ColorMode = ColorAlways
	}

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "mkvtrim v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags applied after Parse. These either invert
// a default (noColor) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// parsePositionalArgs sets ConfigPath from the single positional argument.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) != 1 {
		return fmt.Errorf("need exactly one config file argument")
	}
	cfg.ConfigPath = strings.TrimSpace(args[0])
	if cfg.ConfigPath == "" {
		return fmt.Errorf("config file argument must not be empty")
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "mkvtrim v" + version + " — strip container titles, keep chosen subtitle tracks"},
		{"", ""},
		{"  mkvtrim [OPTIONS] <config.json>", ""},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; no mkvmerge calls, no ledger writes"},
		{"  --ledger-dir <path>", "Directory for ledger files (default: .)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Stream mkvmerge output live; debug logging"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnostics (mkvmerge presence, input directories)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
