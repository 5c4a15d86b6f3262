// Command mkvtrim is the CLI entrypoint for the batch title/subtitle
// trimmer.
//
// It parses flags, loads and validates the JSON settings document, and
// either runs diagnostics (--check) or the processing pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/mkvtrim/internal/check"
	"github.com/backmassage/mkvtrim/internal/config"
	"github.com/backmassage/mkvtrim/internal/display"
	"github.com/backmassage/mkvtrim/internal/ledger"
	"github.com/backmassage/mkvtrim/internal/logging"
	"github.com/backmassage/mkvtrim/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "mkvtrim: %v\n", err)
		return 1
	}

	if err := config.Load(&cfg, cfg.ConfigPath); err != nil {
		fmt.Fprintf(os.Stderr, "mkvtrim: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "mkvtrim: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkvtrim: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== mkvtrim v%s (%s) ===", version, commit)
	log.Info("Executable: %s", cfg.MkvmergeExecutable)
	log.Info("Directories: %d configured", len(cfg.InputDirectories))
	log.Info("Extensions: %v", cfg.FileExtensions)
	log.Info("Subtitle tracks: %s", cfg.SubtitleTracks)
	log.Info("Ledger: %s", cfg.LedgerDir)
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be written, no ledger entries recorded")
	}
	log.Info("")

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between files without leaving partial output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run pipeline (check executable → validate dirs → discover →
	// process → summarize).
	led := ledger.New(cfg.LedgerDir, "mkvtrim")
	res := pipeline.Run(ctx, &cfg, log, led)

	if res.Aborted || len(res.Failed) > 0 {
		return 1
	}
	return 0
}
