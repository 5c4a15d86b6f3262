// Package pipeline orchestrates the batch run: executable check, directory
// validation, file discovery, per-file mkvmerge invocation, ledger writes,
// and the final summary.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/mkvtrim/internal/check"
	"github.com/backmassage/mkvtrim/internal/config"
	"github.com/backmassage/mkvtrim/internal/display"
	"github.com/backmassage/mkvtrim/internal/ledger"
	"github.com/backmassage/mkvtrim/internal/logging"
	"github.com/backmassage/mkvtrim/internal/mkvmerge"
	"github.com/backmassage/mkvtrim/internal/naming"
)

// Run is the top-level batch entry point. It checks the mkvmerge
// executable, walks the configured input directories in order, processes
// each discovered file sequentially, and returns the accumulated result.
// Timing is reported on every path, including aborts.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, led *ledger.Ledger) RunResult {
	res := RunResult{
		RunID: uuid.NewString(),
		Start: time.Now(),
	}

	log.Info("Script started at: %s", display.Timestamp(res.Start))
	log.Debug(cfg.Verbose, "Run ID: %s", res.RunID)

	if !check.LocateExecutable(cfg.MkvmergeExecutable) {
		log.Error("mkvmerge executable not found at %s", cfg.MkvmergeExecutable)
		log.Error("Exiting run due to missing executable")
		res.Aborted = true
		recordOutcome(cfg, log, led,
			fmt.Sprintf("mkvmerge executable not found at %s", cfg.MkvmergeExecutable), false)
	} else {
		if len(cfg.InputDirectories) == 0 {
			log.Warn("No input directories configured; nothing to do")
		}
		for _, dir := range cfg.InputDirectories {
			if ctx.Err() != nil {
				log.Warn("Interrupted")
				break
			}
			processDirectory(ctx, cfg, log, led, dir, &res)
		}
		logSummary(log, &res)
	}

	res.End = time.Now()
	log.Info("Script finished at: %s", display.Timestamp(res.End))
	log.Info("Total execution time: %s", display.FormatDuration(res.Elapsed()))
	return res
}

// processDirectory validates one configured directory and processes every
// matching file in it. Invalid directories are skipped with a warning and
// produce no ledger entries; the run continues.
func processDirectory(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	led *ledger.Ledger,
	dir string,
	res *RunResult,
) {
	if dir == "" {
		log.Warn("Skipping empty input directory entry")
		res.SkippedDirs++
		return
	}
	if filepath.Clean(dir) == "." {
		log.Warn("Skipping current-directory entry: %q", dir)
		res.SkippedDirs++
		return
	}
	fi, err := os.Stat(dir)
	if err != nil {
		log.Warn("Skipping missing input directory: %s", dir)
		res.SkippedDirs++
		return
	}
	if !fi.IsDir() {
		log.Warn("Skipping non-directory input entry: %s", dir)
		res.SkippedDirs++
		return
	}

	log.Info("Working directory %s...", dir)

	files, err := Discover(dir, cfg.FileExtensions)
	if err != nil {
		log.Warn("Skipping unreadable directory %s: %v", dir, err)
		res.SkippedDirs++
		return
	}
	if len(files) == 0 {
		log.Debug(cfg.Verbose, "No matching files in %s", dir)
		return
	}

	for i, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return
		}
		processFile(ctx, cfg, log, led, path, i+1, len(files), res)
	}
}

// processFile handles one candidate file: derive the output path, ensure
// the processed_files directory, invoke mkvmerge, and record exactly one
// outcome. Failures never stop the run.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	led *ledger.Ledger,
	path string,
	current, total int,
	res *RunResult,
) {
	basename := filepath.Base(path)
	outputPath := naming.OutputPath(path, cfg.OutputExtension)
	log.Info("[%d/%d] Processing %s...", current, total, basename)

	if cfg.DryRun {
		log.Success("[DRY] Would write %s", outputPath)
		return
	}

	res.Attempted++

	if _, err := naming.EnsureOutputDir(filepath.Dir(path)); err != nil {
		log.Error("%v", err)
		failFile(cfg, log, led, res, path,
			fmt.Sprintf("Failed to process %s: %v", path, err))
		return
	}

	result := mkvmerge.Execute(ctx, cfg, path, outputPath)
	if result.Err != nil {
		log.Error("Error processing %s: %v", basename, result.Err)
		logDiagnostic(log, result)
		failFile(cfg, log, led, res, path,
			fmt.Sprintf("Failed to process %s: %s", path, result.Diagnostic()))
		return
	}

	log.Success("Removed title and kept subtitle tracks [%s] from %s", cfg.SubtitleTracks, basename)
	log.Success("Saved as %s", filepath.Base(outputPath))
	res.Succeeded = append(res.Succeeded, path)
	recordOutcome(cfg, log, led, fmt.Sprintf("Processed %s -> %s", path, outputPath), true)
}

// failFile marks path as failed and records the failure outcome.
func failFile(
	cfg *config.Config,
	log *logging.Logger,
	led *ledger.Ledger,
	res *RunResult,
	path, message string,
) {
	res.Failed = append(res.Failed, path)
	recordOutcome(cfg, log, led, message, false)
}

// recordOutcome appends one outcome to the ledger. A ledger write failure
// is logged but does not stop the run; the ledger is an audit trail, not a
// processing dependency.
func recordOutcome(cfg *config.Config, log *logging.Logger, led *ledger.Ledger, message string, success bool) {
	if cfg.DryRun {
		return
	}
	if err := led.Record(message, success); err != nil {
		log.Error("Ledger write failed: %v", err)
	}
}

// logDiagnostic prints the tail of the mkvmerge output after a failure.
func logDiagnostic(log *logging.Logger, result mkvmerge.ExecResult) {
	diag := result.Diagnostic()
	if diag == "" {
		return
	}
	log.Error("Last mkvmerge output:")
	lines := splitTail(diag, 20)
	for _, l := range lines {
		log.Error("  %s", l)
	}
}

// splitTail returns at most the last n lines of text.
func splitTail(text string, n int) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// logSummary prints the per-run success/failure lists.
func logSummary(log *logging.Logger, res *RunResult) {
	log.Info("")
	log.Info("Summary of Processed Files:")
	log.Info("Successful files:")
	for _, f := range res.Succeeded {
		log.Success("  - %s", f)
	}
	log.Info("Failed files:")
	for _, f := range res.Failed {
		log.Error("  - %s", f)
	}
	log.Info("Done: %d attempted, %d succeeded, %d failed, %d directories skipped",
		res.Attempted, len(res.Succeeded), len(res.Failed), res.SkippedDirs)
}
