package pipeline

import "time"

// RunResult is the explicit value accumulated by one run: which files
// succeeded, which failed, and the run's timing. It replaces any
// module-level bookkeeping; the orchestrator builds it and hands it to
// the summary step and the caller.
type RunResult struct {
	RunID string

	Start time.Time
	End   time.Time

	// Aborted is set when the executable check fails and no directory
	// was scanned.
	Aborted bool

	Attempted   int // Files for which mkvmerge was actually invoked.
	SkippedDirs int // Directories rejected before discovery.

	Succeeded []string // Input paths processed successfully, in order.
	Failed    []string // Input paths that failed, in order.
}

// Elapsed returns the wall-clock duration of the run.
func (r *RunResult) Elapsed() time.Duration {
	return r.End.Sub(r.Start)
}
