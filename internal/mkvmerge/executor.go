package mkvmerge

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/backmassage/mkvtrim/internal/config"
)

// ExecResult holds the outcome of a single mkvmerge invocation.
type ExecResult struct {
	Output string // Combined stdout+stderr (mkvmerge reports errors on stdout).
	Err    error
}

// Diagnostic returns the text to carry in a Failure outcome: the process
// output when there is any, otherwise the launch/exit error itself.
func (r ExecResult) Diagnostic() string {
	out := strings.TrimSpace(r.Output)
	if out != "" {
		return out
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ""
}

// Execute builds and runs the mkvmerge command for a file. The call blocks
// until the child process exits; no timeout is imposed beyond ctx
// cancellation. When verbose is enabled the output is tee'd to stdout in
// real time; otherwise it is captured silently for failure reporting.
func Execute(ctx context.Context, cfg *config.Config, inputPath, outputPath string) ExecResult {
	args := Build(cfg, inputPath, outputPath)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var outBuf bytes.Buffer
	if cfg.Verbose {
		cmd.Stdout = io.MultiWriter(&outBuf, os.Stdout)
		cmd.Stderr = io.MultiWriter(&outBuf, os.Stderr)
	} else {
		cmd.Stdout = &outBuf
		cmd.Stderr = &outBuf
	}

	err := cmd.Run()
	return ExecResult{
		Output: outBuf.String(),
		Err:    err,
	}
}
