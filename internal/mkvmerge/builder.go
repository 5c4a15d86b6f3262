// Package mkvmerge builds and runs the external mkvmerge invocation for a
// single file.
package mkvmerge

import (
	"github.com/backmassage/mkvtrim/internal/config"
)

// Build constructs the complete mkvmerge argument vector for one file:
// write to outputPath, clear the container title, and keep only the
// configured subtitle tracks. The selector string is passed verbatim;
// mkvmerge accepts track indexes or language codes there.
func Build(cfg *config.Config, inputPath, outputPath string) []string {
	return []string{
		cfg.MkvmergeExecutable,
		"-o", outputPath,
		"--title", "",
		"--subtitle-tracks", cfg.SubtitleTracks,
		inputPath,
	}
}
