// Command listdirs writes the unique subdirectories of directories whose
// names start with the given letters to an output file.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/backmassage/mkvtrim/internal/config"
	"github.com/backmassage/mkvtrim/internal/display"
	"github.com/backmassage/mkvtrim/internal/listdirs"
	"github.com/backmassage/mkvtrim/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("listdirs", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var (
		searchPath string
		outputFile string
		noColor    bool
	)
	fs.StringVar(&searchPath, "path", ".", "Path to search in")
	fs.StringVar(&searchPath, "p", ".", "Same as --path")
	fs.StringVar(&outputFile, "output", "subdirectory_list.txt", "Output file name")
	fs.StringVar(&outputFile, "o", "subdirectory_list.txt", "Same as --output")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return 1
	}

	letters := fs.Args()
	if len(letters) == 0 {
		fmt.Fprintln(os.Stderr, "listdirs: need at least one starting letter")
		printUsage(fs)
		return 1
	}

	cfg := config.DefaultConfig()
	if noColor {
		cfg.ColorMode = config.ColorNever
	}
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listdirs: %v\n", err)
		return 1
	}
	defer log.Close()

	start := time.Now()
	log.Info("Script started at: %s", display.Timestamp(start))

	dirs, err := listdirs.Collect(searchPath, letters, func(path string, walkErr error) {
		log.Error("Skipping %s: %v", path, walkErr)
	})
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if err := listdirs.WriteList(outputFile, dirs); err != nil {
		log.Error("%v", err)
		return 1
	}
	log.Success("Results have been written to %s (%d directories)", outputFile, len(dirs))

	end := time.Now()
	log.Info("Script ended at: %s", display.Timestamp(end))
	log.Info("Total execution time: %s", display.FormatDuration(end.Sub(start)))
	return 0
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "listdirs — list unique subdirectories of directories starting with the given letters")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  listdirs [OPTIONS] <letter> [letter...]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  -p, --path <dir>      Path to search in (default: .)")
	fmt.Fprintln(os.Stderr, "  -o, --output <file>   Output file name (default: subdirectory_list.txt)")
	fmt.Fprintln(os.Stderr, "  --no-color            Disable colored logs")
}
