package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "frmatcher",
	Short: "Classify sequencing-read filenames into R1/R2/ignored buckets",
	Long: `frmatcher matches filenames (typically FASTQ file names) against
configurable pattern sets and sorts them into forward (R1), reverse (R2),
ignored, and unmatched buckets.

Patterns are literal substrings or regular expressions, evaluated with
precedence ignore > r1 > r2. The built-in defaults recognize _1/_R1 forward
markers, _2/_R2 reverse markers, and i_/I_ index read prefixes; a YAML
pattern file can replace them entirely.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable per-filename diagnostic output on stderr")
}

// newLogger builds the diagnostic logger for the library.
// Returns nil when verbose mode is off, which disables diagnostics.
func newLogger() *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
