package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odinokov/frmatcher/pkg/frmatcher"
	"github.com/odinokov/frmatcher/pkg/frmatcher/pattern"
)

var (
	// classify flags
	patternsFile string
	lengthCheck  bool
	pairCheck    bool
	format       string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [filename...]",
	Short: "Categorize a list of filenames",
	Long: `Categorize filenames into R1, R2, ignored, and unmatched buckets.

Filenames are taken from the command line, or from stdin (one per line)
when no arguments are given.

Examples:
  # Classify filenames given as arguments
  frmatcher classify sample_1_L001.fastq.gz sample_2_L001.fastq.gz

  # Classify a file listing, one name per line
  ls fastq/ | frmatcher classify

  # Use a custom YAML pattern file and check token consistency
  frmatcher classify --patterns patterns.yaml --length-check *.fastq.gz

  # Machine-readable output for jq
  frmatcher classify --format jsonl *.fastq.gz | jq '.R1'`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&patternsFile, "patterns", "p", "",
		"YAML pattern file replacing the built-in pattern set")
	classifyCmd.Flags().BoolVar(&lengthCheck, "length-check", false,
		"Require all filenames to have the same underscore-token count")
	classifyCmd.Flags().BoolVar(&pairCheck, "pair-check", false,
		"Fail when the R1 and R2 buckets end up with different sizes")
	classifyCmd.Flags().StringVarP(&format, "format", "f", "pretty",
		"Output format: jsonl, pretty")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("unknown format: %s", format)
	}

	filenames := args
	if len(filenames) == 0 {
		var err error
		filenames, err = readFilenames(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read filenames from stdin: %w", err)
		}
	}

	opts := []frmatcher.Option{
		frmatcher.WithLengthCheck(lengthCheck),
		frmatcher.WithPairCheck(pairCheck),
		frmatcher.WithVerbose(verbose),
		frmatcher.WithLogger(newLogger()),
	}

	if patternsFile != "" {
		pf, err := pattern.Load(patternsFile)
		if err != nil {
			return fmt.Errorf("pattern file: %w", err)
		}
		opts = append(opts, frmatcher.WithConfig(pf.Config()))
	}

	c, err := frmatcher.New(filenames, opts...)
	if err != nil {
		return err
	}

	res, err := c.Categorize()
	if err != nil {
		return err
	}

	return OutputResult(format, res, cmd.OutOrStdout())
}

// readFilenames reads one filename per line, skipping blank lines.
func readFilenames(r io.Reader) ([]string, error) {
	var filenames []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		filenames = append(filenames, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return filenames, nil
}
