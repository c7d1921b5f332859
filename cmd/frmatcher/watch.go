package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nxadm/tail"
	"github.com/spf13/cobra"

	"github.com/odinokov/frmatcher/pkg/frmatcher"
	"github.com/odinokov/frmatcher/pkg/frmatcher/pattern"
)

var (
	// watch flags
	watchPatternsFile string
	watchFormat       string
	watchFromStart    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <manifest>",
	Short: "Tail a filename manifest and classify each appended line",
	Long: `Tail a growing manifest file (one filename per line) and emit a
classification decision for every appended name.

This is useful while a sequencer or demultiplexer is still writing output:
pipe the manifest into frmatcher and watch R1/R2 assignments arrive live.

Examples:
  # Follow a manifest as it grows
  frmatcher watch runs/manifest.txt

  # Replay the existing manifest content first, then follow
  frmatcher watch --from-start runs/manifest.txt

  # Stream decisions into jq
  frmatcher watch runs/manifest.txt | jq 'select(.bucket == "unmatched")'`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchPatternsFile, "patterns", "p", "",
		"YAML pattern file replacing the built-in pattern set")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	watchCmd.Flags().BoolVar(&watchFromStart, "from-start", false,
		"Classify existing manifest lines before following new ones")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if !ValidFormats[watchFormat] {
		return fmt.Errorf("unknown format: %s", watchFormat)
	}

	cfg := frmatcher.DefaultConfig()
	if watchPatternsFile != "" {
		pf, err := pattern.Load(watchPatternsFile)
		if err != nil {
			return fmt.Errorf("pattern file: %w", err)
		}
		cfg = pf.Config()
	}

	// Compile once up front; watch mode has no mutation surface.
	rs, err := frmatcher.NewRuleset(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tailCfg := tail.Config{
		Follow: true,
		ReOpen: true,
		Logger: tail.DiscardingLogger,
	}
	if !watchFromStart {
		// Seek to EOF so only newly appended lines are classified.
		tailCfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(args[0], tailCfg)
	if err != nil {
		return fmt.Errorf("failed to tail manifest: %w", err)
	}
	defer t.Cleanup()

	log := newLogger()

	for {
		select {
		case line, ok := <-t.Lines:
			if !ok {
				return t.Err()
			}
			if line.Err != nil {
				return fmt.Errorf("tail error: %w", line.Err)
			}

			name := strings.TrimSpace(line.Text)
			if name == "" {
				continue
			}

			d := rs.Classify(name)
			if log != nil {
				log.Debug("classified filename",
					"filename", d.Filename,
					"bucket", string(d.Bucket),
					"pattern", d.Pattern,
				)
			}
			if err := OutputDecision(watchFormat, d, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("output error: %w", err)
			}

		case <-ctx.Done():
			t.Stop()
			return nil
		}
	}
}
