package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/odinokov/frmatcher/pkg/frmatcher"
)

// ValidFormats lists all valid output formats.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// bucketOrder fixes the bucket sequence for pretty output.
var bucketOrder = []frmatcher.Bucket{
	frmatcher.BucketR1,
	frmatcher.BucketR2,
	frmatcher.BucketIgnored,
	frmatcher.BucketUnmatched,
}

// OutputResult writes a categorization result in the specified format.
func OutputResult(format string, res *frmatcher.Result, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputResultJSON(res, out)
	case "pretty":
		return OutputResultPretty(res, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputResultJSON writes the result as a single JSON object.
func OutputResultJSON(res *frmatcher.Result, out io.Writer) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputResultPretty writes the result with one bucket header per line
// followed by its filenames, preserving input order.
func OutputResultPretty(res *frmatcher.Result, out io.Writer) error {
	m := res.Map()
	for _, bucket := range bucketOrder {
		names := m[bucket]
		if _, err := fmt.Fprintf(out, "%s (%d):\n", bucket, len(names)); err != nil {
			return err
		}
		for _, name := range names {
			if _, err := fmt.Fprintf(out, "  %s\n", name); err != nil {
				return err
			}
		}
	}
	return nil
}

// OutputDecision writes a single classification decision in the specified
// format. Used by the watch command for streaming output.
func OutputDecision(format string, d frmatcher.Decision, out io.Writer) error {
	switch format {
	case "jsonl":
		data, err := json.Marshal(d)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "pretty":
		var err error
		if d.Pattern != "" {
			_, err = fmt.Fprintf(out, "%s -> %s (pattern %q)\n", d.Filename, d.Bucket, d.Pattern)
		} else {
			_, err = fmt.Fprintf(out, "%s -> %s\n", d.Filename, d.Bucket)
		}
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
