package frmatcher

import (
	"io"
	"log/slog"

	"github.com/odinokov/frmatcher/internal/match"
)

// discardLogger is used when no logger is configured.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Classifier categorizes sequencing-read filenames into forward (R1),
// reverse (R2), ignored, and unmatched buckets.
//
// Filenames are opaque strings; the classifier never touches the
// filesystem. Patterns is a public field and may be reassigned between
// Categorize calls — the configuration is recompiled on every call, so a
// mutation is never silently ignored.
type Classifier struct {
	// Patterns is the active pattern configuration. Callers may replace
	// any or all of the three lists before the next Categorize call.
	Patterns Config

	filenames   []string
	lengthCheck bool
	pairCheck   bool
	verbose     bool
	log         *slog.Logger
}

// New creates a Classifier for the given filenames.
// Returns a *ConfigurationError if the filename list is empty.
//
// Without WithConfig the built-in DefaultConfig pattern set is used.
func New(filenames []string, opts ...Option) (*Classifier, error) {
	if len(filenames) == 0 {
		return nil, &ConfigurationError{Field: "filenames", Message: "at least one filename is required"}
	}

	c := &Classifier{
		Patterns:  DefaultConfig(),
		filenames: filenames,
		log:       discardLogger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Categorize classifies every filename against the current Patterns.
//
// Filenames are evaluated in input order with precedence ignore → r1 → r2;
// the first matching pattern wins. Filenames matching nothing land in the
// unmatched bucket. The operation is pure: repeated calls with unchanged
// filenames and patterns produce identical results.
//
// Errors:
//   - *ConfigurationError: r1 or r2 has no patterns
//   - *PatternError: a pattern fails to compile as a regex
//   - *LengthMismatchError: length check enabled and token counts differ
//   - *PairMismatchError: pair check enabled and len(R1) != len(R2)
func (c *Classifier) Categorize() (*Result, error) {
	rs, err := NewRuleset(c.Patterns)
	if err != nil {
		return nil, err
	}

	if c.lengthCheck {
		if err := c.checkTokenLengths(); err != nil {
			return nil, err
		}
	}

	res := &Result{
		R1:        []string{},
		R2:        []string{},
		Ignored:   []string{},
		Unmatched: []string{},
	}
	for _, name := range c.filenames {
		d := rs.Classify(name)
		if c.verbose {
			c.log.Debug("classified filename",
				"filename", d.Filename,
				"bucket", string(d.Bucket),
				"pattern", d.Pattern,
			)
		}
		res.add(d)
	}

	if c.pairCheck && len(res.R1) != len(res.R2) {
		return nil, &PairMismatchError{R1: len(res.R1), R2: len(res.R2)}
	}

	return res, nil
}

// checkTokenLengths verifies that all filenames tokenize to the same
// underscore-delimited segment count. The expected count comes from the
// first filename; every deviating filename is reported.
func (c *Classifier) checkTokenLengths() error {
	want := match.TokenCount(c.filenames[0])

	var offenders []string
	for _, name := range c.filenames[1:] {
		if match.TokenCount(name) != want {
			offenders = append(offenders, name)
		}
	}
	if len(offenders) > 0 {
		return &LengthMismatchError{Want: want, Offenders: offenders}
	}
	return nil
}
