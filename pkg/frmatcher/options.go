package frmatcher

import "log/slog"

// Option configures a Classifier using the functional options pattern.
type Option func(*Classifier)

// WithConfig replaces the default pattern set with cfg.
// The configuration stays mutable via the Patterns field afterwards.
func WithConfig(cfg Config) Option {
	return func(c *Classifier) {
		c.Patterns = cfg
	}
}

// WithLengthCheck enables the structural consistency check: all filenames
// must tokenize (by the underscore delimiter) to the same segment count.
// Default: disabled.
func WithLengthCheck(enabled bool) Option {
	return func(c *Classifier) {
		c.lengthCheck = enabled
	}
}

// WithPairCheck enables the R1/R2 balance check: Categorize fails with
// *PairMismatchError when the forward and reverse buckets end up with
// different sizes. Default: disabled.
func WithPairCheck(enabled bool) Option {
	return func(c *Classifier) {
		c.pairCheck = enabled
	}
}

// WithVerbose enables per-filename diagnostic output. Each classification
// decision is logged at Debug level on the configured logger. Diagnostics
// never affect the returned result.
func WithVerbose(enabled bool) Option {
	return func(c *Classifier) {
		c.verbose = enabled
		if enabled && c.log == discardLogger {
			c.log = slog.Default()
		}
	}
}

// WithLogger sets a custom logger for diagnostic output.
// If logger is nil, diagnostics are discarded (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.log = logger
		}
	}
}
