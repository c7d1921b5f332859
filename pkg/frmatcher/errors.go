package frmatcher

import (
	"fmt"
	"strings"
)

// ConfigurationError reports invalid classifier input or an unusable
// pattern configuration (empty filename list, missing required category).
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

// LengthMismatchError reports filenames whose underscore-token count
// differs from the expected count when length checking is enabled.
// The expected count is derived from the first filename in the input.
type LengthMismatchError struct {
	Want      int      // expected token count
	Offenders []string // filenames with a different token count
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("filename length mismatch: expected %d underscore-delimited tokens, got different counts for: %s",
		e.Want, strings.Join(e.Offenders, ", "))
}

// PatternError reports a pattern that failed to compile as a regular
// expression. It is raised at the first categorization that uses the
// pattern, not at construction, since patterns may be reassigned after
// the classifier is built.
type PatternError struct {
	Category Bucket // category the pattern belongs to
	Pattern  string
	Cause    error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q in category %s: %v", e.Pattern, e.Category, e.Cause)
}

// Unwrap returns the underlying regexp compile error.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// PairMismatchError reports unbalanced forward/reverse buckets when the
// pair check is enabled.
type PairMismatchError struct {
	R1 int
	R2 int
}

func (e *PairMismatchError) Error() string {
	return fmt.Sprintf("unbalanced read pairs: R1=%d, R2=%d", e.R1, e.R2)
}
