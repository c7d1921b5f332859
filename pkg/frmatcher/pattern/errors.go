package pattern

import "fmt"

// ValidationError represents a schema-level validation error.
// These errors occur when a pattern file violates structural requirements
// (e.g., missing required categories, unsupported version number).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}
