package pattern

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// sanitizePathError removes the path from os.PathError to prevent
// information leakage in error messages.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

const (
	// MaxFileSize is the maximum allowed size for a pattern file (1MB).
	MaxFileSize = 1 * 1024 * 1024

	// MaxPatternLength is the maximum allowed length for a single pattern
	// (512 bytes). This limit helps mitigate ReDoS via excessively complex
	// patterns.
	MaxPatternLength = 512

	// MaxPatternCount is the maximum number of patterns allowed per
	// category.
	MaxPatternCount = 1000

	// SupportedVersion is the currently supported pattern file format
	// version.
	SupportedVersion = 1
)

// Load reads and parses a pattern file from the given path.
// Returns an error if the file cannot be read, is too large, or fails
// validation.
//
// Example:
//
//	pf, err := pattern.Load("patterns.yaml")
//	if err != nil {
//	    log.Fatalf("failed to load pattern file: %v", err)
//	}
//	cfg := pf.Config()
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern file: %w", sanitizePathError(err))
	}
	defer f.Close()

	// Stat the file descriptor (not the path) to avoid TOCTOU
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat pattern file: %w", sanitizePathError(err))
	}

	// Reject non-regular files (FIFO, device, socket, etc.) to prevent DoS
	if !info.Mode().IsRegular() {
		return nil, errors.New("pattern file must be a regular file (not FIFO, device, or special file)")
	}

	if info.Size() == 0 {
		return nil, errors.New("pattern file is empty")
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("pattern file too large: %d bytes (max %d)", info.Size(), MaxFileSize)
	}

	// Read with size limit; read MaxFileSize+1 to detect growth past the limit
	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", sanitizePathError(err))
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("pattern file too large: %d bytes (max %d)", len(data), MaxFileSize)
	}

	return LoadBytes(data)
}

// LoadBytes parses a pattern file from a byte slice.
//
// Example:
//
//	data := []byte("version: 1\npatterns:\n  r1: [\"_1\"]\n  ...")
//	pf, err := pattern.LoadBytes(data)
func LoadBytes(data []byte) (*File, error) {
	if len(data) == 0 {
		return nil, errors.New("pattern file is empty")
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("pattern file too large: %d bytes (max %d)", len(data), MaxFileSize)
	}

	var pf File
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := pf.Validate(); err != nil {
		return nil, err
	}

	return &pf, nil
}

// Validate performs schema-level validation on the pattern file.
// It checks for:
//   - Supported version number
//   - Non-empty r1 and r2 categories
//   - Pattern count and length limits
//
// Note: this function does NOT compile regular expressions. Compilation
// happens when the classifier builds its ruleset, so a malformed pattern
// surfaces at first use, not at load time.
func (pf *File) Validate() error {
	if pf.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", pf.Version, SupportedVersion),
		}
	}

	for _, cat := range []struct {
		name     string
		patterns []string
		required bool
	}{
		{"patterns.r1", pf.Patterns.R1, true},
		{"patterns.r2", pf.Patterns.R2, true},
		{"patterns.ignore", pf.Patterns.Ignore, false},
	} {
		if cat.required && len(cat.patterns) == 0 {
			return &ValidationError{
				Field:   cat.name,
				Message: "at least one pattern is required",
			}
		}
		if len(cat.patterns) > MaxPatternCount {
			return &ValidationError{
				Field:   cat.name,
				Message: fmt.Sprintf("too many patterns (%d), maximum allowed is %d", len(cat.patterns), MaxPatternCount),
			}
		}
		for i, p := range cat.patterns {
			if p == "" {
				return &ValidationError{
					Field:   fmt.Sprintf("%s[%d]", cat.name, i),
					Message: "pattern must not be empty",
				}
			}
			if len(p) > MaxPatternLength {
				return &ValidationError{
					Field:   fmt.Sprintf("%s[%d]", cat.name, i),
					Message: fmt.Sprintf("pattern too long: %d bytes (max %d)", len(p), MaxPatternLength),
				}
			}
		}
	}

	return nil
}
