package pattern_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odinokov/frmatcher/pkg/frmatcher"
	"github.com/odinokov/frmatcher/pkg/frmatcher/pattern"
)

func TestLoad_Valid(t *testing.T) {
	pf, err := pattern.Load("testdata/valid.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1, pf.Version)
	assert.Equal(t, []string{"_1", "_R1"}, pf.Patterns.R1)
	assert.Equal(t, []string{"_2", "_R2"}, pf.Patterns.R2)
	assert.Equal(t, []string{"^i_", "^I_", `_i\d+`, `_I\d+`}, pf.Patterns.Ignore)
}

func TestLoad_ConfigConversion(t *testing.T) {
	pf, err := pattern.Load("testdata/valid.yaml")
	require.NoError(t, err)

	cfg := pf.Config()
	assert.Equal(t, frmatcher.Config{
		R1:     []string{"_1", "_R1"},
		R2:     []string{"_2", "_R2"},
		Ignore: []string{"^i_", "^I_", `_i\d+`, `_I\d+`},
	}, cfg)
}

func TestLoad_MissingRequiredCategory(t *testing.T) {
	_, err := pattern.Load("testdata/missing_r2.yaml")
	require.Error(t, err)
	var valErr *pattern.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "patterns.r2", valErr.Field)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	_, err := pattern.Load("testdata/unsupported_version.yaml")
	require.Error(t, err)
	var valErr *pattern.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestLoad_InvalidRegex(t *testing.T) {
	// Load succeeds: validation never compiles regexes. The malformed
	// pattern surfaces when the classifier first uses it.
	pf, err := pattern.Load("testdata/invalid_regex.yaml")
	require.NoError(t, err)

	_, err = frmatcher.NewRuleset(pf.Config())
	require.Error(t, err)
	var patErr *frmatcher.PatternError
	require.True(t, errors.As(err, &patErr))
	assert.Equal(t, "_i[", patErr.Pattern)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := pattern.Load("testdata/nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open pattern file")
	// Sanitized: the path must not leak into the error message
	assert.NotContains(t, err.Error(), "nonexistent.yaml")
}

func TestLoadBytes_Empty(t *testing.T) {
	_, err := pattern.LoadBytes(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadBytes_Valid(t *testing.T) {
	data := []byte(`version: 1
patterns:
  r1: ["_1"]
  r2: ["_2"]
`)
	pf, err := pattern.LoadBytes(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"_1"}, pf.Patterns.R1)
	assert.Empty(t, pf.Patterns.Ignore, "ignore category is optional")
}

func TestLoadBytes_InvalidYAML(t *testing.T) {
	data := []byte(`version: 1
patterns:
  r1: [unterminated`)
	_, err := pattern.LoadBytes(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadBytes_EmptyPattern(t *testing.T) {
	data := []byte(`version: 1
patterns:
  r1: ["_1", ""]
  r2: ["_2"]
`)
	_, err := pattern.LoadBytes(data)
	require.Error(t, err)
	var valErr *pattern.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "patterns.r1[1]", valErr.Field)
}

func TestLoadBytes_PatternTooLong(t *testing.T) {
	data := []byte(`version: 1
patterns:
  r1: ["` + strings.Repeat("a", pattern.MaxPatternLength+1) + `"]
  r2: ["_2"]
`)
	_, err := pattern.LoadBytes(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern too long")
}

func TestLoadBytes_TooLarge(t *testing.T) {
	data := make([]byte, pattern.MaxFileSize+1)
	_, err := pattern.LoadBytes(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
