// Package match provides the pattern matching engine for filename
// classification.
package match

import (
	"regexp"
	"strings"
)

// metaChars are the characters that mark a pattern as a regular expression.
// A pattern containing none of these is matched by substring containment.
const metaChars = `\.+*?()|[]{}^$`

// Matcher matches a single pattern against filenames.
// The literal/regex decision is made once at compile time, not per match.
type Matcher struct {
	pattern string
	re      *regexp.Regexp // nil for literal patterns
}

// Compile builds a Matcher from a pattern string.
//
// Patterns without regex metacharacters become literal substring matchers.
// All other patterns are compiled as regular expressions with search
// semantics (unanchored unless the pattern itself contains ^ or $).
func Compile(pattern string) (*Matcher, error) {
	if !strings.ContainsAny(pattern, metaChars) {
		return &Matcher{pattern: pattern}, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

// Match reports whether the filename matches the pattern.
// Matching is case-sensitive.
func (m *Matcher) Match(name string) bool {
	if m.re != nil {
		return m.re.MatchString(name)
	}
	return strings.Contains(name, m.pattern)
}

// Pattern returns the original pattern string.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// IsRegex reports whether the pattern was compiled as a regular expression.
func (m *Matcher) IsRegex() bool {
	return m.re != nil
}

// Set is an ordered collection of matchers for one category.
type Set []*Matcher

// CompileSet compiles an ordered pattern list.
// Returns the offending pattern alongside the error so callers can report it.
func CompileSet(patterns []string) (Set, string, error) {
	set := make(Set, 0, len(patterns))
	for _, p := range patterns {
		m, err := Compile(p)
		if err != nil {
			return nil, p, err
		}
		set = append(set, m)
	}
	return set, "", nil
}

// Match returns the first pattern in the set that matches the filename.
func (s Set) Match(name string) (string, bool) {
	for _, m := range s {
		if m.Match(name) {
			return m.Pattern(), true
		}
	}
	return "", false
}

// TokenCount counts the underscore-delimited segments of a filename.
// "sample_1_L001.fastq.gz" has three tokens.
func TokenCount(name string) int {
	return strings.Count(name, "_") + 1
}
