package frmatcher

import (
	"github.com/odinokov/frmatcher/internal/match"
)

// Ruleset is a compiled, immutable pattern configuration.
//
// A Ruleset classifies one filename at a time in strict precedence order
// ignore → r1 → r2: the first category with a matching pattern wins, so a
// filename can never land in more than one bucket. This resolves the
// realistic ambiguity where an index read like "control_i12_1.fastq.gz"
// also carries an _1 token.
//
// Ruleset is safe for concurrent use by multiple goroutines.
type Ruleset struct {
	ignore match.Set
	r1     match.Set
	r2     match.Set
}

// NewRuleset compiles a Config. Returns a *PatternError for the first
// pattern that fails to compile as a regular expression, and a
// *ConfigurationError when a required category is empty.
func NewRuleset(cfg Config) (*Ruleset, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rs := &Ruleset{}
	for _, cat := range []struct {
		bucket   Bucket
		patterns []string
		dst      *match.Set
	}{
		{BucketIgnored, cfg.Ignore, &rs.ignore},
		{BucketR1, cfg.R1, &rs.r1},
		{BucketR2, cfg.R2, &rs.r2},
	} {
		set, bad, err := match.CompileSet(cat.patterns)
		if err != nil {
			return nil, &PatternError{Category: cat.bucket, Pattern: bad, Cause: err}
		}
		*cat.dst = set
	}

	return rs, nil
}

// Classify matches a single filename against the compiled patterns.
// Filenames that match no pattern are reported as BucketUnmatched with an
// empty Pattern, never dropped.
func (rs *Ruleset) Classify(name string) Decision {
	if p, ok := rs.ignore.Match(name); ok {
		return Decision{Filename: name, Bucket: BucketIgnored, Pattern: p}
	}
	if p, ok := rs.r1.Match(name); ok {
		return Decision{Filename: name, Bucket: BucketR1, Pattern: p}
	}
	if p, ok := rs.r2.Match(name); ok {
		return Decision{Filename: name, Bucket: BucketR2, Pattern: p}
	}
	return Decision{Filename: name, Bucket: BucketUnmatched}
}
