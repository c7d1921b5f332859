package frmatcher

// Config holds the active pattern set: one ordered pattern list per
// category. Patterns are either literal substrings or regular expressions;
// a pattern containing regex metacharacters is treated as a regex, anything
// else as a literal. The decision is made once per categorization, when the
// configuration is compiled into a Ruleset.
//
// R1 and R2 must each contain at least one pattern for categorization to be
// meaningful; Ignore may be empty.
type Config struct {
	R1     []string
	R2     []string
	Ignore []string
}

// DefaultConfig returns the built-in pattern set.
//
// Forward reads are marked with _1/_R1, reverse reads with _2/_R2, and
// index/barcode reads either start with i_/I_ or carry an _i<digits> or
// _I<digits> token.
func DefaultConfig() Config {
	return Config{
		R1: []string{"_1", "_R1"},
		R2: []string{"_2", "_R2"},
		Ignore: []string{
			`^i_`,
			`^I_`,
			`_i\d+`,
			`_I\d+`,
		},
	}
}

// validate checks that the required categories are populated.
func (c Config) validate() error {
	if len(c.R1) == 0 {
		return &ConfigurationError{Field: "r1", Message: "at least one pattern is required"}
	}
	if len(c.R2) == 0 {
		return &ConfigurationError{Field: "r2", Message: "at least one pattern is required"}
	}
	return nil
}
