// Package frmatcher classifies sequencing-read filenames into forward
// (R1), reverse (R2), ignored, and unmatched buckets by matching each name
// against configurable pattern sets.
//
// Patterns are either literal substrings or regular expressions; a pattern
// containing regex metacharacters is treated as a regex, anything else as a
// literal substring. Categories are evaluated in strict precedence order
// ignore → r1 → r2, so an index-read filename that also carries an _1/_2
// token is still ignored.
//
// # Basic Usage
//
//	c, err := frmatcher.New([]string{
//	    "sample_1_L001.fastq.gz",
//	    "sample_2_L001.fastq.gz",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := c.Categorize()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.R1) // [sample_1_L001.fastq.gz]
//	fmt.Println(res.R2) // [sample_2_L001.fastq.gz]
//
// The pattern configuration is a public field and may be replaced between
// Categorize calls:
//
//	c.Patterns.R1 = []string{"_fwd"}
//	c.Patterns.R2 = []string{"_rev"}
//	res, err = c.Categorize() // uses the new patterns
//
// Pattern sets can also be loaded from YAML files via the pattern
// subpackage; the core never reads from disk itself.
package frmatcher
