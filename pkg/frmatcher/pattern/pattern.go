// Package pattern loads filename pattern sets from YAML configuration
// files. It is the external collaborator that feeds frmatcher.Config: the
// classifier core never reads from disk itself.
package pattern

import "github.com/odinokov/frmatcher/pkg/frmatcher"

// File represents the structure of a YAML pattern file.
//
// Example YAML file:
//
//	version: 1
//	patterns:
//	  r1:
//	    - "_1"
//	    - "_R1"
//	  r2:
//	    - "_2"
//	    - "_R2"
//	  ignore:
//	    - "^i_"
//	    - "^I_"
//	    - '_i\d+'
//	    - '_I\d+'
type File struct {
	// Version is the pattern file format version. Currently only version 1
	// is supported.
	Version int `yaml:"version"`

	// Patterns holds the three category pattern lists. r1 and r2 are
	// required and must be non-empty; ignore is optional.
	Patterns Categories `yaml:"patterns"`
}

// Categories mirrors the three classification categories.
type Categories struct {
	R1     []string `yaml:"r1"`
	R2     []string `yaml:"r2"`
	Ignore []string `yaml:"ignore"`
}

// Config converts the loaded file into a classifier configuration.
func (f *File) Config() frmatcher.Config {
	return frmatcher.Config{
		R1:     f.Patterns.R1,
		R2:     f.Patterns.R2,
		Ignore: f.Patterns.Ignore,
	}
}
