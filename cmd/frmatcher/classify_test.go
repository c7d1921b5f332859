package main

import (
	"strings"
	"testing"
)

func TestReadFilenames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "one per line",
			input: "sample_1.fq\nsample_2.fq\n",
			want:  []string{"sample_1.fq", "sample_2.fq"},
		},
		{
			name:  "blank lines skipped",
			input: "sample_1.fq\n\n  \nsample_2.fq",
			want:  []string{"sample_1.fq", "sample_2.fq"},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  sample_1.fq\t\n",
			want:  []string{"sample_1.fq"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readFilenames(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readFilenames() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("readFilenames() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("readFilenames()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
