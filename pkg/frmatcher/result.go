package frmatcher

// Bucket identifies a classification category.
type Bucket string

// Classification buckets. Ignored is an explicit pattern match; Unmatched
// is the absence of any match — the two are never merged.
const (
	BucketR1        Bucket = "R1"
	BucketR2        Bucket = "R2"
	BucketIgnored   Bucket = "ignored"
	BucketUnmatched Bucket = "unmatched"
)

// Decision records a single classification: which bucket a filename landed
// in and which pattern put it there. Pattern is empty for unmatched
// filenames.
type Decision struct {
	Filename string `json:"filename"`
	Bucket   Bucket `json:"bucket"`
	Pattern  string `json:"pattern,omitempty"`
}

// Result holds categorized filenames. Within each bucket, filenames keep
// their relative order from the input. Every input filename appears in
// exactly one bucket.
type Result struct {
	R1        []string `json:"R1"`
	R2        []string `json:"R2"`
	Ignored   []string `json:"ignored"`
	Unmatched []string `json:"unmatched"`
}

// Map returns the result as a bucket-keyed map. Unmatched filenames are
// exposed under their own key rather than folded into "ignored".
func (r *Result) Map() map[Bucket][]string {
	return map[Bucket][]string{
		BucketR1:        r.R1,
		BucketR2:        r.R2,
		BucketIgnored:   r.Ignored,
		BucketUnmatched: r.Unmatched,
	}
}

// Total returns the number of classified filenames across all buckets.
func (r *Result) Total() int {
	return len(r.R1) + len(r.R2) + len(r.Ignored) + len(r.Unmatched)
}

func (r *Result) add(d Decision) {
	switch d.Bucket {
	case BucketR1:
		r.R1 = append(r.R1, d.Filename)
	case BucketR2:
		r.R2 = append(r.R2, d.Filename)
	case BucketIgnored:
		r.Ignored = append(r.Ignored, d.Filename)
	default:
		r.Unmatched = append(r.Unmatched, d.Filename)
	}
}
