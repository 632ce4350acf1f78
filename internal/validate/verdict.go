// Package validate holds the post-synthesis validation passes: mapping
// (requirement coverage bookkeeping) and evidence (wording licensing).
// Both return a Verdict; deciding whether a rejection aborts the run is
// the caller's job.
package validate

import "fmt"

// Verdict is the outcome of one validation pass. An empty error list
// means accepted.
type Verdict struct {
	Errors []string
}

// Accepted reports whether the pass found no violations.
func (v Verdict) Accepted() bool { return len(v.Errors) == 0 }

func (v *Verdict) reject(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
