// Package gates holds the final acceptance checks over a synthesized
// draft set: title structure, forbidden step wording and requirement
// coverage accounting. Each check only collects violations; enforcement
// policy belongs to the caller.
package gates

import "blueprint/internal/draft"

// Report aggregates the findings of all three gates for one run.
type Report struct {
	Title    []string
	Wording  []string
	Coverage []string
}

// Passed reports whether no gate found a violation.
func (r Report) Passed() bool {
	return len(r.Title) == 0 && len(r.Wording) == 0 && len(r.Coverage) == 0
}

// Findings flattens the report in gate order: titles, wording, coverage.
func (r Report) Findings() []string {
	out := make([]string, 0, len(r.Title)+len(r.Wording)+len(r.Coverage))
	out = append(out, r.Title...)
	out = append(out, r.Wording...)
	out = append(out, r.Coverage...)
	return out
}

// Run executes all gates over the final draft set. cancelled holds, per
// 1-based acceptance ordinal, whether that requirement was cancelled; its
// length is the requirement count the coverage gate accounts for.
func Run(drafts []draft.Draft, cancelled []bool) Report {
	return Report{
		Title:    CheckTitles(drafts),
		Wording:  ScanForbidden(drafts),
		Coverage: TrackCoverage(drafts, cancelled),
	}
}
