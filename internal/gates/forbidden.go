package gates

import (
	"fmt"
	"regexp"

	"blueprint/internal/draft"
)

// forbiddenStepRes are wording patterns that make a manual step ambiguous
// for the tester. One violation is reported per matching pattern per
// location; a step's action and expected text are scanned independently.
var forbiddenStepRes = []*regexp.Regexp{
	regexp.MustCompile(`\bor\b`),
	regexp.MustCompile(`\bOR\b`),
	regexp.MustCompile(`if\s+available`),
	regexp.MustCompile(`if\s+supported`),
	regexp.MustCompile(`where\s+safe`),
	regexp.MustCompile(`\(e\.g\.,\s+[^)]+\s+or\s+`),
}

// ScanForbidden reports ambiguous wording in step actions and expected
// results.
func ScanForbidden(drafts []draft.Draft) []string {
	var errs []string
	for i := range drafts {
		d := &drafts[i]
		for si, step := range d.Steps {
			for _, re := range forbiddenStepRes {
				if m := re.FindString(step.Action); m != "" {
					errs = append(errs, fmt.Sprintf("draft %s step %d: forbidden wording %q in action", d.ID, si+1, m))
				}
				if m := re.FindString(step.Expected); m != "" {
					errs = append(errs, fmt.Sprintf("draft %s step %d: forbidden wording %q in expected", d.ID, si+1, m))
				}
			}
		}
	}
	return errs
}
