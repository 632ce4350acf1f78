package gates

import (
	"fmt"
	"regexp"
	"strings"

	"blueprint/internal/draft"
)

// forbiddenAreas are title area segments too vague to name a concrete UI
// surface.
var forbiddenAreas = map[string]bool{
	"Functionality": true,
	"Accessibility": true,
	"Behavior":      true,
	"Validation":    true,
	"General":       true,
	"System":        true,
}

var genericScenarioRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:verify|test|check)\b`),
	regexp.MustCompile(`^(?:Enable|Disable|Modify|Update|Select)\s+\w+$`),
}

// platformSuffixRe strips a trailing "(Windows 11)" style qualifier before
// the scenario segment is judged.
var platformSuffixRe = regexp.MustCompile(`\s+\([^)]+\)$`)

// CheckTitles verifies the "<id>: <Feature> / <Area> / <Scenario>" grammar,
// rejects vague area terms and rejects generic scenario phrasings. The
// entry-point draft is exempt from the generic-scenario check because its
// availability phrasing is fixed by convention; that same phrasing is
// rejected on every other draft.
func CheckTitles(drafts []draft.Draft) []string {
	var errs []string
	for i := range drafts {
		d := &drafts[i]
		prefix := d.ID + ": "
		if !strings.HasPrefix(d.Title, prefix) {
			errs = append(errs, fmt.Sprintf("draft %s: title does not start with its id", d.ID))
			continue
		}
		parts := strings.Split(strings.TrimPrefix(d.Title, prefix), " / ")
		if len(parts) < 3 {
			errs = append(errs, fmt.Sprintf("draft %s: title needs feature, area and scenario segments", d.ID))
			continue
		}
		// A feature name may itself contain " / "; the area and scenario
		// are always the last two segments.
		area := parts[len(parts)-2]
		scenario := platformSuffixRe.ReplaceAllString(parts[len(parts)-1], "")
		if forbiddenAreas[area] {
			errs = append(errs, fmt.Sprintf("draft %s: area %q is forbidden", d.ID, area))
		}
		if len(strings.Fields(scenario)) < 2 {
			errs = append(errs, fmt.Sprintf("draft %s: scenario %q is too short", d.ID, scenario))
		}
		if d.Seq() != "AC1" {
			if strings.Contains(strings.ToLower(scenario), "feature availability") {
				errs = append(errs, fmt.Sprintf("draft %s: scenario %q is reserved for the entry-point draft", d.ID, scenario))
			}
			for _, re := range genericScenarioRes {
				if re.MatchString(scenario) {
					errs = append(errs, fmt.Sprintf("draft %s: scenario %q is generic", d.ID, scenario))
					break
				}
			}
		}
	}
	return errs
}
