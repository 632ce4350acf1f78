package validate

import (
	"strings"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
)

// Evidence checks every step's wording against the licensing flags of the
// ruleset. Feedback, layout and hotkey families each require their
// explicit flag; a WCAG mention requires an explicit standard; keyboard
// language on a touch platform is rejected unless the standard itself
// names the keyboard.
func Evidence(rs *evidence.Ruleset, drafts []draft.Draft) Verdict {
	var v Verdict
	for i := range drafts {
		d := &drafts[i]
		tablet := d.Platform == "iPad" || d.Platform == "Android Tablet"
		for si, step := range d.Steps {
			for _, text := range []string{step.Action, step.Expected} {
				lower := strings.ToLower(text)
				if !rs.ExplicitFeedback() {
					if w := firstMatch(lower, evidence.FeedbackWords); w != "" {
						v.reject("draft %s step %d: %q is not licensed by feedback evidence", d.ID, si+1, w)
					}
				}
				if !rs.ExplicitLayoutBehavior() {
					if w := firstMatch(lower, evidence.LayoutWords); w != "" {
						v.reject("draft %s step %d: %q is not licensed by layout evidence", d.ID, si+1, w)
					}
				}
				if !rs.ExplicitHotkeys() {
					if w := firstMatch(lower, evidence.HotkeyWords); w != "" {
						v.reject("draft %s step %d: %q is not licensed by hotkey evidence", d.ID, si+1, w)
					}
				}
				if strings.Contains(lower, "wcag") && rs.AccessibilityStandard() == "" {
					v.reject("draft %s step %d: wcag mention without an explicit accessibility standard", d.ID, si+1)
				}
				if tablet && strings.Contains(lower, "keyboard") && !keyboardLicensed(rs) {
					v.reject("draft %s step %d: keyboard language on touch platform %s", d.ID, si+1, d.Platform)
				}
			}
		}
	}
	return v
}

// keyboardLicensed allows keyboard wording on tablet drafts only when the
// accessibility signal is present and the explicit standard itself
// mentions the keyboard.
func keyboardLicensed(rs *evidence.Ruleset) bool {
	return rs.Has(evidence.Accessibility) &&
		strings.Contains(strings.ToLower(rs.AccessibilityStandard()), "keyboard")
}

func firstMatch(lower string, words []string) string {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return w
		}
	}
	return ""
}
