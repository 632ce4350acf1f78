package validate

import (
	"strings"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
)

// maxDraftsPerRequirement caps coverage at one primary draft plus three
// extras.
const maxDraftsPerRequirement = 4

// Mapping checks that every draft traces back to a known evidence bullet
// and that every non-cancelled acceptance bullet is covered by at least
// one and at most four drafts. No semantic de-duplication is attempted
// beyond counting distinct coverage-type tags derived from draft titles.
func Mapping(rs *evidence.Ruleset, drafts []draft.Draft) Verdict {
	var v Verdict
	counts := make(map[string]int)
	tags := make(map[string]map[string]bool)
	for i := range drafts {
		d := &drafts[i]
		if d.SourceACID == "" {
			v.reject("draft %s: missing source_ac_id", d.ID)
			continue
		}
		if !rs.KnownBullet(d.SourceACID) {
			v.reject("draft %s: source_ac_id %q does not match any evidence bullet", d.ID, d.SourceACID)
			continue
		}
		counts[d.SourceACID]++
		if tags[d.SourceACID] == nil {
			tags[d.SourceACID] = make(map[string]bool)
		}
		tags[d.SourceACID][CoverageTag(d)] = true
	}
	for _, bl := range rs.ACBullets() {
		if bl.Cancelled {
			continue
		}
		switch n := counts[bl.ID]; {
		case n == 0:
			v.reject("%s: no coverage", bl.ID)
		case n > maxDraftsPerRequirement:
			v.reject("%s: %d drafts exceed the 1 primary + 3 extra cap (%d coverage types)",
				bl.ID, n, len(tags[bl.ID]))
		}
	}
	return v
}

// CoverageTag derives the draft's coverage type from its title wording.
func CoverageTag(d *draft.Draft) string {
	if d.Accessibility() {
		return "accessibility"
	}
	title := strings.ToLower(d.Title)
	switch {
	case strings.Contains(title, "undo"):
		return "undo_redo"
	case strings.Contains(title, "boundary") || strings.Contains(title, "wrap") ||
		strings.Contains(title, "rotation near") || strings.Contains(title, "rotation at"):
		return "boundary"
	case strings.Contains(title, "disabled"):
		return "negative"
	case strings.Contains(title, "availab"):
		return "availability"
	case strings.Contains(title, "visib"):
		return "visibility"
	default:
		return "action"
	}
}
