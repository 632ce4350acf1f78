package gates

import (
	"fmt"

	"blueprint/internal/draft"
)

// BuildCoverage maps each 1-based requirement ordinal to the ids of the
// drafts that cover it, derived from draft ids alone. Accessibility drafts
// are cross-cutting and excluded from the map.
func BuildCoverage(drafts []draft.Draft) map[int][]string {
	index := make(map[int][]string)
	for i := range drafts {
		d := &drafts[i]
		if ord, ok := d.CoverageIndex(); ok {
			index[ord] = append(index[ord], d.ID)
		}
	}
	return index
}

// TrackCoverage fails every non-cancelled requirement ordinal with no
// associated draft. cancelled's length is the requirement count.
func TrackCoverage(drafts []draft.Draft, cancelled []bool) []string {
	index := BuildCoverage(drafts)
	var errs []string
	for i, skip := range cancelled {
		ord := i + 1
		if skip {
			continue
		}
		if len(index[ord]) == 0 {
			errs = append(errs, fmt.Sprintf("AC%d: no drafts cover this requirement", ord))
		}
	}
	return errs
}
