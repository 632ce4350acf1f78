// Package draft defines the scenario draft data model shared by the
// synthesis pipeline, the validators, the quality gates and the exporters.
package draft

import (
	"strconv"
	"strings"
)

// Step is a single manual test step. Setup and teardown bookends carry an
// empty Expected.
type Step struct {
	Action   string `json:"action" yaml:"action"`
	Expected string `json:"expected" yaml:"expected"`
}

// Draft is one synthesized scenario. Title always follows
// "<id>: <Feature> / <Area> / <Scenario>" with an optional trailing
// "(<Platform>)" qualifier on accessibility drafts.
type Draft struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Objective    string   `json:"objective" yaml:"objective"`
	Steps        []Step   `json:"steps" yaml:"steps"`
	SourceACID   string   `json:"source_ac_id" yaml:"source_ac_id"`
	EvidenceRefs []string `json:"evidence_refs" yaml:"evidence_refs"`

	// Platform is set only on accessibility drafts ("Windows 11", "iPad",
	// "Android Tablet"). Coverage accounting keys off this field.
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`
}

// Seq returns the draft id's sequence segment, the part after the last
// dash ("272889-AC1" yields "AC1", "272889-015" yields "015").
func (d *Draft) Seq() string {
	if i := strings.LastIndexByte(d.ID, '-'); i >= 0 {
		return d.ID[i+1:]
	}
	return d.ID
}

// CoverageIndex maps the draft back to the 1-based acceptance-criteria
// ordinal it covers. The availability draft is pinned to the first bullet;
// numbered drafts recover the ordinal from the sequence counter, which
// advances in steps of five starting at five. Accessibility drafts cover
// the run as a whole and report ok=false.
func (d *Draft) CoverageIndex() (idx int, ok bool) {
	if d.Platform != "" {
		return 0, false
	}
	seq := d.Seq()
	if seq == "AC1" {
		return 1, true
	}
	n, err := strconv.Atoi(seq)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n/5 + 1, true
}

// Accessibility reports whether the draft targets an assistive-technology
// pass on a specific platform.
func (d *Draft) Accessibility() bool { return d.Platform != "" }
