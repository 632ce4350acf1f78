package synth

import (
	"fmt"
	"regexp"
	"strings"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
)

type boundaryKind int

const (
	boundaryGeneric boundaryKind = iota
	boundaryNear360
	boundaryAtZero
	boundaryWrap
)

var zeroDegreesRe = regexp.MustCompile(`\b0\s*(?:degrees?|°)`)

func classifyBoundary(text string) boundaryKind {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "360"):
		return boundaryNear360
	case strings.Contains(lower, "wrap"):
		return boundaryWrap
	case zeroDegreesRe.MatchString(lower):
		return boundaryAtZero
	default:
		return boundaryGeneric
	}
}

// BoundaryBuilder emits a boundary-inducing action step and a wrap or
// limit verification step for bullets carrying the constraint signal.
type BoundaryBuilder struct {
	ctx *Context
}

func (b *BoundaryBuilder) Name() string { return "boundary" }

func (b *BoundaryBuilder) Build(bl *evidence.Bullet, ordinal int) []draft.Draft {
	if !b.ctx.Rules.Has(evidence.Constraint) || !bl.Has(evidence.Constraint) {
		return nil
	}
	id := b.ctx.id(b.ctx.Seq.Next())
	scenario, probe := b.boundarySteps(classifyBoundary(bl.Text))

	steps := []draft.Step{b.ctx.launchStep()}
	if b.ctx.Rules.RequiresSelection() {
		steps = append(steps, b.ctx.selectionSteps()...)
	}
	steps = append(steps, probe...)

	return []draft.Draft{{
		ID:           id,
		Title:        b.ctx.title(id, "Canvas", scenario),
		Objective:    fmt.Sprintf("Verify that %s handles its boundary condition without errors.", b.ctx.Feature),
		Steps:        b.ctx.finalize(steps),
		SourceACID:   bl.ID,
		EvidenceRefs: b.ctx.Rules.EvidenceRefs(evidence.Constraint),
	}}
}

func (b *BoundaryBuilder) boundarySteps(kind boundaryKind) (scenario string, steps []draft.Step) {
	switch kind {
	case boundaryNear360:
		return "Rotation Near 360 Degrees", []draft.Step{
			{
				Action:   "Rotate the selected object to 359 degrees.",
				Expected: "The object rotates to 359 degrees.",
			},
			{
				Action:   "Rotate the object 2 more degrees.",
				Expected: "The rotation wraps around to 1 degree without errors.",
			},
		}
	case boundaryAtZero:
		return "Rotation At 0 Degrees", []draft.Step{
			{
				Action:   "Rotate the selected object to 0 degrees.",
				Expected: "The object rotates to 0 degrees.",
			},
			{
				Action:   "Rotate the object 1 degree below 0.",
				Expected: "The rotation wraps around to 359 degrees without errors.",
			},
		}
	case boundaryWrap:
		return "Wrap Around Handling", []draft.Step{
			{
				Action:   fmt.Sprintf("Apply the %s action repeatedly past its limit.", b.ctx.Feature),
				Expected: "The value wraps around to the start of its range without errors.",
			},
		}
	default:
		return "Boundary Value Handling", []draft.Step{
			{
				Action:   fmt.Sprintf("Apply %s at its boundary value.", b.ctx.Feature),
				Expected: fmt.Sprintf("%s handles the boundary value without errors.", b.ctx.Feature),
			},
		}
	}
}
