package synth

import (
	"fmt"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
	"blueprint/internal/naming"
)

// AvailabilityBuilder covers the entry-point requirement that by convention
// opens every acceptance-criteria list. It always emits the fixed "AC1" id
// and never consumes the sequence counter.
type AvailabilityBuilder struct {
	ctx *Context
}

func (b *AvailabilityBuilder) Name() string { return "availability" }

func (b *AvailabilityBuilder) Build(bl *evidence.Bullet, ordinal int) []draft.Draft {
	if ordinal != 1 || !b.ctx.Rules.Has(evidence.Availability) {
		return nil
	}
	entry := b.ctx.entryPoint()
	id := b.ctx.id("AC1")
	steps := []draft.Step{
		b.ctx.launchStep(),
		{
			Action:   fmt.Sprintf("Open the %s.", entry),
			Expected: fmt.Sprintf("The %s is displayed.", entry),
		},
		{
			Action:   fmt.Sprintf("Locate %s in the %s.", b.ctx.Feature, entry),
			Expected: fmt.Sprintf("%s is visible and can be activated.", b.ctx.Feature),
		},
	}
	return []draft.Draft{{
		ID:           id,
		Title:        b.ctx.title(id, entry, naming.Scenario(bl.Text, ordinal)),
		Objective:    fmt.Sprintf("Verify that %s is available and can be activated from the %s.", b.ctx.Feature, entry),
		Steps:        b.ctx.finalize(steps),
		SourceACID:   bl.ID,
		EvidenceRefs: b.ctx.Rules.EvidenceRefs(evidence.Availability),
	}}
}
