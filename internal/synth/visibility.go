package synth

import (
	"fmt"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
	"blueprint/internal/naming"
)

// VisibilityBuilder emits a navigation plus visibility verification draft.
type VisibilityBuilder struct {
	ctx *Context
}

func (b *VisibilityBuilder) Name() string { return "visibility" }

func (b *VisibilityBuilder) Build(bl *evidence.Bullet, ordinal int) []draft.Draft {
	if !b.ctx.Rules.Has(evidence.Visibility) || !bl.Has(evidence.Visibility) {
		return nil
	}
	entry := b.ctx.entryPoint()
	id := b.ctx.id(b.ctx.Seq.Next())
	steps := []draft.Step{
		b.ctx.launchStep(),
		{
			Action:   fmt.Sprintf("Open the %s.", entry),
			Expected: fmt.Sprintf("The %s is displayed.", entry),
		},
		{
			Action:   fmt.Sprintf("Verify that %s is visible in the %s.", b.ctx.Feature, entry),
			Expected: fmt.Sprintf("%s is visible.", b.ctx.Feature),
		},
	}
	return []draft.Draft{{
		ID:           id,
		Title:        b.ctx.title(id, entry, naming.Scenario(bl.Text, ordinal)),
		Objective:    fmt.Sprintf("Verify that %s is visible in the %s.", b.ctx.Feature, entry),
		Steps:        b.ctx.finalize(steps),
		SourceACID:   bl.ID,
		EvidenceRefs: b.ctx.Rules.EvidenceRefs(evidence.Visibility),
	}}
}
