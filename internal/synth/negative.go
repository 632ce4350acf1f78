package synth

import (
	"fmt"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
)

// NegativeStateBuilder emits disabled-state verification drafts for
// explicitly stated negatives only. Ambiguous text never fabricates a
// negative test.
type NegativeStateBuilder struct {
	ctx *Context
}

func (b *NegativeStateBuilder) Name() string { return "negative" }

func (b *NegativeStateBuilder) Build(bl *evidence.Bullet, ordinal int) []draft.Draft {
	var out []draft.Draft
	for _, tag := range []evidence.NegativeTag{evidence.NoSelection, evidence.EmptyCanvas} {
		if !b.ctx.Rules.HasNegative(tag) || !bl.HasNegative(tag) {
			continue
		}
		out = append(out, b.build(bl, tag))
	}
	return out
}

func (b *NegativeStateBuilder) build(bl *evidence.Bullet, tag evidence.NegativeTag) draft.Draft {
	entry := b.ctx.entryPoint()
	id := b.ctx.id(b.ctx.Seq.Next())

	var scenario, condition string
	steps := []draft.Step{b.ctx.launchStep()}
	switch tag {
	case evidence.NoSelection:
		scenario = "Disabled When No Selection"
		condition = "no object is selected"
		steps = append(steps,
			draft.Step{
				Action:   fmt.Sprintf("Draw a %s on the canvas.", b.ctx.objectType()),
				Expected: "The object appears on the canvas.",
			},
			draft.Step{
				Action:   "Click an empty area of the canvas so that no object is selected.",
				Expected: "No object is selected.",
			},
		)
	default:
		scenario = "Disabled On Empty Canvas"
		condition = "the canvas is empty"
		steps = append(steps, draft.Step{
			Action:   "Verify that the canvas is empty.",
			Expected: "The canvas contains no objects.",
		})
	}
	steps = append(steps, draft.Step{
		Action:   fmt.Sprintf("Attempt to activate %s from the %s.", b.ctx.Feature, entry),
		Expected: fmt.Sprintf("%s is disabled.", b.ctx.Feature),
	})

	return draft.Draft{
		ID:           id,
		Title:        b.ctx.title(id, entry, scenario),
		Objective:    fmt.Sprintf("Verify that %s is disabled when %s.", b.ctx.Feature, condition),
		Steps:        b.ctx.finalize(steps),
		SourceACID:   bl.ID,
		EvidenceRefs: []string{bl.ID},
	}
}
