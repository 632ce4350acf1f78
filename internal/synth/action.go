package synth

import (
	"fmt"
	"strings"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
	"blueprint/internal/naming"
)

// actionVerbs is the ordered keyword table the action type is extracted
// from. First match wins.
var actionVerbs = []struct {
	keyword string
	verb    string
	past    string
}{
	{"deactivate", "Deactivate", "deactivated"},
	{"activate", "Activate", "activated"},
	{"disable", "Disable", "disabled"},
	{"enable", "Enable", "enabled"},
	{"toggle", "Toggle", "toggled"},
	{"remove", "Remove", "removed"},
	{"add", "Add", "added"},
}

func actionVerb(text string) (verb, past string) {
	lower := strings.ToLower(text)
	for _, av := range actionVerbs {
		if strings.Contains(lower, av.keyword) {
			return av.verb, av.past
		}
	}
	return "Apply", "applied"
}

// ActionBuilder emits one draft exercising the bullet's primary action
// verb, with selection setup when the evidence requires a selected object.
type ActionBuilder struct {
	ctx *Context
}

func (b *ActionBuilder) Name() string { return "action" }

func (b *ActionBuilder) Build(bl *evidence.Bullet, ordinal int) []draft.Draft {
	if !b.ctx.Rules.Has(evidence.Action) || !bl.Has(evidence.Action) {
		return nil
	}
	verb, past := actionVerb(bl.Text)
	entry := b.ctx.entryPoint()
	id := b.ctx.id(b.ctx.Seq.Next())

	steps := []draft.Step{b.ctx.launchStep()}
	if b.ctx.Rules.RequiresSelection() {
		steps = append(steps, b.ctx.selectionSteps()...)
	}
	steps = append(steps,
		draft.Step{
			Action:   fmt.Sprintf("%s %s from the %s.", verb, b.ctx.Feature, entry),
			Expected: fmt.Sprintf("%s is %s.", b.ctx.Feature, past),
		},
		draft.Step{
			Action:   fmt.Sprintf("Verify that %s is %s successfully.", b.ctx.Feature, past),
			Expected: fmt.Sprintf("%s is %s and behaves as expected.", b.ctx.Feature, past),
		},
	)
	return []draft.Draft{{
		ID:           id,
		Title:        b.ctx.title(id, entry, naming.Scenario(bl.Text, ordinal)),
		Objective:    fmt.Sprintf("Verify that %s can be %s from the %s.", b.ctx.Feature, past, entry),
		Steps:        b.ctx.finalize(steps),
		SourceACID:   bl.ID,
		EvidenceRefs: b.ctx.Rules.EvidenceRefs(evidence.Action),
	}}
}
