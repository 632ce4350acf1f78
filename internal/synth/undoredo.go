package synth

import (
	"fmt"
	"strings"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
)

// UndoRedoBuilder emits the full apply, undo, verify, redo, verify cycle
// for bullets that signal undo/redo support.
type UndoRedoBuilder struct {
	ctx *Context
}

func (b *UndoRedoBuilder) Name() string { return "undo_redo" }

// undoableAction picks the concrete action step the cycle is exercised
// through. Falls back to a generic action when the text names none.
func (b *UndoRedoBuilder) undoableAction(text string) draft.Step {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "rotat"):
		return draft.Step{
			Action:   "Rotate the selected object using the rotation handle.",
			Expected: "The object is rotated.",
		}
	case strings.Contains(lower, "move") || strings.Contains(lower, "drag"):
		return draft.Step{
			Action:   "Move the selected object by dragging it.",
			Expected: "The object is moved.",
		}
	case strings.Contains(lower, "mirror") || strings.Contains(lower, "flip"):
		return draft.Step{
			Action:   "Mirror the selected object.",
			Expected: "The object is mirrored.",
		}
	default:
		return draft.Step{
			Action:   fmt.Sprintf("Perform the %s action on the selected object.", b.ctx.Feature),
			Expected: "The action is applied to the object.",
		}
	}
}

func (b *UndoRedoBuilder) Build(bl *evidence.Bullet, ordinal int) []draft.Draft {
	if !b.ctx.Rules.Has(evidence.UndoRedo) || !bl.Has(evidence.UndoRedo) {
		return nil
	}
	id := b.ctx.id(b.ctx.Seq.Next())

	steps := []draft.Step{b.ctx.launchStep()}
	steps = append(steps, b.ctx.selectionSteps()...)
	steps = append(steps,
		b.undoableAction(bl.Text),
		draft.Step{
			Action:   "Verify that the action is applied.",
			Expected: "The object reflects the applied action.",
		},
		draft.Step{
			Action:   "Execute Undo command from Edit menu or toolbar.",
			Expected: "Previous state is restored.",
		},
		draft.Step{
			Action:   "Verify that the object returns to its previous state.",
			Expected: "The object matches its state before the action.",
		},
		draft.Step{
			Action:   "Execute Redo command from Edit menu or toolbar.",
			Expected: "Action is reapplied.",
		},
		draft.Step{
			Action:   "Verify that the object reflects the reapplied action.",
			Expected: "The object matches its state after the original action.",
		},
	)
	return []draft.Draft{{
		ID:           id,
		Title:        b.ctx.title(id, "Edit Menu", "Undo Redo Support"),
		Objective:    fmt.Sprintf("Verify that the last %s action can be undone and redone.", b.ctx.Feature),
		Steps:        b.ctx.finalize(steps),
		SourceACID:   bl.ID,
		EvidenceRefs: b.ctx.Rules.EvidenceRefs(evidence.UndoRedo),
	}}
}
