// Package synth turns a finished evidence ruleset into scenario drafts.
// Each builder is gated on extracted signals, never on raw requirement
// text; text is consulted only for parameter extraction once a signal has
// licensed generation.
package synth

import (
	"fmt"
	"regexp"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
)

// DefaultApp is the application display name used in launch, precondition
// and close steps when the story does not name one.
const DefaultApp = "QuickDraw"

// defaultEntryPoint is assumed when evidence names no UI entry point.
const defaultEntryPoint = "Edit Menu"

// Context carries the run-scoped collaborators every builder consults: the
// sealed ruleset, the shared id sequence and the story's display strings.
type Context struct {
	Rules   *evidence.Ruleset
	Seq     *Sequence
	StoryID string
	Feature string
	App     string
}

// Builder produces zero or more drafts for one evidence bullet. Ordinal is
// the bullet's 1-based position in the acceptance-criteria list.
type Builder interface {
	Name() string
	Build(bl *evidence.Bullet, ordinal int) []draft.Draft
}

func (c *Context) id(seq string) string {
	return c.StoryID + "-" + seq
}

func (c *Context) title(id, area, scenario string) string {
	return fmt.Sprintf("%s: %s / %s / %s", id, c.Feature, area, scenario)
}

// entryPoint returns the first evidence-named entry point, or the default.
func (c *Context) entryPoint() string {
	if eps := c.Rules.EntryPoints(); len(eps) > 0 {
		return eps[0]
	}
	return defaultEntryPoint
}

// objectType returns the first evidence-named object type, or "rectangle".
func (c *Context) objectType() string {
	if ots := c.Rules.ObjectTypes(); len(ots) > 0 {
		return ots[0]
	}
	return "rectangle"
}

func (c *Context) launchStep() draft.Step {
	return draft.Step{
		Action:   fmt.Sprintf("Launch the %s application.", c.App),
		Expected: "Application launches successfully.",
	}
}

// selectionSteps set up one drawn, selected object for builders whose
// verification acts on a selection.
func (c *Context) selectionSteps() []draft.Step {
	shape := c.objectType()
	return []draft.Step{
		{
			Action:   fmt.Sprintf("Draw a %s on the canvas.", shape),
			Expected: fmt.Sprintf("The %s appears on the canvas.", shape),
		},
		{
			Action:   fmt.Sprintf("Select the %s.", shape),
			Expected: fmt.Sprintf("Selection handles appear around the %s.", shape),
		},
	}
}

var (
	preReqStepRe = regexp.MustCompile(`(?i)^pre-req`)
	closeStepRe  = regexp.MustCompile(`(?i)\b(close|exit)\b`)
)

// finalize applies the shared bookend policy: a precondition step is
// prepended unless one is already present, and a termination step is
// appended unless one is already present. Both bookends carry an empty
// expected result.
func (c *Context) finalize(steps []draft.Step) []draft.Step {
	hasPre := false
	hasClose := false
	for _, s := range steps {
		if preReqStepRe.MatchString(s.Action) {
			hasPre = true
		}
		if closeStepRe.MatchString(s.Action) {
			hasClose = true
		}
	}
	if !hasPre {
		pre := draft.Step{Action: fmt.Sprintf("PRE-REQ: %s application is installed.", c.App)}
		steps = append([]draft.Step{pre}, steps...)
	}
	if !hasClose {
		steps = append(steps, draft.Step{Action: fmt.Sprintf("Close the %s application.", c.App)})
	}
	return steps
}
