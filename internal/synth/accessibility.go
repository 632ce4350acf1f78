package synth

import (
	"fmt"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
)

// accessibilityArea is the title area for all assistive-technology drafts.
const accessibilityArea = "WCAG Compliance"

// AccessibilityBuilder emits one draft per evidence-named platform for the
// first bullet carrying the accessibility signal, then stays quiet for the
// rest of the run. Tablet drafts assert touch plus screen-reader access
// and never mention a keyboard.
type AccessibilityBuilder struct {
	ctx     *Context
	emitted bool
}

func (b *AccessibilityBuilder) Name() string { return "accessibility" }

func (b *AccessibilityBuilder) Build(bl *evidence.Bullet, ordinal int) []draft.Draft {
	if b.emitted || !b.ctx.Rules.Has(evidence.Accessibility) || !bl.Has(evidence.Accessibility) {
		return nil
	}
	platforms := b.ctx.Rules.Platforms()
	if len(platforms) == 0 {
		platforms = []string{"Windows 11"}
	}
	out := make([]draft.Draft, 0, len(platforms))
	for _, platform := range platforms {
		id := b.ctx.id(b.ctx.Seq.Next())
		scenario, steps := b.platformSteps(platform)
		out = append(out, draft.Draft{
			ID:           id,
			Title:        fmt.Sprintf("%s (%s)", b.ctx.title(id, accessibilityArea, scenario), platform),
			Objective:    fmt.Sprintf("Verify that %s is accessible with assistive technology on %s.", b.ctx.Feature, platform),
			Steps:        b.ctx.finalize(steps),
			SourceACID:   bl.ID,
			EvidenceRefs: b.ctx.Rules.EvidenceRefs(evidence.Accessibility),
			Platform:     platform,
		})
	}
	b.emitted = true
	return out
}

func (b *AccessibilityBuilder) platformSteps(platform string) (scenario string, steps []draft.Step) {
	feature := b.ctx.Feature
	steps = []draft.Step{b.ctx.launchStep()}
	switch platform {
	case "Windows 11":
		scenario = "Keyboard Navigation And Focus Indicators"
		steps = append(steps,
			draft.Step{
				Action:   fmt.Sprintf("Navigate to %s using only the Tab and arrow keys.", feature),
				Expected: fmt.Sprintf("Keyboard focus reaches %s with a visible focus indicator.", feature),
			},
			draft.Step{
				Action:   fmt.Sprintf("Activate %s with the Enter key.", feature),
				Expected: fmt.Sprintf("%s is activated.", feature),
			},
			draft.Step{
				Action:   "Inspect the control with Accessibility Insights.",
				Expected: "The control exposes a name, a role and a state to assistive technology.",
			},
		)
	case "iPad":
		scenario = "Touch Access With VoiceOver"
		steps = append(steps, touchReaderSteps(feature, "VoiceOver", "iPadOS settings")...)
	case "Android Tablet":
		scenario = "Touch Access With TalkBack"
		steps = append(steps, touchReaderSteps(feature, "TalkBack", "Android settings")...)
	default:
		scenario = "Assistive Technology Access"
		steps = append(steps,
			draft.Step{
				Action:   fmt.Sprintf("Navigate to %s with the platform screen reader active.", feature),
				Expected: "The screen reader announces the control's name and role.",
			},
			draft.Step{
				Action:   fmt.Sprintf("Activate %s.", feature),
				Expected: fmt.Sprintf("%s is activated.", feature),
			},
		)
	}
	return scenario, steps
}

func touchReaderSteps(feature, reader, settings string) []draft.Step {
	return []draft.Step{
		{
			Action:   fmt.Sprintf("Enable %s in %s.", reader, settings),
			Expected: fmt.Sprintf("%s is active.", reader),
		},
		{
			Action:   fmt.Sprintf("Touch %s on screen.", feature),
			Expected: fmt.Sprintf("%s announces the control's name and role.", reader),
		},
		{
			Action:   fmt.Sprintf("Double-tap to activate %s.", feature),
			Expected: fmt.Sprintf("%s is activated.", feature),
		},
	}
}
