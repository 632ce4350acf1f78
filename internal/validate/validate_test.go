package validate

import (
	"strings"
	"testing"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
)

func twoBulletRuleset(t *testing.T) *evidence.Ruleset {
	t.Helper()
	eb := evidence.NewBuilder()
	eb.AddAC("The feature is available from the Edit menu.")
	eb.AddAC("Undo must revert the last action and Redo must reapply it.")
	return eb.Finish()
}

func coveringDrafts() []draft.Draft {
	return []draft.Draft{
		{ID: "272889-AC1", Title: "272889-AC1: MirrorTool / Edit Menu / Feature Availability", SourceACID: "AC1"},
		{ID: "272889-005", Title: "272889-005: MirrorTool / Edit Menu / Undo Redo Support", SourceACID: "AC2"},
	}
}

func TestMapping_AcceptsFullCoverage(t *testing.T) {
	v := Mapping(twoBulletRuleset(t), coveringDrafts())
	if !v.Accepted() {
		t.Errorf("rejected: %v", v.Errors)
	}
}

func TestMapping_MissingAndUnknownSource(t *testing.T) {
	drafts := coveringDrafts()
	drafts[0].SourceACID = ""
	drafts[1].SourceACID = "AC9"
	v := Mapping(twoBulletRuleset(t), drafts)
	if len(v.Errors) < 2 {
		t.Fatalf("errors = %v, want missing and unknown source errors", v.Errors)
	}
	if !strings.Contains(v.Errors[0], "missing source_ac_id") {
		t.Errorf("first error = %q", v.Errors[0])
	}
	if !strings.Contains(v.Errors[1], "AC9") {
		t.Errorf("second error = %q", v.Errors[1])
	}
}

func TestMapping_FlagsZeroCoverage(t *testing.T) {
	v := Mapping(twoBulletRuleset(t), coveringDrafts()[:1])
	if v.Accepted() {
		t.Fatal("accepted despite an uncovered requirement")
	}
	if !strings.Contains(v.Errors[0], "AC2: no coverage") {
		t.Errorf("error = %q", v.Errors[0])
	}
}

func TestMapping_FlagsExcessDrafts(t *testing.T) {
	drafts := coveringDrafts()
	for _, seq := range []string{"010", "015", "020", "025"} {
		drafts = append(drafts, draft.Draft{
			ID:         "272889-" + seq,
			Title:      "272889-" + seq + ": MirrorTool / Canvas / Rotation Near 360 Degrees",
			SourceACID: "AC2",
		})
	}
	v := Mapping(twoBulletRuleset(t), drafts)
	if v.Accepted() {
		t.Fatal("accepted despite exceeding the draft cap")
	}
	if !strings.Contains(v.Errors[0], "1 primary + 3 extra") {
		t.Errorf("error = %q", v.Errors[0])
	}
}

func TestMapping_IgnoresCancelledBullets(t *testing.T) {
	eb := evidence.NewBuilder()
	eb.AddAC("The feature is available from the Edit menu.")
	eb.AddAC("Grouped mirroring is out of scope and will not be implemented.")
	rs := eb.Finish()
	v := Mapping(rs, coveringDrafts()[:1])
	if !v.Accepted() {
		t.Errorf("rejected: %v", v.Errors)
	}
}

func stepDraft(steps ...draft.Step) []draft.Draft {
	return []draft.Draft{{ID: "272889-005", Title: "272889-005: MirrorTool / Canvas / Toggle Canvas", SourceACID: "AC1", Steps: steps}}
}

func TestEvidence_RejectsUnlicensedWording(t *testing.T) {
	rs := twoBulletRuleset(t)
	tests := []struct {
		name string
		step draft.Step
		want string
	}{
		{"feedback", draft.Step{Action: "Apply the change.", Expected: "A confirmation message appears."}, "feedback"},
		{"layout", draft.Step{Action: "Verify the object position on the canvas.", Expected: "The object is drawn."}, "layout"},
		{"hotkey", draft.Step{Action: "Press the Ctrl+M shortcut.", Expected: "The tool activates."}, "hotkey"},
	}
	for _, tt := range tests {
		v := Evidence(rs, stepDraft(tt.step))
		if v.Accepted() {
			t.Errorf("%s: accepted %+v", tt.name, tt.step)
			continue
		}
		if !strings.Contains(v.Errors[0], tt.want) {
			t.Errorf("%s: error = %q, want mention of %s evidence", tt.name, v.Errors[0], tt.want)
		}
	}
}

func TestEvidence_AllowsLicensedWording(t *testing.T) {
	eb := evidence.NewBuilder()
	eb.AddAC("The feature is available from the Edit menu.")
	eb.AddQAPrep("A notification confirms the change; verify the layout and the Ctrl+M shortcut.")
	rs := eb.Finish()

	v := Evidence(rs, stepDraft(
		draft.Step{Action: "Press the Ctrl+M shortcut.", Expected: "A notification confirms the change."},
		draft.Step{Action: "Verify the layout of the panel.", Expected: "The layout is unchanged."},
	))
	if !v.Accepted() {
		t.Errorf("rejected: %v", v.Errors)
	}
}

func TestEvidence_RejectsWCAGWithoutStandard(t *testing.T) {
	v := Evidence(twoBulletRuleset(t), stepDraft(
		draft.Step{Action: "Check the control against WCAG criteria.", Expected: "The control passes."},
	))
	if v.Accepted() {
		t.Fatal("accepted a wcag mention without an explicit standard")
	}
	if !strings.Contains(v.Errors[0], "wcag") {
		t.Errorf("error = %q", v.Errors[0])
	}
}

func TestEvidence_RejectsKeyboardOnTablet(t *testing.T) {
	eb := evidence.NewBuilder()
	eb.AddAC("Verify WCAG 2.1 AA accessibility with VoiceOver on iPad.")
	rs := eb.Finish()

	drafts := stepDraft(draft.Step{Action: "Navigate using the keyboard.", Expected: "Focus moves."})
	drafts[0].Platform = "iPad"
	v := Evidence(rs, drafts)
	if v.Accepted() {
		t.Fatal("accepted keyboard wording on a touch platform")
	}
	if !strings.Contains(v.Errors[0], "keyboard") {
		t.Errorf("error = %q", v.Errors[0])
	}
}

func TestCoverageTag(t *testing.T) {
	tests := []struct {
		d    draft.Draft
		want string
	}{
		{draft.Draft{Title: "x: F / WCAG Compliance / Touch Access With VoiceOver (iPad)", Platform: "iPad"}, "accessibility"},
		{draft.Draft{Title: "x: F / Edit Menu / Undo Redo Support"}, "undo_redo"},
		{draft.Draft{Title: "x: F / Canvas / Rotation Near 360 Degrees"}, "boundary"},
		{draft.Draft{Title: "x: F / Edit Menu / Disabled When No Selection"}, "negative"},
		{draft.Draft{Title: "x: F / Edit Menu / Feature Availability"}, "availability"},
		{draft.Draft{Title: "x: F / View Menu / Overlay Visibility"}, "visibility"},
		{draft.Draft{Title: "x: F / Edit Menu / Toggle Canvas"}, "action"},
	}
	for _, tt := range tests {
		if got := CoverageTag(&tt.d); got != tt.want {
			t.Errorf("CoverageTag(%q) = %q, want %q", tt.d.Title, got, tt.want)
		}
	}
}
