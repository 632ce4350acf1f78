package synth

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"blueprint/internal/evidence"
)

func TestSequence_Allocation(t *testing.T) {
	s := NewSequence()
	want := []string{"005", "010", "015", "020"}
	for _, w := range want {
		if got := s.Next(); got != w {
			t.Errorf("Next() = %q, want %q", got, w)
		}
	}
}

func testContext(rs *evidence.Ruleset) *Context {
	return &Context{
		Rules:   rs,
		Seq:     NewSequence(),
		StoryID: "272889",
		Feature: "MirrorTool",
		App:     DefaultApp,
	}
}

func TestAccessibilityBuilder_TabletPlatforms(t *testing.T) {
	eb := evidence.NewBuilder()
	bl := eb.AddQAPrep("Confirm with VoiceOver on iPad and TalkBack on Android tablets.")
	rs := eb.Finish()

	b := &AccessibilityBuilder{ctx: testContext(rs)}
	ds := b.Build(bl, 0)
	if len(ds) != 2 {
		t.Fatalf("drafts = %d, want 2", len(ds))
	}
	wantPlatforms := []string{"Android Tablet", "iPad"}
	for i, d := range ds {
		if d.Platform != wantPlatforms[i] {
			t.Errorf("draft %d platform = %q, want %q", i, d.Platform, wantPlatforms[i])
		}
		for _, s := range d.Steps {
			text := strings.ToLower(s.Action + " " + s.Expected)
			if strings.Contains(text, "keyboard") {
				t.Errorf("tablet draft %s mentions keyboard: %+v", d.ID, s)
			}
		}
	}

	if again := b.Build(bl, 0); again != nil {
		t.Errorf("second build emitted %d drafts, want none", len(again))
	}
}

func TestAccessibilityBuilder_DefaultsToWindows(t *testing.T) {
	eb := evidence.NewBuilder()
	bl := eb.AddQAPrep("Verify screen reader accessibility of the mirror controls.")
	rs := eb.Finish()

	ds := (&AccessibilityBuilder{ctx: testContext(rs)}).Build(bl, 0)
	if len(ds) != 1 {
		t.Fatalf("drafts = %d, want 1", len(ds))
	}
	if ds[0].Platform != "Windows 11" {
		t.Errorf("platform = %q, want Windows 11", ds[0].Platform)
	}
	if !strings.Contains(ds[0].Title, "(Windows 11)") {
		t.Errorf("title %q lacks platform qualifier", ds[0].Title)
	}
}

func TestNegativeStateBuilder_RequiresExplicitNegative(t *testing.T) {
	eb := evidence.NewBuilder()
	vague := eb.AddAC("The command might not always work.")
	explicit := eb.AddAC("The command is disabled when there is no selection.")
	rs := eb.Finish()

	b := &NegativeStateBuilder{ctx: testContext(rs)}
	if ds := b.Build(vague, 1); ds != nil {
		t.Errorf("vague bullet produced %d drafts", len(ds))
	}
	ds := b.Build(explicit, 2)
	if len(ds) != 1 {
		t.Fatalf("explicit bullet produced %d drafts, want 1", len(ds))
	}
	if !strings.Contains(ds[0].Title, "Disabled When No Selection") {
		t.Errorf("title = %q", ds[0].Title)
	}
}

func TestClassifyBoundary(t *testing.T) {
	tests := []struct {
		text string
		want boundaryKind
	}{
		{"Rotation is limited to a maximum of 360 degrees.", boundaryNear360},
		{"The angle wraps to the start of the range.", boundaryWrap},
		{"Rotation stops at 0 degrees.", boundaryAtZero},
		{"The zoom level has an upper limit.", boundaryGeneric},
	}
	for _, tt := range tests {
		if got := classifyBoundary(tt.text); got != tt.want {
			t.Errorf("classifyBoundary(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestActionVerb(t *testing.T) {
	tests := []struct {
		text string
		verb string
		past string
	}{
		{"Users can toggle the overlay.", "Toggle", "toggled"},
		{"Deactivate the grid from the View menu.", "Deactivate", "deactivated"},
		{"Remove the selected object.", "Remove", "removed"},
		{"Mirror the shape across its axis.", "Apply", "applied"},
	}
	for _, tt := range tests {
		verb, past := actionVerb(tt.text)
		if verb != tt.verb || past != tt.past {
			t.Errorf("actionVerb(%q) = %q/%q, want %q/%q", tt.text, verb, past, tt.verb, tt.past)
		}
	}
}

func TestFinalize_KeepsExistingBookends(t *testing.T) {
	ctx := testContext(evidence.NewBuilder().Finish())
	steps := ctx.finalize(ctx.finalize(nil))
	if len(steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(steps))
	}
	want := []string{
		"PRE-REQ: QuickDraw application is installed.",
		"Close the QuickDraw application.",
	}
	got := []string{steps[0].Action, steps[1].Action}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bookends mismatch (-want +got):\n%s", diff)
	}
}
