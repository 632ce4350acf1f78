package evidence

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddAC_AssignsSequentialIDs(t *testing.T) {
	b := NewBuilder()
	first := b.AddAC("The feature is available.")
	second := b.AddAC("Undo reverts the change.")

	if first.ID != "AC1" {
		t.Errorf("first ID = %q, want AC1", first.ID)
	}
	if second.ID != "AC2" {
		t.Errorf("second ID = %q, want AC2", second.ID)
	}
	if first.Source != SourceAC {
		t.Errorf("Source = %q, want AC", first.Source)
	}
}

func TestAddQAPrep_AssignsQAIDs(t *testing.T) {
	b := NewBuilder()
	bl := b.AddQAPrep("Verify undo and redo stability.")
	if bl.ID != "QA-1" {
		t.Errorf("ID = %q, want QA-1", bl.ID)
	}
	if bl.Source != SourceQAPrep {
		t.Errorf("Source = %q, want QA_PREP", bl.Source)
	}
}

func TestExtract_SignalFamilies(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"The option is available from the toolbar.", Availability},
		{"User can toggle the measurement overlay.", Action},
		{"The control shows its enabled state.", StateChange},
		{"The badge is hidden until activation.", Visibility},
		{"Rotation has a maximum of 360 degrees.", Constraint},
		{"Undo reverts the last change.", UndoRedo},
		{"Works with VoiceOver on iPad.", Accessibility},
		{"Settings persist across restarts.", Persistence},
	}
	for _, tt := range tests {
		b := NewBuilder()
		bl := b.AddAC(tt.text)
		if !bl.Has(tt.want) {
			t.Errorf("%q: bullet missing signal %s", tt.text, tt.want)
		}
		if !b.Finish().Has(tt.want) {
			t.Errorf("%q: ruleset missing signal %s", tt.text, tt.want)
		}
	}
}

func TestExtract_NoTriggerIsSilent(t *testing.T) {
	b := NewBuilder()
	bl := b.AddAC("Lorem ipsum dolor sit amet.")
	if got := bl.Signals(); len(got) != 0 {
		t.Errorf("signals = %v, want none", got)
	}
	rs := b.Finish()
	for _, k := range Kinds() {
		if rs.Has(k) {
			t.Errorf("ruleset has %s for trigger-free text", k)
		}
	}
}

func TestExtract_EntryPointsAndPlatforms(t *testing.T) {
	b := NewBuilder()
	b.AddAC("The tool can be activated from the Edit menu on Windows 11 and iPad.")
	rs := b.Finish()

	if diff := cmp.Diff([]string{"Edit Menu"}, rs.EntryPoints()); diff != "" {
		t.Errorf("entry points mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Windows 11", "iPad"}, rs.Platforms()); diff != "" {
		t.Errorf("platforms mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_LowercaseSurfaceIsNotAnEntryPoint(t *testing.T) {
	b := NewBuilder()
	b.AddAC("The feature is available from the context menu.")
	rs := b.Finish()

	if eps := rs.EntryPoints(); len(eps) != 0 {
		t.Errorf("entry points = %v, want none for a lowercase surface word", eps)
	}
}

func TestExtract_UnitsObjectTypesSelection(t *testing.T) {
	b := NewBuilder()
	b.AddAC("Rotate the selected rectangle; dimensions show metric and imperial units.")
	rs := b.Finish()

	if diff := cmp.Diff([]string{"imperial", "metric"}, rs.Units()); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"rectangle"}, rs.ObjectTypes()); diff != "" {
		t.Errorf("object types mismatch (-want +got):\n%s", diff)
	}
	if !rs.RequiresSelection() {
		t.Error("RequiresSelection = false, want true")
	}
}

func TestExtract_ExplicitNegatives(t *testing.T) {
	b := NewBuilder()
	b.AddAC("The command is disabled when there is no selection.")
	b.AddAC("Nothing happens on an empty canvas.")
	rs := b.Finish()

	if !rs.HasNegative(NoSelection) {
		t.Error("missing no_selection negative")
	}
	if !rs.HasNegative(EmptyCanvas) {
		t.Error("missing empty_canvas negative")
	}
	if diff := cmp.Diff([]NegativeTag{EmptyCanvas, NoSelection}, rs.Negatives()); diff != "" {
		t.Errorf("negatives mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_ExplicitOverrides(t *testing.T) {
	b := NewBuilder()
	b.AddAC("A notification confirms the change.")
	b.AddAC("Objects keep their position in the layout.")
	b.AddAC("Ctrl+M is the shortcut.")
	rs := b.Finish()

	if !rs.ExplicitFeedback() {
		t.Error("ExplicitFeedback = false, want true")
	}
	if !rs.ExplicitLayoutBehavior() {
		t.Error("ExplicitLayoutBehavior = false, want true")
	}
	if !rs.ExplicitHotkeys() {
		t.Error("ExplicitHotkeys = false, want true")
	}
}

func TestExtract_WCAGStandard(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Must meet WCAG.", "WCAG 2.1 AA"},
		{"Must meet WCAG 2.2 AAA.", "WCAG 2.2 AAA"},
		{"No standard mentioned.", ""},
	}
	for _, tt := range tests {
		b := NewBuilder()
		b.AddAC(tt.text)
		if got := b.Finish().AccessibilityStandard(); got != tt.want {
			t.Errorf("%q: standard = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtract_CancelledIndicators(t *testing.T) {
	b := NewBuilder()
	active := b.AddAC("The feature is available.")
	gone := b.AddAC("Rotation snapping is out of scope for this release.")

	if active.Cancelled {
		t.Error("active bullet marked cancelled")
	}
	if !gone.Cancelled {
		t.Error("out-of-scope bullet not marked cancelled")
	}
}

// Registering the same text in two fresh builders yields identical signal
// sets.
func TestExtract_Idempotent(t *testing.T) {
	const text = "Undo must revert the last rotate action and Redo must reapply it."

	first := NewBuilder().AddAC(text)
	second := NewBuilder().AddAC(text)

	if diff := cmp.Diff(first.SignalNames(), second.SignalNames()); diff != "" {
		t.Errorf("signal sets differ (-first +second):\n%s", diff)
	}
}

func TestFinish_IndexMatchesBulletSignals(t *testing.T) {
	b := NewBuilder()
	b.AddAC("The feature is available from the Edit menu.")
	b.AddAC("Undo reverts the rotation.")
	b.AddQAPrep("Verify undo and redo across sessions persist.")
	rs := b.Finish()

	if diff := cmp.Diff([]string{"AC2", "QA-1"}, rs.EvidenceRefs(UndoRedo)); diff != "" {
		t.Errorf("undo_redo refs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"AC1"}, rs.EvidenceRefs(Availability)); diff != "" {
		t.Errorf("availability refs mismatch (-want +got):\n%s", diff)
	}

	// The index must be a consistent re-derivation of the bullets' sets.
	derived := make(map[Kind][]string)
	for _, bl := range append(rs.ACBullets(), rs.QAPrepBullets()...) {
		for _, k := range bl.Signals() {
			derived[k] = append(derived[k], bl.ID)
		}
	}
	for _, k := range Kinds() {
		if diff := cmp.Diff(derived[k], rs.EvidenceRefs(k)); diff != "" {
			t.Errorf("index for %s not a re-derivation (-want +got):\n%s", k, diff)
		}
	}
}

func TestKnownBullet(t *testing.T) {
	b := NewBuilder()
	b.AddAC("The feature is available.")
	b.AddQAPrep("Check persistence after save.")
	rs := b.Finish()

	for _, id := range []string{"AC1", "QA-1"} {
		if !rs.KnownBullet(id) {
			t.Errorf("KnownBullet(%q) = false, want true", id)
		}
	}
	if rs.KnownBullet("AC9") {
		t.Error("KnownBullet(AC9) = true, want false")
	}
}
