package enrich

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"blueprint/internal/draft"
)

func TestNoop_ReturnsDraftUnchanged(t *testing.T) {
	d := draft.Draft{
		ID:         "272889-005",
		Title:      "272889-005: Mirror / Edit Menu / Undo Redo Support",
		Objective:  "Verify that mirroring can be undone and redone.",
		SourceACID: "AC2",
		Steps: []draft.Step{
			{Action: "Launch the QuickDraw application.", Expected: "Application launches successfully."},
		},
	}
	got, err := Noop{}.Polish(context.Background(), d)
	if err != nil {
		t.Fatalf("Polish: %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("draft changed (-want +got):\n%s", diff)
	}
}

func TestCheckShape(t *testing.T) {
	orig := draft.Draft{
		ID:         "7-010",
		SourceACID: "AC1",
		Steps:      []draft.Step{{Action: "a", Expected: "b"}},
	}
	tests := []struct {
		name    string
		mutate  func(*draft.Draft)
		wantErr bool
	}{
		{"prose only", func(d *draft.Draft) { d.Steps[0].Action = "reworded" }, false},
		{"id changed", func(d *draft.Draft) { d.ID = "7-015" }, true},
		{"source changed", func(d *draft.Draft) { d.SourceACID = "AC9" }, true},
		{"platform changed", func(d *draft.Draft) { d.Platform = "iPad" }, true},
		{"step dropped", func(d *draft.Draft) { d.Steps = nil }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orig
			got.Steps = append([]draft.Step(nil), orig.Steps...)
			tt.mutate(&got)
			err := checkShape(orig, got)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkShape err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
