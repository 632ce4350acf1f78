// Package export renders generated suites for humans and downstream tools:
// CSV for the test-management import, plain objectives for review, JSON for
// automation.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"blueprint/internal/draft"
)

var csvHeader = []string{"id", "title", "objective", "source_ac_id", "platform", "step", "action", "expected"}

// WriteCSV writes one row per step. Drafts without steps still get a single
// row so they are not silently dropped from the import.
func WriteCSV(w io.Writer, drafts []draft.Draft) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range drafts {
		d := &drafts[i]
		if len(d.Steps) == 0 {
			row := []string{d.ID, d.Title, d.Objective, d.SourceACID, d.Platform, "", "", ""}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row for %s: %w", d.ID, err)
			}
			continue
		}
		for j, st := range d.Steps {
			row := []string{d.ID, d.Title, d.Objective, d.SourceACID, d.Platform,
				strconv.Itoa(j + 1), st.Action, st.Expected}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row for %s: %w", d.ID, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteObjectives writes "id<TAB>objective" lines for a quick review pass.
func WriteObjectives(w io.Writer, drafts []draft.Draft) error {
	for i := range drafts {
		d := &drafts[i]
		if _, err := fmt.Fprintf(w, "%s\t%s\n", d.ID, d.Objective); err != nil {
			return fmt.Errorf("write objective for %s: %w", d.ID, err)
		}
	}
	return nil
}

// Artifact is the machine-readable record of one generation run.
type Artifact struct {
	StoryID     string        `json:"story_id"`
	Feature     string        `json:"feature"`
	GeneratedAt time.Time     `json:"generated_at"`
	Accepted    bool          `json:"accepted"`
	Drafts      []draft.Draft `json:"drafts"`
	Findings    []string      `json:"findings,omitempty"`
	Skipped     []string      `json:"skipped,omitempty"`
}

// WriteJSON writes the artifact with stable two-space indentation.
func WriteJSON(w io.Writer, a *Artifact) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	return nil
}
