// Package story defines the requirement input one generation run consumes:
// a work item's acceptance criteria plus optional QA preparation notes.
package story

import "fmt"

// Story is one work item's worth of evidence.
type Story struct {
	ID      string   `json:"id" yaml:"id"`
	Feature string   `json:"feature" yaml:"feature"`
	App     string   `json:"app,omitempty" yaml:"app,omitempty"`
	AC      []string `json:"acceptance_criteria" yaml:"acceptance_criteria"`
	QAPrep  []string `json:"qa_prep,omitempty" yaml:"qa_prep,omitempty"`
}

// Validate checks the fields a generation run cannot proceed without.
func (s *Story) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("story: id is required")
	}
	if s.Feature == "" {
		return fmt.Errorf("story %s: feature is required", s.ID)
	}
	if len(s.AC) == 0 {
		return fmt.Errorf("story %s: at least one acceptance criterion is required", s.ID)
	}
	return nil
}
