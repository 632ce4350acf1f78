package synth

import (
	"fmt"

	"blueprint/internal/draft"
	"blueprint/internal/evidence"
	"blueprint/internal/gates"
	"blueprint/internal/validate"
)

// Input is one story's worth of evidence plus its display strings.
type Input struct {
	StoryID string
	Feature string
	App     string
	AC      []string
	QAPrep  []string
}

// Result holds the synthesized drafts for one run, before validation.
type Result struct {
	Ruleset *evidence.Ruleset
	Drafts  []draft.Draft

	// Skipped lists cancelled bullet ids that no builder was run for.
	Skipped []string
}

// Outcome is a Result plus the verdicts of the validators and gates. The
// caller decides whether a rejected outcome aborts anything; synthesis
// itself never does.
type Outcome struct {
	Result
	Mapping  validate.Verdict
	Evidence validate.Verdict
	Gates    gates.Report
}

// Accepted reports whether both validators and all gates passed.
func (o *Outcome) Accepted() bool {
	return o.Mapping.Accepted() && o.Evidence.Accepted() && o.Gates.Passed()
}

// Findings flattens every validator error and gate violation, in check
// order.
func (o *Outcome) Findings() []string {
	var out []string
	out = append(out, o.Mapping.Errors...)
	out = append(out, o.Evidence.Errors...)
	out = append(out, o.Gates.Findings()...)
	return out
}

// Generate registers all evidence, seals the ruleset and runs every
// builder over every non-cancelled acceptance bullet in order. Builder
// gating is strictly signal-driven; cancelled bullets are skipped whole.
func Generate(in Input) (*Result, error) {
	if in.StoryID == "" {
		return nil, fmt.Errorf("generate: story id is required")
	}
	if in.Feature == "" {
		return nil, fmt.Errorf("generate: feature name is required")
	}
	if len(in.AC) == 0 {
		return nil, fmt.Errorf("generate: at least one acceptance criterion is required")
	}
	app := in.App
	if app == "" {
		app = DefaultApp
	}

	eb := evidence.NewBuilder()
	for _, text := range in.AC {
		eb.AddAC(text)
	}
	for _, text := range in.QAPrep {
		eb.AddQAPrep(text)
	}
	rs := eb.Finish()

	ctx := &Context{
		Rules:   rs,
		Seq:     NewSequence(),
		StoryID: in.StoryID,
		Feature: in.Feature,
		App:     app,
	}
	acc := &AccessibilityBuilder{ctx: ctx}
	builders := []Builder{
		&AvailabilityBuilder{ctx: ctx},
		&ActionBuilder{ctx: ctx},
		&UndoRedoBuilder{ctx: ctx},
		acc,
		&BoundaryBuilder{ctx: ctx},
		&NegativeStateBuilder{ctx: ctx},
		&VisibilityBuilder{ctx: ctx},
	}

	res := &Result{Ruleset: rs}
	for i, bl := range rs.ACBullets() {
		if bl.Cancelled {
			res.Skipped = append(res.Skipped, bl.ID)
			continue
		}
		for _, b := range builders {
			res.Drafts = append(res.Drafts, b.Build(bl, i+1)...)
		}
	}
	// Accessibility evidence often arrives through QA prep notes rather
	// than an acceptance bullet; give the builder one pass over those
	// before closing the run.
	if !acc.emitted {
		for _, bl := range rs.QAPrepBullets() {
			if ds := acc.Build(bl, 0); len(ds) > 0 {
				res.Drafts = append(res.Drafts, ds...)
				break
			}
		}
	}
	return res, nil
}

// Run is Generate followed by the mapping validator, the evidence
// validator and the quality gates.
func Run(in Input) (*Outcome, error) {
	res, err := Generate(in)
	if err != nil {
		return nil, err
	}
	out := &Outcome{Result: *res}
	out.Mapping = validate.Mapping(res.Ruleset, res.Drafts)
	out.Evidence = validate.Evidence(res.Ruleset, res.Drafts)
	out.Gates = gates.Run(res.Drafts, cancelledOrdinals(res.Ruleset))
	return out, nil
}

// cancelledOrdinals returns, per 1-based acceptance ordinal, whether the
// bullet was cancelled. Length equals the acceptance bullet count.
func cancelledOrdinals(rs *evidence.Ruleset) []bool {
	bullets := rs.ACBullets()
	out := make([]bool, len(bullets))
	for i, bl := range bullets {
		out[i] = bl.Cancelled
	}
	return out
}
