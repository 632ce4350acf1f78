// Package evidence models requirement statements (acceptance-criteria
// bullets and QA-prep notes) and the typed signals derived from them.
// A Builder accepts bullets, extracts signals at registration time, and
// Finish returns an immutable Ruleset for the synthesis phase. The
// two-phase protocol is deliberate: builders downstream only ever see a
// finished, read-only Ruleset.
package evidence

// Kind is a closed enumeration of signal kinds a bullet can carry.
type Kind int

const (
	Availability Kind = iota
	Action
	StateChange
	Visibility
	Constraint
	UndoRedo
	Accessibility
	Persistence

	numKinds
)

var kindNames = [numKinds]string{
	Availability:  "availability",
	Action:        "action",
	StateChange:   "state",
	Visibility:    "visibility",
	Constraint:    "constraint",
	UndoRedo:      "undo_redo",
	Accessibility: "accessibility",
	Persistence:   "persistence",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns all signal kinds in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// NegativeTag identifies an explicitly stated negative precondition.
type NegativeTag string

const (
	NoSelection NegativeTag = "no_selection"
	EmptyCanvas NegativeTag = "empty_canvas"
)
