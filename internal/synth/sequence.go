package synth

import "fmt"

// Sequence allocates the numeric id segments shared by all builders in one
// generation run. The counter starts at 5 and advances in steps of 5, so
// draft ids stay globally ordered across builders and across bullets. The
// availability draft's fixed "AC1" segment never touches the counter.
// A Sequence belongs to exactly one run and is not safe for concurrent use.
type Sequence struct {
	next int
}

// NewSequence returns a Sequence positioned at the first allocatable id.
func NewSequence() *Sequence { return &Sequence{next: 5} }

// Next returns the next zero-padded id segment ("005", "010", ...).
func (s *Sequence) Next() string {
	seg := fmt.Sprintf("%03d", s.next)
	s.next += 5
	return seg
}
