package evidence

import "sort"

// Source distinguishes acceptance-criteria bullets from QA-prep notes.
type Source string

const (
	SourceAC     Source = "AC"
	SourceQAPrep Source = "QA_PREP"
)

// Bullet is one atomic requirement or note statement, the unit of
// traceability. Signals are populated exactly once when the bullet is
// registered with a Builder and never mutated afterwards.
type Bullet struct {
	ID        string
	Text      string
	Source    Source
	Cancelled bool

	signals   map[Kind]bool
	negatives map[NegativeTag]bool
}

// Has reports whether the bullet carries the given signal kind.
func (b *Bullet) Has(k Kind) bool { return b.signals[k] }

// HasNegative reports whether the bullet states the explicit negative.
func (b *Bullet) HasNegative(tag NegativeTag) bool { return b.negatives[tag] }

// Signals returns the bullet's signal kinds in declaration order.
func (b *Bullet) Signals() []Kind {
	out := make([]Kind, 0, len(b.signals))
	for k := range b.signals {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SignalNames returns the bullet's signal kinds as their canonical names.
func (b *Bullet) SignalNames() []string {
	ks := b.Signals()
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.String()
	}
	return out
}
