package evidence

import (
	"fmt"
	"sort"
)

// Builder accumulates evidence bullets and their extracted signals.
// Registration order is preserved; signal extraction happens incrementally
// as each bullet is added. Finish returns the immutable Ruleset; the
// Builder must not be reused afterwards.
type Builder struct {
	acBullets []*Bullet
	qaBullets []*Bullet

	flags [numKinds]bool

	entryPoints map[string]bool
	platforms   map[string]bool
	units       map[string]bool
	objectTypes map[string]bool
	negatives   map[NegativeTag]bool

	requiresSelection     bool
	explicitFeedback      bool
	explicitLayout        bool
	explicitHotkeys       bool
	accessibilityStandard string
}

// NewBuilder returns an empty evidence Builder.
func NewBuilder() *Builder {
	return &Builder{
		entryPoints: make(map[string]bool),
		platforms:   make(map[string]bool),
		units:       make(map[string]bool),
		objectTypes: make(map[string]bool),
		negatives:   make(map[NegativeTag]bool),
	}
}

// AddAC registers an acceptance-criteria bullet with id "AC{n}" (1-based)
// and extracts its signals.
func (b *Builder) AddAC(text string) *Bullet {
	bl := &Bullet{
		ID:        fmt.Sprintf("AC%d", len(b.acBullets)+1),
		Text:      text,
		Source:    SourceAC,
		signals:   make(map[Kind]bool),
		negatives: make(map[NegativeTag]bool),
	}
	b.extract(bl)
	b.acBullets = append(b.acBullets, bl)
	return bl
}

// AddQAPrep registers a supplementary QA-prep note with id "QA-{n}" (1-based).
func (b *Builder) AddQAPrep(text string) *Bullet {
	bl := &Bullet{
		ID:        fmt.Sprintf("QA-%d", len(b.qaBullets)+1),
		Text:      text,
		Source:    SourceQAPrep,
		signals:   make(map[Kind]bool),
		negatives: make(map[NegativeTag]bool),
	}
	b.extract(bl)
	b.qaBullets = append(b.qaBullets, bl)
	return bl
}

// Finish seals the builder into an immutable Ruleset. The signal index is
// derived from the union of all registered bullets' signal sets.
func (b *Builder) Finish() *Ruleset {
	rs := &Ruleset{
		acBullets:             b.acBullets,
		qaBullets:             b.qaBullets,
		flags:                 b.flags,
		entryPoints:           sortedKeys(b.entryPoints),
		platforms:             sortedKeys(b.platforms),
		units:                 sortedKeys(b.units),
		objectTypes:           sortedKeys(b.objectTypes),
		requiresSelection:     b.requiresSelection,
		explicitFeedback:      b.explicitFeedback,
		explicitLayout:        b.explicitLayout,
		explicitHotkeys:       b.explicitHotkeys,
		accessibilityStandard: b.accessibilityStandard,
		negatives:             make(map[NegativeTag]bool, len(b.negatives)),
		index:                 make(map[Kind][]string),
	}
	for tag := range b.negatives {
		rs.negatives[tag] = true
	}
	for _, bl := range append(append([]*Bullet{}, b.acBullets...), b.qaBullets...) {
		for _, k := range bl.Signals() {
			rs.index[k] = append(rs.index[k], bl.ID)
		}
	}
	return rs
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Ruleset is the run-scoped, read-only aggregate of all signals derived
// from all evidence bullets. Obtained from Builder.Finish; one generation
// run owns exactly one Ruleset.
type Ruleset struct {
	acBullets []*Bullet
	qaBullets []*Bullet

	flags [numKinds]bool

	entryPoints []string
	platforms   []string
	units       []string
	objectTypes []string
	negatives   map[NegativeTag]bool

	requiresSelection     bool
	explicitFeedback      bool
	explicitLayout        bool
	explicitHotkeys       bool
	accessibilityStandard string

	index map[Kind][]string
}

// Has reports whether any registered bullet carries the signal kind.
func (r *Ruleset) Has(k Kind) bool {
	if k < 0 || k >= numKinds {
		return false
	}
	return r.flags[k]
}

// HasNegative reports whether the given explicit negative was stated.
func (r *Ruleset) HasNegative(tag NegativeTag) bool { return r.negatives[tag] }

// Negatives returns all explicitly stated negative tags, sorted.
func (r *Ruleset) Negatives() []NegativeTag {
	out := make([]NegativeTag, 0, len(r.negatives))
	for tag := range r.negatives {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EntryPoints returns UI entry points mentioned in evidence ("Edit Menu"),
// sorted.
func (r *Ruleset) EntryPoints() []string { return r.entryPoints }

// Platforms returns platform mentions ("Android Tablet", "Windows 11", "iPad"),
// sorted.
func (r *Ruleset) Platforms() []string { return r.platforms }

// Units returns measurement unit mentions ("imperial", "metric"), sorted.
func (r *Ruleset) Units() []string { return r.units }

// ObjectTypes returns object-type constraints from the fixed vocabulary,
// sorted.
func (r *Ruleset) ObjectTypes() []string { return r.objectTypes }

// RequiresSelection reports whether evidence mentions object selection.
func (r *Ruleset) RequiresSelection() bool { return r.requiresSelection }

// ExplicitFeedback reports whether feedback wording is licensed.
func (r *Ruleset) ExplicitFeedback() bool { return r.explicitFeedback }

// ExplicitLayoutBehavior reports whether layout wording is licensed.
func (r *Ruleset) ExplicitLayoutBehavior() bool { return r.explicitLayout }

// ExplicitHotkeys reports whether hotkey wording is licensed.
func (r *Ruleset) ExplicitHotkeys() bool { return r.explicitHotkeys }

// AccessibilityStandard returns the explicit standard ("WCAG 2.1 AA") or ""
// when no standard was stated.
func (r *Ruleset) AccessibilityStandard() string { return r.accessibilityStandard }

// EvidenceRefs returns the ids of bullets that carry the signal kind, in
// registration order (AC bullets first, then QA-prep).
func (r *Ruleset) EvidenceRefs(k Kind) []string {
	return append([]string(nil), r.index[k]...)
}

// ACBullets returns the registered acceptance-criteria bullets in order.
func (r *Ruleset) ACBullets() []*Bullet { return r.acBullets }

// QAPrepBullets returns the registered QA-prep bullets in order.
func (r *Ruleset) QAPrepBullets() []*Bullet { return r.qaBullets }

// ACIDs returns all acceptance-criteria bullet ids in order.
func (r *Ruleset) ACIDs() []string {
	out := make([]string, len(r.acBullets))
	for i, bl := range r.acBullets {
		out[i] = bl.ID
	}
	return out
}

// KnownBullet reports whether id names a registered bullet (AC or QA-prep).
func (r *Ruleset) KnownBullet(id string) bool {
	for _, bl := range r.acBullets {
		if bl.ID == id {
			return true
		}
	}
	for _, bl := range r.qaBullets {
		if bl.ID == id {
			return true
		}
	}
	return false
}
