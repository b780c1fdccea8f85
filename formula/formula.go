package formula

import "sort"

// A Formula is a propositional formula tree. The concrete types are Atom,
// Top, Bottom, Not, And, Or and Implies; each non-leaf owns its children
// exclusively.
type Formula interface {
	// Eval returns the truth value of the formula under the given
	// assignment. Atoms missing from the model evaluate to false.
	Eval(model map[string]bool) bool
	// String returns the canonical rendering of the formula.
	String() string
}

// Atom is a propositional variable named by a single lowercase letter.
type Atom string

// Top is the constant ⊤.
type Top struct{}

// Bottom is the constant ⊥.
type Bottom struct{}

// Not negates its operand.
type Not struct {
	F Formula
}

// And is a binary conjunction.
type And struct {
	Left, Right Formula
}

// Or is a binary disjunction.
type Or struct {
	Left, Right Formula
}

// Implies is a binary implication.
type Implies struct {
	Left, Right Formula
}

func (a Atom) Eval(model map[string]bool) bool    { return model[string(a)] }
func (Top) Eval(model map[string]bool) bool       { return true }
func (Bottom) Eval(model map[string]bool) bool    { return false }
func (n Not) Eval(model map[string]bool) bool     { return !n.F.Eval(model) }
func (a And) Eval(model map[string]bool) bool     { return a.Left.Eval(model) && a.Right.Eval(model) }
func (o Or) Eval(model map[string]bool) bool      { return o.Left.Eval(model) || o.Right.Eval(model) }
func (i Implies) Eval(model map[string]bool) bool { return !i.Left.Eval(model) || i.Right.Eval(model) }

// Equal reports whether a and b are structurally equivalent: same tags,
// recursively equal children.
func Equal(a, b Formula) bool {
	switch a := a.(type) {
	case Atom:
		b, ok := b.(Atom)
		return ok && a == b
	case Top:
		_, ok := b.(Top)
		return ok
	case Bottom:
		_, ok := b.(Bottom)
		return ok
	case Not:
		b, ok := b.(Not)
		return ok && Equal(a.F, b.F)
	case And:
		b, ok := b.(And)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case Or:
		b, ok := b.(Or)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case Implies:
		b, ok := b.(Implies)
		return ok && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	}
	return false
}

// Atoms returns the names of all atoms occurring in f, sorted and without
// duplicates.
func Atoms(f Formula) []string {
	seen := make(map[string]bool)
	collectAtoms(f, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectAtoms(f Formula, seen map[string]bool) {
	switch f := f.(type) {
	case Atom:
		seen[string(f)] = true
	case Not:
		collectAtoms(f.F, seen)
	case And:
		collectAtoms(f.Left, seen)
		collectAtoms(f.Right, seen)
	case Or:
		collectAtoms(f.Left, seen)
		collectAtoms(f.Right, seen)
	case Implies:
		collectAtoms(f.Left, seen)
		collectAtoms(f.Right, seen)
	}
}
