package cnf

import (
	"strings"

	"github.com/logikon/proplog/formula"
)

// Literal is an atom or a negated atom.
type Literal struct {
	Name    string
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return "¬" + l.Name
	}
	return l.Name
}

// Clause is a disjunction of literals, deduplicated by literal identity in
// first-seen order. An atom and its negation may co-occur; no tautology
// elimination is performed.
type Clause []Literal

// ClauseSet is a conjunction of clauses. An empty set is trivially true;
// a set containing an empty clause is unsatisfiable.
type ClauseSet []Clause

// Convert rewrites f into an equivalent clause set. Implications are
// eliminated first, negations pushed inward (De Morgan, double negation),
// then conjunctions concatenate and disjunctions distribute.
func Convert(f formula.Formula) ClauseSet {
	switch f := f.(type) {
	case formula.Atom:
		return ClauseSet{{Literal{Name: string(f)}}}
	case formula.Top:
		return ClauseSet{}
	case formula.Bottom:
		return ClauseSet{Clause{}}
	case formula.Implies:
		// A→B becomes ¬A∨B.
		return Convert(formula.Or{Left: formula.Not{F: f.Left}, Right: f.Right})
	case formula.Not:
		return convertNegation(f.F)
	case formula.And:
		left := Convert(f.Left)
		right := Convert(f.Right)
		out := make(ClauseSet, 0, len(left)+len(right))
		out = append(out, left...)
		return append(out, right...)
	case formula.Or:
		return distribute(Convert(f.Left), Convert(f.Right))
	}
	return nil
}

func convertNegation(f formula.Formula) ClauseSet {
	switch f := f.(type) {
	case formula.Atom:
		return ClauseSet{{Literal{Name: string(f), Negated: true}}}
	case formula.Top:
		return ClauseSet{Clause{}}
	case formula.Bottom:
		return ClauseSet{}
	case formula.Not:
		// ¬¬A becomes A.
		return Convert(f.F)
	case formula.And:
		// ¬(A∧B) becomes ¬A∨¬B.
		return Convert(formula.Or{Left: formula.Not{F: f.Left}, Right: formula.Not{F: f.Right}})
	case formula.Or:
		// ¬(A∨B) becomes ¬A∧¬B.
		return Convert(formula.And{Left: formula.Not{F: f.Left}, Right: formula.Not{F: f.Right}})
	case formula.Implies:
		// ¬(A→B) becomes A∧¬B.
		return Convert(formula.And{Left: f.Left, Right: formula.Not{F: f.Right}})
	}
	return nil
}

// distribute crosses two clause sets: every clause of a is merged with
// every clause of b, deduplicating literals in first-seen order.
func distribute(a, b ClauseSet) ClauseSet {
	out := make(ClauseSet, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			merged := make(Clause, 0, len(ca)+len(cb))
			seen := make(map[Literal]bool, len(ca)+len(cb))
			for _, l := range ca {
				if !seen[l] {
					seen[l] = true
					merged = append(merged, l)
				}
			}
			for _, l := range cb {
				if !seen[l] {
					seen[l] = true
					merged = append(merged, l)
				}
			}
			out = append(out, merged)
		}
	}
	return out
}

// Eval returns the truth value of the clause set under the given
// assignment: every clause must contain at least one true literal.
func (s ClauseSet) Eval(model map[string]bool) bool {
	for _, c := range s {
		if !c.Eval(model) {
			return false
		}
	}
	return true
}

// Eval returns true when at least one literal of the clause holds.
func (c Clause) Eval(model map[string]bool) bool {
	for _, l := range c {
		if model[l.Name] != l.Negated {
			return true
		}
	}
	return false
}

func (c Clause) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return strings.Join(parts, "∨")
}

// String renders the clause set: clauses joined by ∧, literals within a
// clause joined by ∨. A clause with more than one literal is parenthesized
// unless the set consists of exactly that one clause. The empty set renders
// as the empty string.
func (s ClauseSet) String() string {
	single := len(s) == 1
	parts := make([]string, len(s))
	for i, c := range s {
		text := c.String()
		if len(c) > 1 && !single {
			text = "(" + text + ")"
		}
		parts[i] = text
	}
	return strings.Join(parts, "∧")
}
