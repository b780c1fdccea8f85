package cnf

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Solve decides satisfiability of the clause set with the gini SAT engine
// and, when satisfiable, returns an assignment of every atom appearing in
// the set. An empty set is trivially satisfiable; a set containing an empty
// clause is unsatisfiable without consulting the engine.
func (s ClauseSet) Solve() (model map[string]bool, sat bool) {
	for _, c := range s {
		if len(c) == 0 {
			return nil, false
		}
	}
	if len(s) == 0 {
		return map[string]bool{}, true
	}

	// Atoms are numbered in first-seen order, starting at DIMACS var 1.
	indices := make(map[string]int)
	var names []string
	index := func(name string) int {
		if i, ok := indices[name]; ok {
			return i
		}
		i := len(names) + 1
		indices[name] = i
		names = append(names, name)
		return i
	}

	g := gini.New()
	for _, c := range s {
		for _, l := range c {
			dimacs := index(l.Name)
			if l.Negated {
				dimacs = -dimacs
			}
			g.Add(z.Dimacs2Lit(dimacs))
		}
		g.Add(z.LitNull)
	}
	if g.Solve() != 1 {
		return nil, false
	}
	model = make(map[string]bool, len(names))
	for name, i := range indices {
		model[name] = g.Value(z.Dimacs2Lit(i))
	}
	return model, true
}
