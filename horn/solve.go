package horn

import (
	"sort"
	"strings"
)

// Result is the outcome of the marking algorithm. Model holds the least
// model - the atoms forced true by the clause set - sorted
// lexicographically; it is empty when the formula is unsatisfiable.
type Result struct {
	Satisfiable bool
	Model       []string
}

// Solve runs the marking algorithm to its fixed point and decides
// satisfiability. Marking propagates through a worklist: when an atom is
// newly marked, only the clauses whose premise mentions it are revisited.
// The final marked set does not depend on clause order.
func Solve(clauses []Clause) Result {
	occurrences := make(map[string][]int)
	missing := make([]int, len(clauses))
	var ready []int
	for i, c := range clauses {
		missing[i] = len(c.Premise)
		if missing[i] == 0 {
			ready = append(ready, i)
		}
		for atom := range c.Premise {
			occurrences[atom] = append(occurrences[atom], i)
		}
	}

	marked := make(map[string]bool)
	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		conclusion := clauses[i].Conclusion
		if conclusion == Bottom || marked[conclusion] {
			continue
		}
		marked[conclusion] = true
		for _, j := range occurrences[conclusion] {
			missing[j]--
			if missing[j] == 0 {
				ready = append(ready, j)
			}
		}
	}

	// A contradiction clause fires when its whole premise is marked.
	for i, c := range clauses {
		if c.Conclusion == Bottom && missing[i] == 0 {
			return Result{}
		}
	}

	model := make([]string, 0, len(marked))
	for atom := range marked {
		model = append(model, atom)
	}
	sort.Strings(model)
	return Result{Satisfiable: true, Model: model}
}

func (r Result) String() string {
	if !r.Satisfiable {
		return "Unsatisfiable"
	}
	if len(r.Model) == 0 {
		return "Satisfiable"
	}
	return "Satisfiable " + strings.Join(r.Model, " ")
}
