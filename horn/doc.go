// Package horn decides satisfiability of the Horn fragment by fixed-point
// marking. Input formulas are conjunctions of clauses premise→conclusion,
// where the premise is ⊤ or a conjunction of atoms and the conclusion is a
// single atom or ⊥. Anything outside that grammar is rejected.
package horn
