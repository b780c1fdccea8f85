// Package cnf converts formula trees to conjunctive normal form and
// decides satisfiability of the resulting clause sets.
//
// The conversion is a pure rewrite: implications are eliminated, negations
// pushed to the literals, and disjunctions of clause sets distributed by
// cross product. The cross product makes the conversion exponential in the
// worst case; that is a documented property of the algorithm, not a defect.
package cnf
