// Package proof checks natural-deduction proof scripts.
//
// A proof is an ordered sequence of numbered lines, each carrying a formula
// and a justification, interleaved with BeginScope/EndScope markers that
// open and close assumption scopes. Lines are checked strictly in order:
// each rule matches the structure of its referenced lines against the
// current formula, and a reference is only legal when the referenced line
// is still accessible from the current scope. Closing a scope makes its
// lines unreachable except through the start-end range references consumed
// by the scope-discharging rules (→i, ¬i, PBC, ∨e).
//
// Checking is fail-fast: the first invalid line invalidates the whole
// proof and reports its number; later lines are never examined.
//
// The package also exposes Apply, a scope-free variant that derives the
// conclusion of a single rule application from a numbered premise set.
package proof
