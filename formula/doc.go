// Package formula defines the propositional formula language shared by the
// whole workbench: the AST, the tokenizer and the parser.
//
// Formulas are written over single lowercase atoms with the connectives
// ¬, ∧, ∨ and → plus the constants ⊤ and ⊥. Whitespace is ignored.
// Precedence, from tightest to loosest:
//
//   - ¬ (unary),
//   - ∧ and ∨ (same level, left-associative),
//   - → (right-associative).
//
// Parentheses group subformulas and re-enter the grammar at the top level.
// Parsing is all-or-nothing: any leftover token, missing operand or
// unmatched parenthesis yields an error and no tree.
//
// Equality between formulas is structural, never textual: two trees are
// equal when their tags and children are recursively equal. The canonical
// rendering produced by String is parseable back into a structurally equal
// tree.
package formula
