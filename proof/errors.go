package proof

import "fmt"

// SemanticError reports an unknown rule, a reference arity mismatch, or a
// structural mismatch between the expected and the actual formula.
type SemanticError struct {
	Msg string
}

func (e *SemanticError) Error() string {
	return "semantic error: " + e.Msg
}

// ScopeError reports unbalanced scope markers, a reference into an
// inaccessible scope, or overlapping ∨e subproof ranges.
type ScopeError struct {
	Msg string
}

func (e *ScopeError) Error() string {
	return "scope error: " + e.Msg
}

// LineError wraps the error that rejected a proof, together with the
// number of the failing line. Line is 0 when the proof failed before any
// numbered line was accepted.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("invalid deduction at line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func semanticf(format string, args ...interface{}) *SemanticError {
	return &SemanticError{Msg: fmt.Sprintf(format, args...)}
}

func scopef(format string, args ...interface{}) *ScopeError {
	return &ScopeError{Msg: fmt.Sprintf(format, args...)}
}
