package formula

import "fmt"

// LexicalError reports a character outside the formula alphabet.
type LexicalError struct {
	Char rune
	Pos  int // byte offset in the input
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: unexpected character %q at offset %d", e.Char, e.Pos)
}

// SyntaxError reports a malformed token sequence: missing operand,
// unmatched parenthesis, trailing tokens, or a malformed proof-line
// justification.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}
