package formula

import "unicode"

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	TokenAtom TokenKind = iota
	TokenNot
	TokenAnd
	TokenOr
	TokenImplies
	TokenTop
	TokenBottom
	TokenLParen
	TokenRParen
)

// Token is a single-character lexeme of the formula alphabet.
type Token struct {
	Kind TokenKind
	Text rune
}

var symbolKinds = map[rune]TokenKind{
	'¬': TokenNot,
	'∧': TokenAnd,
	'∨': TokenOr,
	'→': TokenImplies,
	'⊤': TokenTop,
	'⊥': TokenBottom,
	'(': TokenLParen,
	')': TokenRParen,
}

// Tokenize scans the input into a token sequence. Whitespace is ignored
// everywhere. Any character outside the formula alphabet aborts the scan
// with a LexicalError; no partial token list is returned. Empty input
// yields an empty, valid sequence.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	for pos, r := range input {
		if unicode.IsSpace(r) {
			continue
		}
		if r >= 'a' && r <= 'z' {
			tokens = append(tokens, Token{Kind: TokenAtom, Text: r})
			continue
		}
		if kind, ok := symbolKinds[r]; ok {
			tokens = append(tokens, Token{Kind: kind, Text: r})
			continue
		}
		return nil, &LexicalError{Char: r, Pos: pos}
	}
	return tokens, nil
}
