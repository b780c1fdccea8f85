package formula

import "fmt"

type parser struct {
	tokens []Token
	pos    int
}

// Parse tokenizes and parses the input into a formula tree. The whole
// input must form a single formula; an empty input, leftover tokens or any
// structural defect yields a nil tree and a classified error.
func Parse(input string) (Formula, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &SyntaxError{Msg: "empty formula"}
	}
	p := &parser{tokens: tokens}
	f, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected token %q after formula", p.current().Text)}
	}
	return f, nil
}

func (p *parser) current() Token {
	return p.tokens[p.pos]
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

// Implication := Term ( '→' Implication )?
func (p *parser) parseImplication() (Formula, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if !p.done() && p.current().Kind == TokenImplies {
		p.pos++
		right, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		return Implies{Left: left, Right: right}, nil
	}
	return left, nil
}

// Term := Factor ( ('∧' | '∨') Factor )*
func (p *parser) parseTerm() (Formula, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for !p.done() && (p.current().Kind == TokenAnd || p.current().Kind == TokenOr) {
		op := p.current().Kind
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if op == TokenAnd {
			left = And{Left: left, Right: right}
		} else {
			left = Or{Left: left, Right: right}
		}
	}
	return left, nil
}

// Factor := Atom | '⊤' | '⊥' | '¬' Factor | '(' Implication ')'
func (p *parser) parseFactor() (Formula, error) {
	if p.done() {
		return nil, &SyntaxError{Msg: "expected operand, found end of input"}
	}
	tok := p.current()
	switch tok.Kind {
	case TokenAtom:
		p.pos++
		return Atom(tok.Text), nil
	case TokenTop:
		p.pos++
		return Top{}, nil
	case TokenBottom:
		p.pos++
		return Bottom{}, nil
	case TokenNot:
		p.pos++
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return Not{F: operand}, nil
	case TokenLParen:
		p.pos++
		inner, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		if p.done() || p.current().Kind != TokenRParen {
			return nil, &SyntaxError{Msg: "unmatched parenthesis"}
		}
		p.pos++
		return inner, nil
	}
	return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected token %q", tok.Text)}
}
