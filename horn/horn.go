package horn

import (
	"errors"

	"github.com/logikon/proplog/formula"
)

// Bottom is the conclusion marker for contradiction clauses.
const Bottom = "⊥"

// ErrInvalidFormula is returned when the input is outside the Horn
// fragment.
var ErrInvalidFormula = errors.New("invalid Horn formula")

// Clause is a single Horn clause premise→conclusion. An empty premise set
// stands for ⊤; a conclusion of Bottom marks a contradiction clause.
type Clause struct {
	Premise    map[string]struct{}
	Conclusion string
}

type parser struct {
	tokens []formula.Token
	pos    int
}

// Parse validates and decomposes a Horn formula: either a bare clause
// "premise→conclusion", or a parenthesized conjunction
// "(premise→conclusion)∧(premise→conclusion)…". Empty input is valid and
// yields no clauses. Any other shape returns ErrInvalidFormula.
func Parse(input string) ([]Clause, error) {
	tokens, err := formula.Tokenize(input)
	if err != nil {
		return nil, ErrInvalidFormula
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	p := &parser{tokens: tokens}

	var clauses []Clause
	if p.current().Kind == formula.TokenLParen {
		for {
			if !p.expect(formula.TokenLParen) {
				return nil, ErrInvalidFormula
			}
			clause, ok := p.parseClause()
			if !ok {
				return nil, ErrInvalidFormula
			}
			if !p.expect(formula.TokenRParen) {
				return nil, ErrInvalidFormula
			}
			clauses = append(clauses, clause)
			if p.done() || p.current().Kind != formula.TokenAnd {
				break
			}
			p.pos++
		}
	} else {
		clause, ok := p.parseClause()
		if !ok {
			return nil, ErrInvalidFormula
		}
		clauses = append(clauses, clause)
	}
	if !p.done() {
		return nil, ErrInvalidFormula
	}
	return clauses, nil
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) current() formula.Token {
	return p.tokens[p.pos]
}

func (p *parser) expect(kind formula.TokenKind) bool {
	if p.done() || p.current().Kind != kind {
		return false
	}
	p.pos++
	return true
}

// parseClause parses premise '→' conclusion.
func (p *parser) parseClause() (Clause, bool) {
	premise, ok := p.parsePremise()
	if !ok {
		return Clause{}, false
	}
	if !p.expect(formula.TokenImplies) {
		return Clause{}, false
	}
	if p.done() {
		return Clause{}, false
	}
	switch tok := p.current(); tok.Kind {
	case formula.TokenAtom:
		p.pos++
		return Clause{Premise: premise, Conclusion: string(tok.Text)}, true
	case formula.TokenBottom:
		p.pos++
		return Clause{Premise: premise, Conclusion: Bottom}, true
	}
	return Clause{}, false
}

// parsePremise parses ⊤ or a conjunction of atoms.
func (p *parser) parsePremise() (map[string]struct{}, bool) {
	if p.done() {
		return nil, false
	}
	premise := make(map[string]struct{})
	if p.current().Kind == formula.TokenTop {
		p.pos++
		return premise, true
	}
	if p.current().Kind != formula.TokenAtom {
		return nil, false
	}
	premise[string(p.current().Text)] = struct{}{}
	p.pos++
	for !p.done() && p.current().Kind == formula.TokenAnd {
		p.pos++
		if p.done() || p.current().Kind != formula.TokenAtom {
			return nil, false
		}
		premise[string(p.current().Text)] = struct{}{}
		p.pos++
	}
	return premise, true
}
