package formula

// Canonical rendering: atoms and constants are themselves, a negation is
// prefixed with ¬ (its operand parenthesized when itself a negation), and a
// binary node is "left op right", parenthesized unless it is the outermost
// node of the rendered expression.

func (a Atom) String() string    { return string(a) }
func (Top) String() string       { return "⊤" }
func (Bottom) String() string    { return "⊥" }
func (n Not) String() string     { return render(n, true) }
func (a And) String() string     { return render(a, true) }
func (o Or) String() string      { return render(o, true) }
func (i Implies) String() string { return render(i, true) }

func render(f Formula, outermost bool) string {
	switch f := f.(type) {
	case Atom:
		return string(f)
	case Top:
		return "⊤"
	case Bottom:
		return "⊥"
	case Not:
		if _, ok := f.F.(Not); ok {
			return "¬(" + render(f.F, false) + ")"
		}
		return "¬" + render(f.F, false)
	case And:
		return renderBinary(f.Left, "∧", f.Right, outermost)
	case Or:
		return renderBinary(f.Left, "∨", f.Right, outermost)
	case Implies:
		return renderBinary(f.Left, "→", f.Right, outermost)
	}
	return ""
}

func renderBinary(left Formula, op string, right Formula, outermost bool) string {
	s := render(left, false) + " " + op + " " + render(right, false)
	if outermost {
		return s
	}
	return "(" + s + ")"
}
