package proof

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/logikon/proplog/formula"
)

// Apply derives the conclusion of a single rule application over a
// numbered set of already-derived formulas, without scope tracking.
// Supported rules: ∧i, ∧e1, ∧e2, →e, ¬e, ¬¬e, ¬¬i, MT. The introduction
// rules construct their conclusion; the elimination rules match and
// extract. A structural mismatch, a missing reference or an unsupported
// rule yields an error.
func Apply(premises map[int]formula.Formula, rule string, refs []int) (formula.Formula, error) {
	resolved := make([]formula.Formula, len(refs))
	for i, n := range refs {
		f, ok := premises[n]
		if !ok || f == nil {
			return nil, semanticf("reference to unknown line %d", n)
		}
		resolved[i] = f
	}

	switch rule {
	case "∧i":
		if len(resolved) != 2 {
			return nil, semanticf("∧i takes two references")
		}
		return formula.And{Left: resolved[0], Right: resolved[1]}, nil

	case "∧e1", "∧e2":
		if len(resolved) != 1 {
			return nil, semanticf("%s takes one reference", rule)
		}
		conj, ok := resolved[0].(formula.And)
		if !ok {
			return nil, semanticf("referenced formula is not a conjunction")
		}
		if rule == "∧e1" {
			return conj.Left, nil
		}
		return conj.Right, nil

	case "→e":
		if len(resolved) != 2 {
			return nil, semanticf("→e takes two references")
		}
		// Either reference may be the implication.
		if imp, ok := resolved[0].(formula.Implies); ok && formula.Equal(imp.Left, resolved[1]) {
			return imp.Right, nil
		}
		if imp, ok := resolved[1].(formula.Implies); ok && formula.Equal(imp.Left, resolved[0]) {
			return imp.Right, nil
		}
		return nil, semanticf("→e does not apply")

	case "¬e":
		if len(resolved) != 2 {
			return nil, semanticf("¬e takes two references")
		}
		if !contradicts(resolved[0], resolved[1]) {
			return nil, semanticf("referenced formulas are not contradictory")
		}
		return formula.Bottom{}, nil

	case "¬¬e":
		if len(resolved) != 1 {
			return nil, semanticf("¬¬e takes one reference")
		}
		if outer, ok := resolved[0].(formula.Not); ok {
			if inner, ok := outer.F.(formula.Not); ok {
				return inner.F, nil
			}
		}
		return nil, semanticf("referenced formula is not a double negation")

	case "¬¬i":
		if len(resolved) != 1 {
			return nil, semanticf("¬¬i takes one reference")
		}
		return formula.Not{F: formula.Not{F: resolved[0]}}, nil

	case "MT":
		if len(resolved) != 2 {
			return nil, semanticf("MT takes two references")
		}
		imp, ok := resolved[0].(formula.Implies)
		if !ok {
			return nil, semanticf("first reference is not an implication")
		}
		neg, ok := resolved[1].(formula.Not)
		if !ok {
			return nil, semanticf("second reference is not a negation")
		}
		if !formula.Equal(imp.Right, neg.F) {
			return nil, semanticf("negation does not match the consequent")
		}
		return formula.Not{F: imp.Left}, nil
	}
	return nil, semanticf("unsupported rule %q", rule)
}

var premiseLineRE = regexp.MustCompile(`^\s*(\d+)\s+(.+?)\s*$`)

// ParseRuleBlock decomposes the textual form of a single rule application:
// numbered premise lines followed by one rule line "RuleName[, n]*".
func ParseRuleBlock(input []string) (premises map[int]formula.Formula, rule string, refs []int, err error) {
	premises = make(map[int]formula.Formula)
	ruleSeen := false
	for _, raw := range input {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		if m := premiseLineRE.FindStringSubmatch(text); m != nil && !ruleSeen {
			num, _ := strconv.Atoi(m[1])
			f, perr := formula.Parse(m[2])
			if perr != nil {
				return nil, "", nil, perr
			}
			premises[num] = f
			continue
		}
		if ruleSeen {
			return nil, "", nil, &formula.SyntaxError{Msg: "unexpected input after the rule line"}
		}
		ruleSeen = true
		parts := strings.Split(text, ",")
		rule = strings.TrimSpace(parts[0])
		for _, part := range parts[1:] {
			n, aerr := strconv.Atoi(strings.TrimSpace(part))
			if aerr != nil {
				return nil, "", nil, &formula.SyntaxError{Msg: "malformed rule reference"}
			}
			refs = append(refs, n)
		}
	}
	if !ruleSeen {
		return nil, "", nil, &formula.SyntaxError{Msg: "missing rule line"}
	}
	return premises, rule, refs, nil
}
