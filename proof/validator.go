package proof

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/logikon/proplog/formula"
)

// Proof line grammar: a line number, the formula, then at least two spaces
// before the justification.
var (
	lineRE   = regexp.MustCompile(`^(\d+)\s+(.+?)\s{2,}(\S.*?)$`)
	numberRE = regexp.MustCompile(`^(\d+)`)
)

// Validate checks a whole proof script, one input line per element, in
// order. It returns nil when every line is accepted and all scopes are
// closed, and a *LineError naming the first failing line otherwise. Blank
// lines are skipped; lines containing BeginScope or EndScope are scope
// markers and carry no formula.
func Validate(input []string) error {
	st := newState()
	for _, raw := range input {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		if strings.Contains(text, "BeginScope") {
			if st.awaitingAssumption {
				return &LineError{Line: st.lastLine, Err: scopef("scope opened before the previous scope's assumption")}
			}
			id := st.nextScope
			st.nextScope++
			st.parents[id] = st.currentScope()
			st.open = append(st.open, id)
			st.awaitingAssumption = true
			continue
		}
		if strings.Contains(text, "EndScope") {
			if st.depth() == 0 {
				return &LineError{Line: st.lastLine, Err: scopef("EndScope without matching BeginScope")}
			}
			if st.awaitingAssumption {
				return &LineError{Line: st.lastLine, Err: scopef("scope closed before its assumption")}
			}
			st.open = st.open[:len(st.open)-1]
			continue
		}

		m := lineRE.FindStringSubmatch(text)
		if m == nil {
			line := st.lastLine
			if nm := numberRE.FindStringSubmatch(text); nm != nil {
				line, _ = strconv.Atoi(nm[1])
			}
			return &LineError{Line: line, Err: &formula.SyntaxError{Msg: "malformed proof line"}}
		}
		num, _ := strconv.Atoi(m[1])
		if num <= st.lastLine {
			return &LineError{Line: num, Err: &formula.SyntaxError{Msg: "line numbers must be positive and strictly increasing"}}
		}
		cur, err := formula.Parse(m[2])
		if err != nil {
			return &LineError{Line: num, Err: err}
		}
		rule, refs, err := parseJustification(m[3])
		if err != nil {
			return &LineError{Line: num, Err: err}
		}
		check, ok := rules[rule]
		if !ok {
			return &LineError{Line: num, Err: semanticf("unknown rule %q", rule)}
		}
		if st.awaitingAssumption && rule != "Assumption" {
			return &LineError{Line: num, Err: scopef("expected an Assumption to open the scope")}
		}
		if err := check(st, cur, refs); err != nil {
			return &LineError{Line: num, Err: err}
		}
		st.records[num] = &Record{
			Line:       num,
			Formula:    cur,
			Rule:       rule,
			Refs:       refs,
			Depth:      st.depth(),
			Assumption: rule == "Assumption",
			scope:      st.currentScope(),
		}
		st.awaitingAssumption = false
		st.lastLine = num
	}
	if st.depth() != 0 {
		return &LineError{Line: st.lastLine, Err: scopef("scope left open at end of proof")}
	}
	return nil
}

// parseJustification splits "RuleName[, ref]*" where a ref is a line
// number or a start-end range.
func parseJustification(text string) (string, []Ref, error) {
	parts := strings.Split(text, ",")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return "", nil, &formula.SyntaxError{Msg: "missing rule name"}
	}
	var refs []Ref
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if lo, hi, isRange := strings.Cut(part, "-"); isRange {
			start, err1 := strconv.Atoi(lo)
			end, err2 := strconv.Atoi(hi)
			if err1 != nil || err2 != nil {
				return "", nil, &formula.SyntaxError{Msg: fmt.Sprintf("malformed range %q", part)}
			}
			refs = append(refs, Ref{Start: start, End: end, Range: true})
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return "", nil, &formula.SyntaxError{Msg: fmt.Sprintf("malformed reference %q", part)}
		}
		refs = append(refs, Ref{Start: n, End: n})
	}
	return name, refs, nil
}
