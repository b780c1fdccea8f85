package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logikon/proplog/formula"
)

func requireValid(t *testing.T, lines []string) {
	t.Helper()
	assert.NoError(t, Validate(lines))
}

func requireInvalidAt(t *testing.T, lines []string, line int) {
	t.Helper()
	err := Validate(lines)
	require.Error(t, err)
	var lerr *LineError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, line, lerr.Line)
}

func TestAndElimination(t *testing.T) {
	requireValid(t, []string{
		"1  p∧q  Premise",
		"2  p  ∧e1, 1",
	})
	// ∧e2 extracts the right conjunct; p is the left one.
	requireInvalidAt(t, []string{
		"1  p∧q  Premise",
		"2  p  ∧e2, 1",
	}, 2)
}

func TestBasicRules(t *testing.T) {
	requireValid(t, []string{
		"1  p  Premise",
		"2  q  Premise",
		"3  p∧q  ∧i, 1, 2",
		"4  q  ∧e2, 3",
		"5  p∨r  ∨i1, 1",
		"6  r∨q  ∨i2, 2",
		"7  p  Copy, 1",
	})
	// ∧i conjuncts must appear in reference order.
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"2  q  Premise",
		"3  q∧p  ∧i, 1, 2",
	}, 3)
}

func TestModusPonensIsOrderSymmetric(t *testing.T) {
	requireValid(t, []string{
		"1  p→q  Premise",
		"2  p  Premise",
		"3  q  →e, 1, 2",
	})
	requireValid(t, []string{
		"1  p  Premise",
		"2  p→q  Premise",
		"3  q  →e, 1, 2",
	})
	requireInvalidAt(t, []string{
		"1  p→q  Premise",
		"2  q  Premise",
		"3  p  →e, 1, 2",
	}, 3)
}

func TestNegationRules(t *testing.T) {
	requireValid(t, []string{
		"1  p  Premise",
		"2  ¬p  Premise",
		"3  ⊥  ¬e, 1, 2",
		"4  q  ⊥e, 3",
	})
	requireValid(t, []string{
		"1  ¬(¬p)  Premise",
		"2  p  ¬¬e, 1",
		"3  ¬(¬p)  ¬¬i, 2",
	})
	// ¬e must derive ⊥, nothing else.
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"2  ¬p  Premise",
		"3  q  ¬e, 1, 2",
	}, 3)
}

func TestModusTollens(t *testing.T) {
	requireValid(t, []string{
		"1  p→q  Premise",
		"2  ¬q  Premise",
		"3  ¬p  MT, 1, 2",
	})
	// MT's first reference must be the implication.
	requireInvalidAt(t, []string{
		"1  ¬q  Premise",
		"2  p→q  Premise",
		"3  ¬p  MT, 1, 2",
	}, 3)
}

func TestImplicationIntroduction(t *testing.T) {
	requireValid(t, []string{
		"1  q  Premise",
		"BeginScope",
		"2  p  Assumption",
		"3  q  Copy, 1",
		"EndScope",
		"4  p→q  →i, 2-3",
	})
	// The derived implication must match the subproof endpoints.
	requireInvalidAt(t, []string{
		"1  q  Premise",
		"BeginScope",
		"2  p  Assumption",
		"3  q  Copy, 1",
		"EndScope",
		"4  q→p  →i, 2-3",
	}, 4)
}

func TestNotIntroductionAndPBC(t *testing.T) {
	requireValid(t, []string{
		"1  ¬p  Premise",
		"BeginScope",
		"2  p  Assumption",
		"3  ⊥  ¬e, 2, 1",
		"EndScope",
		"4  ¬p  ¬i, 2-3",
	})
	requireValid(t, []string{
		"1  ¬(¬p)  Premise",
		"BeginScope",
		"2  ¬p  Assumption",
		"3  ⊥  ¬e, 2, 1",
		"EndScope",
		"4  p  PBC, 2-3",
	})
	// PBC needs a negated assumption.
	requireInvalidAt(t, []string{
		"1  ¬p  Premise",
		"BeginScope",
		"2  p  Assumption",
		"3  ⊥  ¬e, 2, 1",
		"EndScope",
		"4  ¬p  PBC, 2-3",
	}, 4)
}

func TestOrElimination(t *testing.T) {
	requireValid(t, []string{
		"1  p∨q  Premise",
		"2  p→r  Premise",
		"3  q→r  Premise",
		"BeginScope",
		"4  p  Assumption",
		"5  r  →e, 2, 4",
		"EndScope",
		"BeginScope",
		"6  q  Assumption",
		"7  r  →e, 3, 6",
		"EndScope",
		"8  r  ∨e, 1, 4-5, 6-7",
	})
}

func TestOrEliminationOverlappingRanges(t *testing.T) {
	requireInvalidAt(t, []string{
		"1  p∨p  Premise",
		"BeginScope",
		"2  p  Assumption",
		"3  p  Copy, 2",
		"EndScope",
		"4  p  ∨e, 1, 2-3, 2-3",
	}, 4)
}

func TestLEM(t *testing.T) {
	requireValid(t, []string{
		"1  p∨¬p  LEM",
		"2  ¬q∨q  LEM",
		"3  (p∧q)∨¬(p∧q)  LEM",
	})
	requireInvalidAt(t, []string{
		"1  p∨¬q  LEM",
	}, 1)
}

// A closed scope's lines are unreachable through single-line references,
// even from a later scope at the same depth.
func TestClosedScopeInaccessible(t *testing.T) {
	requireInvalidAt(t, []string{
		"1  p→p  Premise",
		"BeginScope",
		"2  p  Assumption",
		"EndScope",
		"3  p  Copy, 2",
	}, 3)
	requireInvalidAt(t, []string{
		"1  p→p  Premise",
		"BeginScope",
		"2  p  Assumption",
		"EndScope",
		"BeginScope",
		"3  q  Assumption",
		"4  p  Copy, 2",
		"EndScope",
	}, 4)
}

// A discharged subproof is only referenceable from the scope that
// directly enclosed it; a later scope at the same depth cannot discharge
// it again.
func TestSubproofNotReusableAcrossScopes(t *testing.T) {
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"BeginScope",
		"2  q  Assumption",
		"BeginScope",
		"3  r  Assumption",
		"4  r  Copy, 3",
		"EndScope",
		"5  r→r  →i, 3-4",
		"EndScope",
		"BeginScope",
		"6  s  Assumption",
		"7  r→r  →i, 3-4",
		"EndScope",
	}, 7)
}

// Lines of an enclosing, still-open scope stay accessible from deeper
// scopes.
func TestOuterScopeAccessible(t *testing.T) {
	requireValid(t, []string{
		"1  p  Premise",
		"BeginScope",
		"2  q  Assumption",
		"3  p  Copy, 1",
		"EndScope",
		"4  q→p  →i, 2-3",
	})
}

func TestScopeDiscipline(t *testing.T) {
	// Premise is confined to depth 0.
	requireInvalidAt(t, []string{
		"BeginScope",
		"1  p  Premise",
	}, 1)
	// Assumption only immediately after BeginScope.
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"2  q  Assumption",
	}, 2)
	// The line right after BeginScope must be an Assumption.
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"BeginScope",
		"2  p  Copy, 1",
	}, 2)
	// A nested BeginScope is not that line either: the inner assumption
	// must not stand in for the outer scope's.
	requireInvalidAt(t, []string{
		"BeginScope",
		"BeginScope",
		"1  p  Assumption",
		"EndScope",
		"EndScope",
	}, 0)
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"BeginScope",
		"BeginScope",
		"2  q  Assumption",
	}, 1)
	// A scope left open at end of input invalidates the proof.
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"BeginScope",
		"2  q  Assumption",
	}, 2)
	// EndScope with no open scope.
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"EndScope",
	}, 1)
}

func TestFailFast(t *testing.T) {
	// The defect is at line 3; the valid continuation after it is never
	// examined.
	requireInvalidAt(t, []string{
		"1  p∧q  Premise",
		"2  p  ∧e1, 1",
		"3  q  ∧e1, 1",
		"4  q  ∧e2, 1",
		"5  p∧q  ∧i, 2, 4",
	}, 3)
}

func TestMalformedLines(t *testing.T) {
	// Unparseable formula.
	requireInvalidAt(t, []string{
		"1  p∧  Premise",
	}, 1)
	// Unknown rule.
	requireInvalidAt(t, []string{
		"1  p  Axiom",
	}, 1)
	// Malformed reference.
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"2  p  Copy, x",
	}, 2)
	// Wrong arity.
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"2  q  Premise",
		"3  p∧q  ∧i, 1",
	}, 3)
	// Reference to a line that does not exist.
	requireInvalidAt(t, []string{
		"1  p  Premise",
		"2  p  Copy, 7",
	}, 2)
	// Line numbers must be strictly increasing.
	requireInvalidAt(t, []string{
		"2  p  Premise",
		"2  p  Copy, 2",
	}, 2)
}

func TestValidateEmptyAndBlankLines(t *testing.T) {
	requireValid(t, nil)
	requireValid(t, []string{"", "1  p  Premise", "", "2  p  Copy, 1", ""})
}

func TestLineErrorClassification(t *testing.T) {
	var lerr *LineError

	err := Validate([]string{"1  p  Copy, 7"})
	require.ErrorAs(t, err, &lerr)
	var serr *SemanticError
	assert.ErrorAs(t, lerr.Err, &serr)

	err = Validate([]string{"1  p#  Premise"})
	require.ErrorAs(t, err, &lerr)
	var xerr *formula.LexicalError
	assert.ErrorAs(t, lerr.Err, &xerr)

	err = Validate([]string{
		"1  p  Premise",
		"BeginScope",
		"2  q  Assumption",
		"3  q  Copy, 2",
		"EndScope",
		"4  q  Copy, 3",
	})
	require.ErrorAs(t, err, &lerr)
	var scerr *ScopeError
	assert.ErrorAs(t, lerr.Err, &scerr)
	assert.Equal(t, 4, lerr.Line)
}
