package horn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	clauses, err := Parse("(p∧q→r)∧(⊤→p)∧(r→⊥)")
	require.NoError(t, err)
	require.Len(t, clauses, 3)
	assert.Equal(t, map[string]struct{}{"p": {}, "q": {}}, clauses[0].Premise)
	assert.Equal(t, "r", clauses[0].Conclusion)
	assert.Empty(t, clauses[1].Premise)
	assert.Equal(t, "p", clauses[1].Conclusion)
	assert.Equal(t, Bottom, clauses[2].Conclusion)
}

func TestParseBareClause(t *testing.T) {
	clauses, err := Parse("p∧q→r")
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	assert.Equal(t, map[string]struct{}{"p": {}, "q": {}}, clauses[0].Premise)
	assert.Equal(t, "r", clauses[0].Conclusion)
}

func TestParseEmpty(t *testing.T) {
	clauses, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, clauses)
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"p∨q→r",       // disjunctive premise
		"p→q∧r",       // compound conclusion
		"¬p→q",        // negated premise
		"p→",          // missing conclusion
		"→p",          // missing premise
		"(p→q)∧",      // dangling conjunction
		"(p→q)(q→r)",  // missing conjunction
		"(p→q)∧(q→r", // unmatched parenthesis
		"⊥→p",         // ⊥ as premise
		"p→⊤",         // ⊤ as conclusion
		"p#q",         // lexical error
		"p",           // no implication at all
	}
	for _, input := range inputs {
		clauses, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidFormula, "input %q", input)
		assert.Nil(t, clauses)
	}
}

func solveText(t *testing.T, input string) Result {
	t.Helper()
	clauses, err := Parse(input)
	require.NoError(t, err)
	return Solve(clauses)
}

func TestSolve(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(p→q)∧(⊤→p)", "Satisfiable p q"},
		{"(p→⊥)∧(⊤→p)", "Unsatisfiable"},
		{"p→q", "Satisfiable"},
		{"(⊤→a)∧(a→b)∧(a∧b→c)", "Satisfiable a b c"},
		// The contradiction never fires: its premise stays unmarked.
		{"(p∧q→⊥)∧(⊤→p)", "Satisfiable p"},
		{"⊤→⊥", "Unsatisfiable"},
		{"p→p", "Satisfiable"},
		{"", "Satisfiable"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, solveText(t, tt.input).String())
		})
	}
}

// Marking is confluent: clause order never changes the marked set or the
// verdict.
func TestSolveOrderIndependent(t *testing.T) {
	clauses, err := Parse("(⊤→a)∧(a→b)∧(b∧a→c)∧(c→d)∧(x∧y→z)∧(d∧c→⊥)")
	require.NoError(t, err)
	want := Solve(clauses)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]Clause, len(clauses))
		copy(shuffled, clauses)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Solve(shuffled))
	}
}

// The marked set is the least model: it satisfies every non-⊥ clause, and
// removing any marked atom breaks one.
func TestSolveLeastModel(t *testing.T) {
	clauses, err := Parse("(⊤→a)∧(a→b)∧(b→c)∧(q→r)")
	require.NoError(t, err)
	res := Solve(clauses)
	require.True(t, res.Satisfiable)
	assert.Equal(t, []string{"a", "b", "c"}, res.Model)

	satisfies := func(model map[string]bool) bool {
		for _, c := range clauses {
			if c.Conclusion == Bottom {
				continue
			}
			all := true
			for atom := range c.Premise {
				if !model[atom] {
					all = false
					break
				}
			}
			if all && !model[c.Conclusion] {
				return false
			}
		}
		return true
	}

	model := make(map[string]bool)
	for _, atom := range res.Model {
		model[atom] = true
	}
	assert.True(t, satisfies(model))
	for _, atom := range res.Model {
		model[atom] = false
		assert.False(t, satisfies(model), "model without %q still satisfies the clauses", atom)
		model[atom] = true
	}
}
