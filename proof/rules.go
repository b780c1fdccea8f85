package proof

import "github.com/logikon/proplog/formula"

// Record is the immutable outcome of an accepted proof line.
type Record struct {
	Line       int
	Formula    formula.Formula
	Rule       string
	Refs       []Ref
	Depth      int
	Assumption bool

	scope int // id of the scope the line was derived in
}

// Ref is a justification reference: a single line number, or a start-end
// subproof range.
type Ref struct {
	Start, End int
	Range      bool
}

// state is the validator's working state: the append-only line records and
// the stack of open scopes. Scope ids are never reused, so a record is
// accessible exactly when its scope id is still on the open stack.
type state struct {
	records            map[int]*Record
	open               []int       // open scope ids, innermost last; open[0] is the root
	parents            map[int]int // scope id of the scope each scope was opened in
	nextScope          int
	awaitingAssumption bool
	lastLine           int
}

func newState() *state {
	return &state{
		records:   make(map[int]*Record),
		open:      []int{0},
		parents:   make(map[int]int),
		nextScope: 1,
	}
}

func (st *state) depth() int {
	return len(st.open) - 1
}

func (st *state) currentScope() int {
	return st.open[len(st.open)-1]
}

// accessible resolves a single-line reference. The referenced line must
// exist and must have been derived in a scope that is still open.
func (st *state) accessible(n int) (*Record, error) {
	rec, ok := st.records[n]
	if !ok {
		return nil, semanticf("reference to unknown line %d", n)
	}
	for _, id := range st.open {
		if id == rec.scope {
			return rec, nil
		}
	}
	return nil, scopef("line %d belongs to a closed scope", n)
}

// subproof resolves a start-end range naming a completed subproof of the
// current scope: both endpoints must exist in the same scope, that scope
// must have been opened directly in the current one, and the start line
// must be its assumption. A subproof discharged under a different
// assumption is not reachable, even from the same depth.
func (st *state) subproof(r Ref) (assumption, conclusion *Record, err error) {
	if !r.Range {
		return nil, nil, semanticf("expected a start-end range")
	}
	start, ok := st.records[r.Start]
	if !ok {
		return nil, nil, semanticf("reference to unknown line %d", r.Start)
	}
	end, ok := st.records[r.End]
	if !ok {
		return nil, nil, semanticf("reference to unknown line %d", r.End)
	}
	if r.Start > r.End {
		return nil, nil, semanticf("range %d-%d is reversed", r.Start, r.End)
	}
	if start.scope != end.scope {
		return nil, nil, scopef("lines %d and %d are not in the same scope", r.Start, r.End)
	}
	if start.scope == 0 || st.parents[start.scope] != st.currentScope() {
		return nil, nil, scopef("range %d-%d does not name a direct subproof", r.Start, r.End)
	}
	if !start.Assumption {
		return nil, nil, scopef("line %d is not an assumption", r.Start)
	}
	return start, end, nil
}

// lines extracts exactly n single-line references.
func lines(refs []Ref, n int) ([]int, error) {
	if len(refs) != n {
		return nil, semanticf("expected %d reference(s), got %d", n, len(refs))
	}
	out := make([]int, n)
	for i, r := range refs {
		if r.Range {
			return nil, semanticf("expected a line reference, got a range")
		}
		out[i] = r.Start
	}
	return out, nil
}

type ruleFunc func(st *state, cur formula.Formula, refs []Ref) error

// rules maps each justification name to its validator. Premise and
// Assumption are also dispatched through this table; their positional
// constraints (depth 0, immediately after BeginScope) live here so that
// every rule is checked through one uniform interface.
var rules = map[string]ruleFunc{
	"Premise":    checkPremise,
	"Assumption": checkAssumption,
	"Copy":       checkCopy,
	"∧i":         checkAndIntro,
	"∧e1":        checkAndElim1,
	"∧e2":        checkAndElim2,
	"∨i1":        checkOrIntro1,
	"∨i2":        checkOrIntro2,
	"∨e":         checkOrElim,
	"→e":         checkImpliesElim,
	"→i":         checkImpliesIntro,
	"¬e":         checkNotElim,
	"¬i":         checkNotIntro,
	"⊥e":         checkBottomElim,
	"¬¬e":        checkDoubleNegElim,
	"¬¬i":        checkDoubleNegIntro,
	"MT":         checkModusTollens,
	"PBC":        checkPBC,
	"LEM":        checkLEM,
}

func checkPremise(st *state, cur formula.Formula, refs []Ref) error {
	if len(refs) != 0 {
		return semanticf("Premise takes no references")
	}
	if st.depth() != 0 {
		return scopef("Premise is only allowed at the outermost scope")
	}
	return nil
}

func checkAssumption(st *state, cur formula.Formula, refs []Ref) error {
	if len(refs) != 0 {
		return semanticf("Assumption takes no references")
	}
	if !st.awaitingAssumption {
		return scopef("Assumption must immediately follow BeginScope")
	}
	return nil
}

func checkCopy(st *state, cur formula.Formula, refs []Ref) error {
	ns, err := lines(refs, 1)
	if err != nil {
		return err
	}
	rec, err := st.accessible(ns[0])
	if err != nil {
		return err
	}
	if !formula.Equal(cur, rec.Formula) {
		return semanticf("formula does not match line %d", ns[0])
	}
	return nil
}

func checkAndIntro(st *state, cur formula.Formula, refs []Ref) error {
	ns, err := lines(refs, 2)
	if err != nil {
		return err
	}
	first, err := st.accessible(ns[0])
	if err != nil {
		return err
	}
	second, err := st.accessible(ns[1])
	if err != nil {
		return err
	}
	conj, ok := cur.(formula.And)
	if !ok {
		return semanticf("∧i must derive a conjunction")
	}
	if !formula.Equal(conj.Left, first.Formula) || !formula.Equal(conj.Right, second.Formula) {
		return semanticf("conjuncts do not match lines %d and %d", ns[0], ns[1])
	}
	return nil
}

func checkAndElim1(st *state, cur formula.Formula, refs []Ref) error {
	return checkAndElim(st, cur, refs, true)
}

func checkAndElim2(st *state, cur formula.Formula, refs []Ref) error {
	return checkAndElim(st, cur, refs, false)
}

func checkAndElim(st *state, cur formula.Formula, refs []Ref, left bool) error {
	ns, err := lines(refs, 1)
	if err != nil {
		return err
	}
	rec, err := st.accessible(ns[0])
	if err != nil {
		return err
	}
	conj, ok := rec.Formula.(formula.And)
	if !ok {
		return semanticf("line %d is not a conjunction", ns[0])
	}
	operand := conj.Right
	if left {
		operand = conj.Left
	}
	if !formula.Equal(cur, operand) {
		return semanticf("formula does not match the selected conjunct of line %d", ns[0])
	}
	return nil
}

func checkOrIntro1(st *state, cur formula.Formula, refs []Ref) error {
	return checkOrIntro(st, cur, refs, true)
}

func checkOrIntro2(st *state, cur formula.Formula, refs []Ref) error {
	return checkOrIntro(st, cur, refs, false)
}

func checkOrIntro(st *state, cur formula.Formula, refs []Ref, left bool) error {
	ns, err := lines(refs, 1)
	if err != nil {
		return err
	}
	rec, err := st.accessible(ns[0])
	if err != nil {
		return err
	}
	disj, ok := cur.(formula.Or)
	if !ok {
		return semanticf("∨i must derive a disjunction")
	}
	operand := disj.Right
	if left {
		operand = disj.Left
	}
	if !formula.Equal(operand, rec.Formula) {
		return semanticf("disjunct does not match line %d", ns[0])
	}
	return nil
}

func checkImpliesElim(st *state, cur formula.Formula, refs []Ref) error {
	ns, err := lines(refs, 2)
	if err != nil {
		return err
	}
	first, err := st.accessible(ns[0])
	if err != nil {
		return err
	}
	second, err := st.accessible(ns[1])
	if err != nil {
		return err
	}
	// Order-symmetric: either reference may be the implication.
	if matchesModusPonens(first.Formula, second.Formula, cur) ||
		matchesModusPonens(second.Formula, first.Formula, cur) {
		return nil
	}
	return semanticf("→e does not apply to lines %d and %d", ns[0], ns[1])
}

func matchesModusPonens(implication, antecedent, cur formula.Formula) bool {
	imp, ok := implication.(formula.Implies)
	if !ok {
		return false
	}
	return formula.Equal(imp.Left, antecedent) && formula.Equal(cur, imp.Right)
}

func checkImpliesIntro(st *state, cur formula.Formula, refs []Ref) error {
	if len(refs) != 1 {
		return semanticf("→i takes exactly one range")
	}
	assumption, conclusion, err := st.subproof(refs[0])
	if err != nil {
		return err
	}
	imp, ok := cur.(formula.Implies)
	if !ok {
		return semanticf("→i must derive an implication")
	}
	if !formula.Equal(imp.Left, assumption.Formula) || !formula.Equal(imp.Right, conclusion.Formula) {
		return semanticf("implication does not match subproof %d-%d", refs[0].Start, refs[0].End)
	}
	return nil
}

func checkNotElim(st *state, cur formula.Formula, refs []Ref) error {
	ns, err := lines(refs, 2)
	if err != nil {
		return err
	}
	first, err := st.accessible(ns[0])
	if err != nil {
		return err
	}
	second, err := st.accessible(ns[1])
	if err != nil {
		return err
	}
	if _, ok := cur.(formula.Bottom); !ok {
		return semanticf("¬e must derive ⊥")
	}
	if !contradicts(first.Formula, second.Formula) {
		return semanticf("lines %d and %d are not contradictory", ns[0], ns[1])
	}
	return nil
}

// contradicts reports whether one formula is the negation of the other.
func contradicts(a, b formula.Formula) bool {
	if n, ok := a.(formula.Not); ok && formula.Equal(n.F, b) {
		return true
	}
	if n, ok := b.(formula.Not); ok && formula.Equal(n.F, a) {
		return true
	}
	return false
}

func checkNotIntro(st *state, cur formula.Formula, refs []Ref) error {
	if len(refs) != 1 {
		return semanticf("¬i takes exactly one range")
	}
	assumption, conclusion, err := st.subproof(refs[0])
	if err != nil {
		return err
	}
	if _, ok := conclusion.Formula.(formula.Bottom); !ok {
		return semanticf("subproof %d-%d does not end in ⊥", refs[0].Start, refs[0].End)
	}
	neg, ok := cur.(formula.Not)
	if !ok {
		return semanticf("¬i must derive a negation")
	}
	if !formula.Equal(neg.F, assumption.Formula) {
		return semanticf("negated formula does not match the assumption of line %d", refs[0].Start)
	}
	return nil
}

func checkPBC(st *state, cur formula.Formula, refs []Ref) error {
	if len(refs) != 1 {
		return semanticf("PBC takes exactly one range")
	}
	assumption, conclusion, err := st.subproof(refs[0])
	if err != nil {
		return err
	}
	if _, ok := conclusion.Formula.(formula.Bottom); !ok {
		return semanticf("subproof %d-%d does not end in ⊥", refs[0].Start, refs[0].End)
	}
	neg, ok := assumption.Formula.(formula.Not)
	if !ok {
		return semanticf("the assumption of line %d is not a negation", refs[0].Start)
	}
	if !formula.Equal(neg.F, cur) {
		return semanticf("formula does not match the negated assumption of line %d", refs[0].Start)
	}
	return nil
}

func checkBottomElim(st *state, cur formula.Formula, refs []Ref) error {
	ns, err := lines(refs, 1)
	if err != nil {
		return err
	}
	rec, err := st.accessible(ns[0])
	if err != nil {
		return err
	}
	if _, ok := rec.Formula.(formula.Bottom); !ok {
		return semanticf("line %d is not ⊥", ns[0])
	}
	// Ex falso: any current formula is accepted.
	return nil
}

func checkDoubleNegElim(st *state, cur formula.Formula, refs []Ref) error {
	ns, err := lines(refs, 1)
	if err != nil {
		return err
	}
	rec, err := st.accessible(ns[0])
	if err != nil {
		return err
	}
	outer, ok := rec.Formula.(formula.Not)
	if !ok {
		return semanticf("line %d is not a double negation", ns[0])
	}
	inner, ok := outer.F.(formula.Not)
	if !ok {
		return semanticf("line %d is not a double negation", ns[0])
	}
	if !formula.Equal(cur, inner.F) {
		return semanticf("formula does not match the doubly negated operand of line %d", ns[0])
	}
	return nil
}

func checkDoubleNegIntro(st *state, cur formula.Formula, refs []Ref) error {
	ns, err := lines(refs, 1)
	if err != nil {
		return err
	}
	rec, err := st.accessible(ns[0])
	if err != nil {
		return err
	}
	outer, ok := cur.(formula.Not)
	if !ok {
		return semanticf("¬¬i must derive a double negation")
	}
	inner, ok := outer.F.(formula.Not)
	if !ok {
		return semanticf("¬¬i must derive a double negation")
	}
	if !formula.Equal(inner.F, rec.Formula) {
		return semanticf("doubly negated operand does not match line %d", ns[0])
	}
	return nil
}

func checkModusTollens(st *state, cur formula.Formula, refs []Ref) error {
	ns, err := lines(refs, 2)
	if err != nil {
		return err
	}
	first, err := st.accessible(ns[0])
	if err != nil {
		return err
	}
	second, err := st.accessible(ns[1])
	if err != nil {
		return err
	}
	imp, ok := first.Formula.(formula.Implies)
	if !ok {
		return semanticf("line %d is not an implication", ns[0])
	}
	negConsequent, ok := second.Formula.(formula.Not)
	if !ok {
		return semanticf("line %d is not a negation", ns[1])
	}
	negAntecedent, ok := cur.(formula.Not)
	if !ok {
		return semanticf("MT must derive a negation")
	}
	if !formula.Equal(imp.Right, negConsequent.F) || !formula.Equal(negAntecedent.F, imp.Left) {
		return semanticf("MT does not apply to lines %d and %d", ns[0], ns[1])
	}
	return nil
}

func checkOrElim(st *state, cur formula.Formula, refs []Ref) error {
	if len(refs) != 3 || refs[0].Range || !refs[1].Range || !refs[2].Range {
		return semanticf("∨e takes a line reference and two ranges")
	}
	if overlaps(refs[1], refs[2]) {
		return scopef("∨e subproofs %d-%d and %d-%d overlap",
			refs[1].Start, refs[1].End, refs[2].Start, refs[2].End)
	}
	disjRec, err := st.accessible(refs[0].Start)
	if err != nil {
		return err
	}
	disj, ok := disjRec.Formula.(formula.Or)
	if !ok {
		return semanticf("line %d is not a disjunction", refs[0].Start)
	}
	assum1, concl1, err := st.subproof(refs[1])
	if err != nil {
		return err
	}
	assum2, concl2, err := st.subproof(refs[2])
	if err != nil {
		return err
	}
	if !formula.Equal(disj.Left, assum1.Formula) || !formula.Equal(disj.Right, assum2.Formula) {
		return semanticf("subproof assumptions do not match the disjuncts of line %d", refs[0].Start)
	}
	if !formula.Equal(concl1.Formula, concl2.Formula) {
		return semanticf("∨e subproofs reach different conclusions")
	}
	if !formula.Equal(cur, concl1.Formula) {
		return semanticf("formula does not match the subproof conclusions")
	}
	return nil
}

func overlaps(a, b Ref) bool {
	lo := a.Start
	if b.Start > lo {
		lo = b.Start
	}
	hi := a.End
	if b.End < hi {
		hi = b.End
	}
	return lo <= hi
}

func checkLEM(st *state, cur formula.Formula, refs []Ref) error {
	if len(refs) != 0 {
		return semanticf("LEM takes no references")
	}
	disj, ok := cur.(formula.Or)
	if !ok {
		return semanticf("LEM must derive a disjunction")
	}
	if n, ok := disj.Right.(formula.Not); ok && formula.Equal(disj.Left, n.F) {
		return nil
	}
	if n, ok := disj.Left.(formula.Not); ok && formula.Equal(n.F, disj.Right) {
		return nil
	}
	return semanticf("formula is not an instance of A ∨ ¬A")
}
