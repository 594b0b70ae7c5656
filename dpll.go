package opt

// DPLLStats holds informational counters about a completed Solve call.
// The set of stats and their meaning may grow over time; callers should
// not depend on it beyond diagnostics.
type DPLLStats struct {
	Decisions  int64 // branch points explored (both tried and backtracked)
	Backtracks int64 // branches that failed and were undone
}

// BranchHeuristic picks the next branching literal from the clauses
// still in cnf. It must be deterministic given the same CNF contents,
// independent of map iteration order.
type BranchHeuristic func(cnf *CNF) (Literal, bool)

// DefaultBranchHeuristic picks the first literal of the shortest,
// lexicographically-smallest remaining clause — the deterministic
// default spec'd in place of inheriting Go's randomized map order.
func DefaultBranchHeuristic(cnf *CNF) (Literal, bool) {
	return cnf.AnyLiteral()
}

// DPLL is the classical Davis-Putnam-Logemann-Loveland backtracking
// solver: simplify to a fixpoint, branch on a literal, recurse on both
// polarities, backtrack on failure.
type DPLL struct {
	Heuristic BranchHeuristic
	Stats     DPLLStats
}

// NewDPLL returns a DPLL solver using DefaultBranchHeuristic.
func NewDPLL() *DPLL {
	return &DPLL{Heuristic: DefaultBranchHeuristic}
}

// Solve runs the DPLL procedure against a copy of cnf, so cnf itself is
// left unchanged whether the call succeeds or fails.
func (d *DPLL) Solve(cnf *CNF) ([]Literal, error) {
	if d.Heuristic == nil {
		d.Heuristic = DefaultBranchHeuristic
	}
	d.Stats = DPLLStats{}
	assignment, err := d.solve(cnf.Clone())
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// solve runs one level of the recursion: simplify to a fixpoint, then
// branch. Each branch recurses on its own copy of the partitioned CNF,
// so whatever a failed branch simplified away or added never reaches the
// other branch. cnf itself is simplified in place and that is not
// undone; when both branches fail, the clauses removed for the branch
// are put back.
func (d *DPLL) solve(cnf *CNF) ([]Literal, error) {
	if cnf.HasEmptyClause() {
		return nil, ErrUnsatisfiable
	}

	eval, err := d.simplifyToFixpoint(cnf)
	if err != nil {
		return nil, err
	}
	if cnf.Len() == 0 {
		return eval, nil
	}
	if cnf.HasEmptyClause() {
		return nil, ErrUnsatisfiable
	}

	l, ok := d.Heuristic(cnf)
	if !ok {
		// No clauses left but Len() > 0 is impossible given the checks
		// above; defensive fallback treats an exhausted heuristic as SAT.
		return eval, nil
	}
	neg := l.Neg()

	var positive, negative []Clause
	for _, cl := range cnf.Clauses() {
		switch {
		case cl.Contains(l):
			positive = append(positive, cl.WithoutLiteral(l))
		case cl.Contains(neg):
			negative = append(negative, cl.WithoutLiteral(neg))
		}
	}
	cnf.RemoveClausesWithVariable(l)

	d.Stats.Decisions++

	// Branch 1: try L false. The clauses that needed L to be satisfied
	// (positive) become the residual requirement once L is falsified.
	falseBranch := cnf.Clone()
	falseBranch.AddClauses(positive)
	if sub, err := d.solve(falseBranch); err == nil {
		return append(append([]Literal{neg}, eval...), sub...), nil
	}
	d.Stats.Backtracks++

	// Branch 2: try L true.
	trueBranch := cnf.Clone()
	trueBranch.AddClauses(negative)
	if sub, err := d.solve(trueBranch); err == nil {
		return append(append([]Literal{l}, eval...), sub...), nil
	}
	d.Stats.Backtracks++

	// Both branches failed: restore the pre-branch CNF exactly by
	// reinserting every clause with its branch literal put back.
	for _, cl := range positive {
		cnf.AddClause(append(cl.Clone(), l)...)
	}
	for _, cl := range negative {
		cnf.AddClause(append(cl.Clone(), neg)...)
	}
	return nil, ErrUnsatisfiable
}

// simplifyToFixpoint repeatedly applies unit propagation, normalization
// and pure-literal elimination until a pass forces no new literal,
// accumulating the forced literals across the whole cycle.
func (d *DPLL) simplifyToFixpoint(cnf *CNF) ([]Literal, error) {
	var eval []Literal
	for {
		unitForced, err := UnitPropagate(cnf)
		if err != nil {
			return nil, err
		}
		Normalize(cnf)
		pureForced := EliminatePureLiterals(cnf)

		eval = append(eval, unitForced...)
		eval = append(eval, pureForced...)

		if len(unitForced) == 0 && len(pureForced) == 0 {
			return eval, nil
		}
	}
}
