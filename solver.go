// Package opt implements a CNF SAT solver offering two complete search
// strategies: classical DPLL backtracking, and a randomized PPSZ-style
// procedure (bounded resolution preprocessing followed by randomized
// restart search). See DESIGN.md for how each piece is grounded.
package opt

import "errors"

// ErrUnsatisfiable is returned by a Solver when the search is exhausted
// with no satisfying assignment found. For PPSZ this is a one-sided,
// Monte-Carlo result: "no restart found a model within budget", not a
// proof of unsatisfiability — see PPSZ's doc comment.
var ErrUnsatisfiable = errors.New("opt: unsatisfiable")

// Solver is implemented by every search strategy in this package.
// Solve takes ownership of cnf for the duration of the call: DPLL
// works on a copy of it, and PPSZ reads it via Eval without mutating it
// directly (its mutable work happens against an ExtendedCNF built from
// a clone).
type Solver interface {
	Solve(cnf *CNF) ([]Literal, error)
}

// Solve is the uniform façade: hand it a CNF and a chosen strategy, get
// back a satisfying assignment or ErrUnsatisfiable. It exists so call sites don't need to know which
// concrete solver they're holding.
func Solve(cnf *CNF, s Solver) ([]Literal, error) {
	return s.Solve(cnf)
}
