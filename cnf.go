package opt

import "sort"

// CNF is a set of clauses in conjunctive normal form. Duplicate clauses
// have no logical effect, so the set semantics are load-bearing: add a
// clause twice and it's still there once.
//
// CNF also tracks varCount, an upper bound on every variable index that
// has ever been inserted; PPSZ uses it to enumerate variables 1..=n.
type CNF struct {
	clauses  map[string]Clause
	varCount int
}

// NewCNF returns an empty CNF.
func NewCNF() *CNF {
	return &CNF{clauses: make(map[string]Clause)}
}

// VarCount is the largest variable index seen by AddClause so far.
func (c *CNF) VarCount() int { return c.varCount }

// Len is the number of distinct clauses currently in the CNF.
func (c *CNF) Len() int { return len(c.clauses) }

// AddClause sorts and dedups lits, updates varCount, and inserts the
// resulting clause (a no-op if an equal clause is already present). An
// empty literal slice adds the empty clause, making the CNF trivially
// unsatisfiable.
func (c *CNF) AddClause(lits ...Literal) {
	c.addClauseObj(NewClause(lits...))
}

// addClauseObj inserts an already-normalized clause.
func (c *CNF) addClauseObj(cl Clause) {
	for _, l := range cl {
		if l.Var > c.varCount {
			c.varCount = l.Var
		}
	}
	c.clauses[cl.key()] = cl
}

// AddClauses bulk-inserts every clause in cls.
func (c *CNF) AddClauses(cls []Clause) {
	for _, cl := range cls {
		c.addClauseObj(cl)
	}
}

// RemoveClauses bulk-removes every clause in cls that is present.
func (c *CNF) RemoveClauses(cls []Clause) {
	for _, cl := range cls {
		delete(c.clauses, cl.key())
	}
}

// RemoveClausesWithVariable removes every clause containing l or ¬l. DPLL
// uses it to clear the branch variable's clauses before it branches.
func (c *CNF) RemoveClausesWithVariable(l Literal) {
	neg := l.Neg()
	for key, cl := range c.clauses {
		if cl.Contains(l) || cl.Contains(neg) {
			delete(c.clauses, key)
		}
	}
}

// HasEmptyClause reports whether the empty clause is present, i.e.
// whether the CNF is known-unsatisfiable in its current form.
func (c *CNF) HasEmptyClause() bool {
	_, ok := c.clauses[""]
	return ok
}

// Clauses returns a deterministically ordered snapshot of the clause set:
// shortest clauses first, ties broken lexicographically by literal
// sequence. Go map iteration order is randomized, so any caller needing
// reproducible behavior (branch selection, AnyLiteral) must go through
// this rather than ranging over the internal map directly.
func (c *CNF) Clauses() []Clause {
	out := make([]Clause, 0, len(c.clauses))
	for _, cl := range c.clauses {
		out = append(out, cl)
	}
	sortClauses(out)
	return out
}

func sortClauses(cls []Clause) {
	sort.Slice(cls, func(i, j int) bool {
		a, b := cls[i], cls[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k].Less(b[k])
			}
		}
		return false
	})
}

// AnyLiteral picks a literal from some non-empty clause, deterministically:
// the first literal of the shortest, lexicographically-smallest clause.
func (c *CNF) AnyLiteral() (Literal, bool) {
	for _, cl := range c.Clauses() {
		if len(cl) > 0 {
			return cl[0], true
		}
	}
	return Literal{}, false
}

// Eval reports whether every clause contains at least one literal from
// assignment (literals "forced true"). A clause with no hit — including
// the empty clause — is unsatisfied.
func (c *CNF) Eval(assignment []Literal) bool {
	forced := make(map[Literal]bool, len(assignment))
	for _, l := range assignment {
		forced[l] = true
	}
	for _, cl := range c.clauses {
		satisfied := false
		for _, l := range cl {
			if forced[l] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy of c.
func (c *CNF) Clone() *CNF {
	out := &CNF{
		clauses:  make(map[string]Clause, len(c.clauses)),
		varCount: c.varCount,
	}
	for key, cl := range c.clauses {
		out.clauses[key] = cl.Clone()
	}
	return out
}
