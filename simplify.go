package opt

// This file is the simplification kernel: pure-ish routines over a
// mutable CNF that each preserve the invariants in cnf.go, plus Resolve,
// which only combines two clauses. UnitPropagate and EliminatePureLiterals
// return the set of literals they forced true, so callers can accumulate
// an eval-set witness across a simplification pass.

// UnitPropagate collects every literal appearing as a singleton clause,
// fails if both a literal and its negation are units, then removes every
// clause satisfied by a unit and strips falsified literals from the rest.
// The unit clauses themselves are consumed into the returned forced set
// rather than left in the CNF.
func UnitPropagate(c *CNF) ([]Literal, error) {
	units := make(map[Literal]bool)
	for _, cl := range c.clauses {
		if len(cl) == 1 {
			units[cl[0]] = true
		}
	}
	for l := range units {
		if units[l.Neg()] {
			return nil, ErrUnsatisfiable
		}
	}
	if len(units) == 0 {
		return nil, nil
	}

	forced := make([]Literal, 0, len(units))
	for l := range units {
		forced = append(forced, l)
	}

	var toRemove []string
	var toAdd []Clause
	for key, cl := range c.clauses {
		satisfied := false
		for _, l := range cl {
			if units[l] {
				satisfied = true
				break
			}
		}
		if satisfied {
			toRemove = append(toRemove, key)
			continue
		}
		reduced := cl
		changed := false
		for _, l := range cl {
			if units[l.Neg()] {
				reduced = reduced.WithoutLiteral(l)
				changed = true
			}
		}
		if changed {
			toRemove = append(toRemove, key)
			toAdd = append(toAdd, reduced)
		}
	}
	for _, key := range toRemove {
		delete(c.clauses, key)
	}
	for _, cl := range toAdd {
		c.addClauseObj(cl)
	}

	return forced, nil
}

// Normalize removes every tautological clause (one containing both a
// literal and its negation). It contributes nothing to an eval set.
func Normalize(c *CNF) {
	var toRemove []string
	for key, cl := range c.clauses {
		if cl.IsTautology() {
			toRemove = append(toRemove, key)
		}
	}
	for _, key := range toRemove {
		delete(c.clauses, key)
	}
}

// EliminatePureLiterals removes every clause containing a pure literal —
// one whose negation never appears anywhere in the CNF — and returns one
// forced literal per pure variable (never both polarities of the same
// variable; a variable with no clauses of the opposite polarity is pure
// in exactly one of them).
func EliminatePureLiterals(c *CNF) []Literal {
	seen := make(map[Literal]bool)
	for _, cl := range c.clauses {
		for _, l := range cl {
			seen[l] = true
		}
	}

	var forced []Literal
	pure := make(map[Literal]bool)
	for l := range seen {
		if !seen[l.Neg()] {
			pure[l] = true
			forced = append(forced, l)
		}
	}
	if len(pure) == 0 {
		return nil
	}

	var toRemove []string
	for key, cl := range c.clauses {
		for _, l := range cl {
			if pure[l] {
				toRemove = append(toRemove, key)
				break
			}
		}
	}
	for _, key := range toRemove {
		delete(c.clauses, key)
	}
	return forced
}

// Resolve computes the resolvent of a and b on pivot l: l must appear in
// one of the two clauses and ¬l in the other (the pair is tried in
// either order), and the result is (a\{l}) ∪ (b\{¬l}), sorted and
// deduplicated. ok is false if no such pivot relationship holds.
func Resolve(a, b Clause, l Literal) (resolvent Clause, ok bool) {
	neg := l.Neg()
	switch {
	case a.Contains(neg) && b.Contains(l):
		a, b = b, a
	case !a.Contains(l) || !b.Contains(neg):
		return nil, false
	}
	merged := append(a.WithoutLiteral(l), b.WithoutLiteral(neg)...)
	return NewClause(merged...), true
}
