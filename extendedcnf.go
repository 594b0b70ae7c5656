package opt

import "sort"

// ExtendedCNF is a denormalized view of a CNF used only by PPSZ, indexing
// clauses so Apply and the resolution step stay near-linear in the
// number of clauses actually touched by an edit rather than scanning the
// whole set. The shared mutable literal->clause-set indices are owned
// entirely here: no caller reaches into clausesWithLiteral directly,
// every edit primitive keeps it consistent.
type ExtendedCNF struct {
	// clauses is an indexed list of non-unit clauses. A removed clause's
	// slot is set to nil rather than compacted, so indices recorded in
	// clausesWithLiteral stay valid; callers must skip nil slots.
	clauses []Clause
	// clausesSet maps a clause's canonical key to its index in clauses,
	// for O(1) membership/index lookup.
	clausesSet map[string]int
	// unitClauses is the set of literals currently forced by a singleton
	// clause.
	unitClauses map[Literal]bool
	// clausesWithLiteral maps each literal to the set of indices in
	// clauses where it currently appears.
	clausesWithLiteral map[Literal]map[int]struct{}

	totalClauses       int
	unsatisfiedClauses int
}

// NewExtendedCNF builds an empty indexed CNF.
func NewExtendedCNF() *ExtendedCNF {
	return &ExtendedCNF{
		clausesSet:         make(map[string]int),
		unitClauses:        make(map[Literal]bool),
		clausesWithLiteral: make(map[Literal]map[int]struct{}),
	}
}

// FromCNF constructs the indexed form of cnf.
func FromCNF(cnf *CNF) *ExtendedCNF {
	e := NewExtendedCNF()
	for _, cl := range cnf.Clauses() {
		e.AddClause(cl)
	}
	return e
}

// Clone returns an independent deep copy, used by PPSZ to take one
// indexed snapshot per restart.
func (e *ExtendedCNF) Clone() *ExtendedCNF {
	out := &ExtendedCNF{
		clauses:            make([]Clause, len(e.clauses)),
		clausesSet:         make(map[string]int, len(e.clausesSet)),
		unitClauses:        make(map[Literal]bool, len(e.unitClauses)),
		clausesWithLiteral: make(map[Literal]map[int]struct{}, len(e.clausesWithLiteral)),
		totalClauses:       e.totalClauses,
		unsatisfiedClauses: e.unsatisfiedClauses,
	}
	for i, cl := range e.clauses {
		if cl != nil {
			out.clauses[i] = cl.Clone()
		}
	}
	for k, v := range e.clausesSet {
		out.clausesSet[k] = v
	}
	for l, v := range e.unitClauses {
		out.unitClauses[l] = v
	}
	for l, idxs := range e.clausesWithLiteral {
		cp := make(map[int]struct{}, len(idxs))
		for i := range idxs {
			cp[i] = struct{}{}
		}
		out.clausesWithLiteral[l] = cp
	}
	return out
}

// NumClauses is the number of currently-active (non-tombstoned) non-unit
// clauses.
func (e *ExtendedCNF) NumClauses() int {
	return len(e.clausesSet)
}

// TotalClauses is the running count of clauses ever inserted (units and
// multi-literal alike), never decremented on removal.
func (e *ExtendedCNF) TotalClauses() int { return e.totalClauses }

// UnsatisfiedClauses is the number of currently-active clauses (units and
// multi-literal alike).
func (e *ExtendedCNF) UnsatisfiedClauses() int { return e.unsatisfiedClauses }

// Contains reports whether clause cl (already normalized) is present,
// dispatching to the unit-clause set or the indexed multi-literal set.
func (e *ExtendedCNF) Contains(cl Clause) bool {
	if len(cl) == 1 {
		return e.unitClauses[cl[0]]
	}
	_, ok := e.clausesSet[cl.key()]
	return ok
}

// AddClause idempotently inserts cl: a unit clause routes into
// unitClauses, anything larger is appended to clauses with its
// literal->index entries recorded.
func (e *ExtendedCNF) AddClause(cl Clause) {
	if len(cl) == 0 {
		return
	}
	if len(cl) == 1 {
		if !e.unitClauses[cl[0]] {
			e.unitClauses[cl[0]] = true
			e.totalClauses++
			e.unsatisfiedClauses++
		}
		return
	}
	if e.Contains(cl) {
		return
	}
	idx := len(e.clauses)
	e.clauses = append(e.clauses, cl)
	e.clausesSet[cl.key()] = idx
	for _, l := range cl {
		e.index(l, idx)
	}
	e.totalClauses++
	e.unsatisfiedClauses++
}

func (e *ExtendedCNF) index(l Literal, idx int) {
	set, ok := e.clausesWithLiteral[l]
	if !ok {
		set = make(map[int]struct{})
		e.clausesWithLiteral[l] = set
	}
	set[idx] = struct{}{}
}

func (e *ExtendedCNF) unindex(l Literal, idx int) {
	if set, ok := e.clausesWithLiteral[l]; ok {
		delete(set, idx)
		if len(set) == 0 {
			delete(e.clausesWithLiteral, l)
		}
	}
}

// removeClauseAt tombstones the clause at idx: clears its slot, drops it
// from clausesSet and every literal index it participated in.
func (e *ExtendedCNF) removeClauseAt(idx int) {
	cl := e.clauses[idx]
	if cl == nil {
		return
	}
	delete(e.clausesSet, cl.key())
	for _, l := range cl {
		e.unindex(l, idx)
	}
	e.clauses[idx] = nil
	e.unsatisfiedClauses--
}

// Apply commits literal L as true: clauses it satisfies are dropped,
// clauses containing ¬L are shrunk (dropped entirely if the residual
// duplicates an existing clause, demoted to a unit clause if the
// residual has exactly one literal). Conflicting with an existing unit
// clause of ¬L signals ErrUnsatisfiable.
func (e *ExtendedCNF) Apply(l Literal) error {
	neg := l.Neg()

	if e.unitClauses[neg] {
		return ErrUnsatisfiable
	}
	if e.unitClauses[l] {
		delete(e.unitClauses, l)
		e.unsatisfiedClauses--
	}

	if idxs, ok := e.clausesWithLiteral[l]; ok {
		for idx := range idxs {
			e.removeClauseAt(idx)
		}
	}

	var residuals []Clause
	if idxs, ok := e.clausesWithLiteral[neg]; ok {
		touched := make([]int, 0, len(idxs))
		for idx := range idxs {
			touched = append(touched, idx)
		}
		for _, idx := range touched {
			cl := e.clauses[idx]
			if cl == nil {
				continue
			}
			residual := cl.WithoutLiteral(neg)
			e.removeClauseAt(idx)
			residuals = append(residuals, residual)
		}
	}

	for _, r := range residuals {
		if e.Contains(r) {
			continue
		}
		e.AddClause(r)
	}
	return nil
}

// GetLiterals returns the set of literals for which either polarity
// currently indexes some non-unit clause.
func (e *ExtendedCNF) GetLiterals() []Literal {
	out := make([]Literal, 0, 2*len(e.clausesWithLiteral))
	seen := make(map[Literal]bool, 2*len(e.clausesWithLiteral))
	for l := range e.clausesWithLiteral {
		for _, x := range [2]Literal{l, l.Neg()} {
			if !seen[x] {
				seen[x] = true
				out = append(out, x)
			}
		}
	}
	return out
}

// ActiveClauses returns the currently-active (non-tombstoned) clauses, in
// a deterministic order, skipping unit clauses.
func (e *ExtendedCNF) ActiveClauses() []Clause {
	out := make([]Clause, 0, len(e.clausesSet))
	for _, cl := range e.clauses {
		if cl != nil {
			out = append(out, cl)
		}
	}
	sortClauses(out)
	return out
}

// UnitClauses returns the current unit literals, in a deterministic
// (sorted) order.
func (e *ExtendedCNF) UnitClauses() []Literal {
	out := make([]Literal, 0, len(e.unitClauses))
	for l := range e.unitClauses {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
