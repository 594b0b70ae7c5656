package opt

import "math/rand"

// PPSZOptions configures a PPSZ solver. A plain struct with a package-level
// default rather than functional options, since every knob here has a
// single obvious default and no per-field validation.
type PPSZOptions struct {
	// MaxClauses caps the number of active non-unit clauses kept during
	// bounded resolution; resolution for the current round stops as soon
	// as this is exceeded.
	MaxClauses int
	// MaxResolveIterations bounds the number of bounded-resolution
	// rounds attempted before giving up on the whole run.
	MaxResolveIterations int
	// MaxSearchIterations bounds the number of randomized restarts
	// tried per resolution round.
	MaxSearchIterations int
	// MaxClauseSize discards any resolvent larger than this.
	MaxClauseSize int
	// BoundedResolveIterations bounds the inner saturation passes run
	// per resolution round.
	BoundedResolveIterations int
}

// DefaultPPSZOptions mirrors the fixed constants this solver has always
// shipped with, rather than an n³/5-scaled variant: see DESIGN.md for
// the tradeoff.
var DefaultPPSZOptions = PPSZOptions{
	MaxClauses:               500,
	MaxResolveIterations:     10,
	MaxSearchIterations:      100,
	MaxClauseSize:            3,
	BoundedResolveIterations: 2,
}

// PPSZ is the randomized Paturi-Pudlák-Saks-Zane solver: bounded
// resolution preprocessing followed by randomized restart-based search.
// Unlike DPLL, an ErrUnsatisfiable result from PPSZ is a Monte Carlo
// result — "no restart found a model within budget" — not a proof.
type PPSZ struct {
	Options PPSZOptions
	Rand    *rand.Rand
	Stats   PPSZStats
}

// PPSZStats holds informational counters about a completed Solve call.
type PPSZStats struct {
	ResolveRounds  int
	SearchRestarts int
}

// NewPPSZ returns a PPSZ solver with DefaultPPSZOptions and a PRNG seeded
// with the fixed value 1, so every solver it returns draws the same
// random sequence; Rand can be replaced by a differently seeded source.
func NewPPSZ() *PPSZ {
	return &PPSZ{
		Options: DefaultPPSZOptions,
		Rand:    rand.New(rand.NewSource(1)),
	}
}

// Solve runs PPSZ's two-phase algorithm against cnf. cnf itself is only
// read (via Eval, as PPSZ's own satisfiability self-check); all mutation
// happens against an ExtendedCNF built from a clone.
func (p *PPSZ) Solve(cnf *CNF) ([]Literal, error) {
	if p.Options == (PPSZOptions{}) {
		p.Options = DefaultPPSZOptions
	}
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(1))
	}
	p.Stats = PPSZStats{}

	g := FromCNF(cnf.Clone())

	for round := 0; round < p.Options.MaxResolveIterations; round++ {
		p.Stats.ResolveRounds++
		if g.NumClauses() < p.Options.MaxClauses {
			p.boundedResolve(g)
		}
		if assignment, ok := p.search(cnf, g); ok {
			return assignment, nil
		}
	}
	return nil, ErrUnsatisfiable
}

// boundedResolve runs one round of bounded resolution: repeatedly
// resolve pairs involving at least one clause from the previous round's
// fresh frontier (to avoid rediscovering the same resolvents), discard
// resolvents that are tautologies, already present, or larger than
// MaxClauseSize, and stop early if the clause count blows past
// MaxClauses.
func (p *PPSZ) boundedResolve(g *ExtendedCNF) {
	frontier := g.ActiveClauses()
	all := append([]Clause(nil), frontier...)

	for iter := 0; iter < p.Options.BoundedResolveIterations; iter++ {
		var fresh []Clause
		for _, a := range frontier {
			for _, b := range all {
				for _, resolvent := range resolveAllPivots(a, b, p.Options.MaxClauseSize) {
					if resolvent.IsTautology() || g.Contains(resolvent) {
						continue
					}
					g.AddClause(resolvent)
					fresh = append(fresh, resolvent)
					all = append(all, resolvent)
				}
			}
			if g.NumClauses() > p.Options.MaxClauses {
				return
			}
		}
		if len(fresh) == 0 {
			return
		}
		frontier = fresh
	}
}

// resolveAllPivots returns every resolvent of a and b over any literal
// they share a pivot on (a literal present in one and its negation in
// the other), skipping anything larger than maxSize.
func resolveAllPivots(a, b Clause, maxSize int) []Clause {
	var out []Clause
	for _, l := range a {
		resolvent, ok := Resolve(a, b, l)
		if !ok || len(resolvent) > maxSize {
			continue
		}
		out = append(out, resolvent)
	}
	return out
}

// search repeats the randomized restart loop up to MaxSearchIterations
// times: sample a permutation and a random bit vector, run Modify on a
// clone of g, and accept the first candidate that satisfies the
// original cnf.
func (p *PPSZ) search(cnf *CNF, g *ExtendedCNF) ([]Literal, bool) {
	n := cnf.VarCount()
	for it := 0; it < p.Options.MaxSearchIterations; it++ {
		p.Stats.SearchRestarts++

		pi := p.Rand.Perm(n)
		for i := range pi {
			pi[i]++ // variables are 1..=n
		}
		y := make([]bool, n)
		for i := range y {
			y[i] = p.Rand.Intn(2) == 1
		}

		candidate, err := modify(g.Clone(), pi, y)
		if err != nil {
			// Apply hit a conflict: abandon this restart outright rather
			// than evaluating a partial assignment.
			continue
		}
		if cnf.Eval(candidate) {
			return candidate, true
		}
	}
	return nil, false
}

// modify is PPSZ's assignment procedure: for each variable in π-order,
// force it by whichever unit clause the indexed CNF currently has for
// that variable if one exists, otherwise assign it from the
// corresponding bit of y. It aborts with ErrUnsatisfiable the moment
// Apply finds the forced literal contradicts an already-active unit
// clause.
func modify(g *ExtendedCNF, pi []int, y []bool) ([]Literal, error) {
	assignment := make([]Literal, 0, len(pi))
	for i, v := range pi {
		l := literalForStep(g, v, y[i])
		if err := g.Apply(l); err != nil {
			return nil, err
		}
		assignment = append(assignment, l)
	}
	return assignment, nil
}

// literalForStep chooses the literal for variable v at this step of
// Modify: the unit-clause-forced polarity if one is active, else the
// polarity driven by the random bit yBit (sign = ¬yBit).
func literalForStep(g *ExtendedCNF, v int, yBit bool) Literal {
	pos := Literal{Var: v, Sign: false}
	neg := Literal{Var: v, Sign: true}
	switch {
	case g.unitClauses[pos]:
		return pos
	case g.unitClauses[neg]:
		return neg
	default:
		return Literal{Var: v, Sign: !yBit}
	}
}
