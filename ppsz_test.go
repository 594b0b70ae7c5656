package opt

import (
	"math/rand"
	"testing"
)

func TestPPSZSatSmall(t *testing.T) {
	c := cnfFrom([]int{1, 2}, []int{-1, 3}, []int{-2, -3})
	check := cnfFrom([]int{1, 2}, []int{-1, 3}, []int{-2, -3})

	p := NewPPSZ()
	p.Rand = rand.New(rand.NewSource(42))
	assignment, err := p.Solve(c)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !check.Eval(assignment) {
		t.Errorf("assignment %v does not satisfy the original CNF", assignment)
	}
}

func TestPPSZUnsatByBudget(t *testing.T) {
	c := cnfFrom([]int{1}, []int{-1})
	p := NewPPSZ()
	p.Rand = rand.New(rand.NewSource(7))
	p.Options.MaxResolveIterations = 1
	p.Options.MaxSearchIterations = 5
	if _, err := p.Solve(c); err != ErrUnsatisfiable {
		t.Errorf("Solve = %v, want ErrUnsatisfiable", err)
	}
}

// TestPPSZRandom3SAT checks that a satisfiable random 3-CNF with 20
// variables and 80 clauses, fixed seed, solves within the default budget.
func TestPPSZRandom3SAT(t *testing.T) {
	const numVars, numClauses = 20, 80
	problem := makeRandom3SAT(12345, numVars, numClauses)

	cnf := NewCNF()
	check := NewCNF()
	for _, cl := range problem {
		cnf.AddClause(lits(cl...)...)
		check.AddClause(lits(cl...)...)
	}

	p := NewPPSZ()
	p.Rand = rand.New(rand.NewSource(12345))
	assignment, err := p.Solve(cnf)
	if err != nil {
		t.Fatalf("Solve: %v (fixture is satisfiable by construction)", err)
	}
	if !check.Eval(assignment) {
		t.Fatalf("assignment %v does not satisfy %v", assignment, problem)
	}
}

// makeRandom3SAT builds a satisfiable-by-construction random 3-CNF, each
// clause guaranteed to contain at least one literal matching a hidden
// planted assignment.
func makeRandom3SAT(seed int64, numVars, numClauses int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	assignment := make([]bool, numVars)
	for v := range assignment {
		assignment[v] = rng.Intn(2) == 1
	}
	problem := make([][]int, numClauses)
	for i := range problem {
		vars := rng.Perm(numVars)[:3]
		fixed := rng.Intn(3)
		clause := make([]int, 3)
		for j, v := range vars {
			lit := v + 1
			if j == fixed {
				if !assignment[v] {
					lit = -lit
				}
			} else if rng.Intn(2) == 1 {
				lit = -lit
			}
			clause[j] = lit
		}
		problem[i] = clause
	}
	return problem
}

func TestBoundedResolveRespectsMaxClauseSize(t *testing.T) {
	c := cnfFrom([]int{1, 2, 3, 4}, []int{-1, 5, 6, 7})
	p := NewPPSZ()
	p.Options.MaxClauseSize = 3
	original := make(map[string]bool)
	for _, cl := range c.Clauses() {
		original[cl.key()] = true
	}
	g := FromCNF(c)
	p.boundedResolve(g)
	for _, cl := range g.ActiveClauses() {
		if original[cl.key()] {
			continue // input clauses are kept whatever their size
		}
		if len(cl) > p.Options.MaxClauseSize {
			t.Errorf("clause %v exceeds MaxClauseSize %d", cl, p.Options.MaxClauseSize)
		}
	}
}

func TestBoundedResolveStopsAtMaxClauses(t *testing.T) {
	c := NewCNF()
	for i := 1; i <= 6; i++ {
		c.AddClause(LiteralFromInt(i), LiteralFromInt(-(i % 6) - 1))
	}
	p := NewPPSZ()
	p.Options.MaxClauses = 3
	g := FromCNF(c)
	p.boundedResolve(g)
	if g.NumClauses() > p.Options.MaxClauses+6 {
		// Generous bound: resolution must not run away unboundedly once
		// the cap is crossed within a round.
		t.Errorf("NumClauses() = %d, grew far past MaxClauses %d", g.NumClauses(), p.Options.MaxClauses)
	}
}

func TestModifyUsesUnitClauseOverRandomBit(t *testing.T) {
	c := cnfFrom([]int{1}, []int{2, 3})
	g := FromCNF(c)
	// y[0] = false alone would assign -1, so +1 can only come from {1}.
	assignment, err := modify(g, []int{1, 2, 3}, []bool{false, false, false})
	if err != nil {
		t.Fatal(err)
	}
	if assignment[0] != LiteralFromInt(1) {
		t.Errorf("var 1 forced to %v, want +1 from the unit clause regardless of y", assignment[0])
	}
}
