package opt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func cnfFrom(clauses ...[]int) *CNF {
	c := NewCNF()
	for _, cl := range clauses {
		c.AddClause(lits(cl...)...)
	}
	return c
}

func TestCNFAddClauseDedupsAndTracksVarCount(t *testing.T) {
	c := NewCNF()
	c.AddClause(lits(1, 2)...)
	c.AddClause(lits(2, 1)...) // same clause, different order: no-op
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	c.AddClause(lits(-5)...)
	if c.VarCount() != 5 {
		t.Errorf("VarCount() = %d, want 5", c.VarCount())
	}
}

func TestCNFAddClauseEmptyIsUnsat(t *testing.T) {
	c := NewCNF()
	c.AddClause()
	if !c.HasEmptyClause() {
		t.Error("want HasEmptyClause() after adding an empty clause")
	}
}

func TestCNFRemoveClausesWithVariable(t *testing.T) {
	c := cnfFrom([]int{1, 2}, []int{-1, 3}, []int{2, 3})
	c.RemoveClausesWithVariable(LiteralFromInt(1))
	got := c.Clauses()
	want := []Clause{NewClause(lits(2, 3)...)}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("RemoveClausesWithVariable (-got +want):\n%s", diff)
	}
}

func TestCNFAddRemoveClausesBulk(t *testing.T) {
	c := cnfFrom([]int{1, 2}, []int{3, 4})
	removed := []Clause{NewClause(lits(1, 2)...)}
	c.RemoveClauses(removed)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	c.AddClauses(removed)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}

func TestCNFAnyLiteralDeterministic(t *testing.T) {
	c := cnfFrom([]int{1, 2, 3}, []int{-4, 5}, []int{6})
	l, ok := c.AnyLiteral()
	if !ok {
		t.Fatal("want ok")
	}
	// shortest clause ({6}) wins regardless of map iteration order.
	if l != LiteralFromInt(6) {
		t.Errorf("AnyLiteral() = %v, want 6", l)
	}
}

func TestCNFAnyLiteralEmpty(t *testing.T) {
	c := NewCNF()
	if _, ok := c.AnyLiteral(); ok {
		t.Error("want !ok on empty CNF")
	}
}

func TestCNFEval(t *testing.T) {
	c := cnfFrom([]int{1, 2}, []int{-1, 3})
	if !c.Eval(lits(1, 3)) {
		t.Error("want satisfied by {1, 3}")
	}
	if c.Eval(lits(1)) {
		t.Error("want unsatisfied: second clause needs -1 or 3")
	}
	if c.Eval(nil) {
		t.Error("want unsatisfied with no forced literals")
	}
}

func TestCNFEvalEmptyClauseAlwaysFails(t *testing.T) {
	c := NewCNF()
	c.AddClause()
	if c.Eval(lits(1, 2, 3)) {
		t.Error("want the empty clause to reject every assignment")
	}
}

func TestCNFClone(t *testing.T) {
	c := cnfFrom([]int{1, 2}, []int{-1, 3})
	clone := c.Clone()
	clone.AddClause(lits(5, 6)...)
	if c.Len() == clone.Len() {
		t.Error("want clone's mutation not to affect the original")
	}
	if diff := cmp.Diff(c.Clauses(), cnfFrom([]int{1, 2}, []int{-1, 3}).Clauses(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("original mutated by clone (-got +want):\n%s", diff)
	}
}
