package opt

import "github.com/kr/pretty"

// DebugString renders c's internal clause set for diagnostics, in the
// order Clauses returns, rather than %v's view of an unexported map.
func (c *CNF) DebugString() string {
	return pretty.Sprint(c.Clauses())
}

// DebugString renders e's indexed state for diagnostics: active clauses,
// unit clauses and the running counters.
func (e *ExtendedCNF) DebugString() string {
	return pretty.Sprintf("active=%# v unit=%# v total=%d unsatisfied=%d",
		e.ActiveClauses(), e.UnitClauses(), e.totalClauses, e.unsatisfiedClauses)
}
