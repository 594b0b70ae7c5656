package opt

import (
	"sort"
	"strconv"
	"strings"
)

// Clause is a sorted, duplicate-free sequence of literals, interpreted as
// their disjunction. The empty clause denotes false.
type Clause []Literal

// NewClause sorts and dedups lits into a canonical Clause. The input slice
// is not modified; a fresh slice is returned.
func NewClause(lits ...Literal) Clause {
	c := make(Clause, len(lits))
	copy(c, lits)
	return c.normalized()
}

// normalized returns c sorted ascending with duplicates removed.
func (c Clause) normalized() Clause {
	sort.Slice(c, func(i, j int) bool { return c[i].Less(c[j]) })
	if len(c) < 2 {
		return c
	}
	out := c[:1]
	for _, lit := range c[1:] {
		if lit != out[len(out)-1] {
			out = append(out, lit)
		}
	}
	return out
}

// Contains reports whether l appears in c. c must already be sorted.
func (c Clause) Contains(l Literal) bool {
	i := sort.Search(len(c), func(i int) bool { return !c[i].Less(l) })
	return i < len(c) && c[i] == l
}

// IsTautology reports whether c contains both a literal and its negation.
func (c Clause) IsTautology() bool {
	for _, l := range c {
		if c.Contains(l.Neg()) {
			return true
		}
	}
	return false
}

// WithoutLiteral returns a copy of c with l removed, preserving order. If l
// is absent, the returned clause is equal to c.
func (c Clause) WithoutLiteral(l Literal) Clause {
	out := make(Clause, 0, len(c))
	for _, lit := range c {
		if lit != l {
			out = append(out, lit)
		}
	}
	return out
}

// Clone returns an independent copy of c.
func (c Clause) Clone() Clause {
	out := make(Clause, len(c))
	copy(out, c)
	return out
}

// key is the canonical string used as a map key for clause-set membership;
// two clauses compare equal as sets iff their keys are equal.
func (c Clause) key() string {
	var b strings.Builder
	for i, l := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		if l.Sign {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(l.Var))
	}
	return b.String()
}
