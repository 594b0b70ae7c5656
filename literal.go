package opt

import "strconv"

// Literal is a variable together with a polarity. Var is a positive
// integer; Sign true means the variable is negated.
//
// The zero Literal{} is not a valid literal (Var must be >= 1); callers
// that build literals from signed integers should use LiteralFromInt.
type Literal struct {
	Var  int
	Sign bool
}

// LiteralFromInt maps a nonzero signed integer to a Literal, following the
// wire convention: i < 0 is the negated variable |i|.
func LiteralFromInt(i int) Literal {
	if i < 0 {
		return Literal{Var: -i, Sign: true}
	}
	return Literal{Var: i, Sign: false}
}

// Int renders the literal back to the signed-integer convention.
func (l Literal) Int() int {
	if l.Sign {
		return -l.Var
	}
	return l.Var
}

// Neg returns the literal's negation; only the sign flips.
func (l Literal) Neg() Literal {
	return Literal{Var: l.Var, Sign: !l.Sign}
}

// Less gives the total order over literals: lexicographic over (Var, Sign),
// with the unsigned (Sign == false) polarity sorting before the negated one.
func (l Literal) Less(other Literal) bool {
	if l.Var != other.Var {
		return l.Var < other.Var
	}
	return !l.Sign && other.Sign
}

// String renders a literal the way the original source's Display impl
// does: a leading '-' for the negated polarity, bare digits otherwise.
func (l Literal) String() string {
	if l.Sign {
		return "-" + strconv.Itoa(l.Var)
	}
	return strconv.Itoa(l.Var)
}
