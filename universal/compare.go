package universal

import (
	"errors"
	"fmt"
)

// ErrNotComparable is returned when an ordering between two constants is requested.
var ErrNotComparable = errors.New("physical constants are not comparable")

// Op is a relational operator.
type Op uint8

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

var opSymbols = [...]string{
	Eq: "==",
	Ne: "!=",
	Lt: "<",
	Le: "<=",
	Gt: ">",
	Ge: ">=",
}

var opNames = [...]string{
	Eq: "eq",
	Ne: "ne",
	Lt: "lt",
	Le: "le",
	Gt: "gt",
	Ge: "ge",
}

// String returns the operator symbol.
func (o Op) String() string {
	if int(o) < len(opSymbols) {
		return opSymbols[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// Ops returns the short names of all operators, as accepted by ParseOp.
func Ops() []string {
	return opNames[:]
}

// ParseOp accepts either the short name ("lt") or the symbol ("<").
func ParseOp(s string) (Op, error) {
	for i := range opNames {
		if s == opNames[i] || s == opSymbols[i] {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operator %q", s)
}

// Equal reports whether both constants have the same value under IEEE-754 equality.
func (c Constant) Equal(other Constant) bool {
	return c.Value() == other.Value()
}

// NotEqual is the negation of Equal.
func (c Constant) NotEqual(other Constant) bool {
	return !c.Equal(other)
}

// Relate applies op to c and other.
// Only equality operators are defined; ordering operators return ErrNotComparable.
func (c Constant) Relate(op Op, other Constant) (bool, error) {
	switch op {
	case Eq:
		return c.Equal(other), nil
	case Ne:
		return c.NotEqual(other), nil
	case Lt, Le, Gt, Ge:
		return false, fmt.Errorf("%s %s %s: %w", c.Name(), op, other.Name(), ErrNotComparable)
	default:
		return false, fmt.Errorf("unknown operator %s", op)
	}
}
