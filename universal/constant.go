// Package universal defines the closed set of universal physical constants and their SI values.
package universal

import (
	"math"
	"strconv"
	"strings"
)

// Constant identifies one universal physical constant.
type Constant uint8

// The variant set is closed: nothing outside this block is a valid Constant.
const (
	SpeedOfLight Constant = iota
	PlanckConstant
	ElementaryCharge
	BoltzmannConstant
	AvogadroConstant

	count
)

// definition holds the fixed attributes of a single constant.
type definition struct {
	name        string
	symbol      string
	unit        string
	description string
	value       float64
}

// definitions is indexed by Constant; its length is pinned to count so a new
// variant without a definition fails to compile.
var definitions = [count]definition{
	SpeedOfLight: {
		name: "SpeedOfLight", symbol: "c", unit: "m/s", value: 2.99792458e8,
		description: "Speed of light in vacuum. Exact by definition of the metre.",
	},
	PlanckConstant: {
		name: "PlanckConstant", symbol: "h", unit: "J·s", value: 6.62607015e-34,
		description: "Quantum of action relating a photon's energy to its frequency. Exact since the 2019 SI redefinition.",
	},
	ElementaryCharge: {
		name: "ElementaryCharge", symbol: "e", unit: "C", value: 1.602176634e-19,
		description: "Electric charge carried by a single proton, or the negated charge of an electron.",
	},
	BoltzmannConstant: {
		name: "BoltzmannConstant", symbol: "k_B", unit: "J/K", value: 1.380649e-23,
		description: "Relates the average kinetic energy of particles in a gas to its thermodynamic temperature.",
	},
	AvogadroConstant: {
		name: "AvogadroConstant", symbol: "N_A", unit: "1/mol", value: 6.02214076e23,
		description: "Number of constituent particles in one mole of substance.",
	},
}

// All returns every constant in declaration order.
func All() []Constant {
	all := make([]Constant, 0, count)
	for c := SpeedOfLight; c < count; c++ {
		all = append(all, c)
	}
	return all
}

// Valid reports whether c is one of the declared constants.
func (c Constant) Valid() bool {
	return c < count
}

// Value returns the exact SI value of the constant.
// Invalid constants yield NaN, which never compares equal to anything.
func (c Constant) Value() float64 {
	if !c.Valid() {
		return math.NaN()
	}
	return definitions[c].value
}

// Name returns the canonical identifier, e.g. "SpeedOfLight".
func (c Constant) Name() string {
	if !c.Valid() {
		return "Constant(" + strconv.Itoa(int(c)) + ")"
	}
	return definitions[c].name
}

// Symbol returns the conventional symbol, e.g. "k_B".
func (c Constant) Symbol() string {
	if !c.Valid() {
		return ""
	}
	return definitions[c].symbol
}

// Unit returns the SI unit the value is expressed in.
func (c Constant) Unit() string {
	if !c.Valid() {
		return ""
	}
	return definitions[c].unit
}

// Description returns a one-sentence explanation of the constant.
func (c Constant) Description() string {
	if !c.Valid() {
		return ""
	}
	return definitions[c].description
}

// FormatValue renders the value as the shortest decimal that round-trips to the same float64,
// with the exponent written plainly: 2.99792458e8 rather than 2.99792458e+08.
func (c Constant) FormatValue() string {
	return c.FormatDigits(-1)
}

// FormatDigits renders the value rounded to digits significant digits, or the shortest exact form when digits is negative.
func (c Constant) FormatDigits(digits int) string {
	formatted := strconv.FormatFloat(c.Value(), 'g', digits, 64)

	mantissa, exponent, ok := strings.Cut(formatted, "e")
	if !ok {
		return formatted
	}

	sign := ""
	switch exponent[0] {
	case '-':
		sign = "-"
		exponent = exponent[1:]
	case '+':
		exponent = exponent[1:]
	}

	return mantissa + "e" + sign + strings.TrimLeft(exponent, "0")
}

// Display returns "<PhysicalConstant.{name} = {value}>".
func (c Constant) Display() string {
	return "<PhysicalConstant." + c.Name() + " = " + c.FormatValue() + ">"
}

// String implements fmt.Stringer.
func (c Constant) String() string {
	return c.Display()
}

// GoString implements fmt.GoStringer. The formal and informal forms are the same.
func (c Constant) GoString() string {
	return c.Display()
}
