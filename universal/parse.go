package universal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownConstant is returned by Parse when no constant matches.
var ErrUnknownConstant = errors.New("unknown constant")

// Names returns the canonical names of all constants in declaration order.
func Names() []string {
	names := make([]string, 0, count)
	for _, c := range All() {
		names = append(names, c.Name())
	}
	return names
}

// Parse resolves a canonical name or symbol, falling back to a case-insensitive match of either.
// No two symbols collide once case-folded.
func Parse(s string) (Constant, error) {
	for _, c := range All() {
		if s == c.Name() || s == c.Symbol() {
			return c, nil
		}
	}

	for _, c := range All() {
		if strings.EqualFold(s, c.Name()) || strings.EqualFold(s, c.Symbol()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownConstant, s)
}

// MarshalText encodes the constant as its canonical name.
func (c Constant) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("marshal %s: %w", c.Name(), ErrUnknownConstant)
	}
	return []byte(c.Name()), nil
}

// UnmarshalText decodes a canonical name or symbol.
func (c *Constant) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Record is the structured view of a constant used for machine-readable output.
type Record struct {
	// Name is the canonical identifier.
	Name string `json:"name" jsonschema:"enum=SpeedOfLight,enum=PlanckConstant,enum=ElementaryCharge,enum=BoltzmannConstant,enum=AvogadroConstant"`
	// Symbol is the conventional symbol.
	Symbol string `json:"symbol"`
	// Value is the exact SI value.
	Value float64 `json:"value"`
	// Unit is the SI unit of Value.
	Unit string `json:"unit"`
	// Display is the human-readable representation.
	Display string `json:"display"`
	// Description explains what the constant measures.
	Description string `json:"description"`
}

// Record returns the structured view of c.
func (c Constant) Record() Record {
	return Record{
		Name:        c.Name(),
		Symbol:      c.Symbol(),
		Value:       c.Value(),
		Unit:        c.Unit(),
		Display:     c.Display(),
		Description: c.Description(),
	}
}
