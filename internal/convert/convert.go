// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"fmt"

	"github.com/convtool/conv/internal/units"
)

// Registry is the slice of unit-registry capability the parser and engine
// consume. *units.Registry satisfies it; tests substitute doubles.
type Registry interface {
	// Quantity binds a magnitude to a unit symbol, failing with
	// units.ErrUndefinedUnit for unknown symbols.
	Quantity(magnitude float64, symbol string) (units.Quantity, error)
	// Convert converts q to the target unit, dimensionality-checked.
	Convert(q units.Quantity, target string) (units.Quantity, error)
	// EnableContext activates a named context, failing with
	// units.ErrUnknownContext for unknown names.
	EnableContext(name string) error
}

// DefaultSource supplies saved destination units per dimensionality.
type DefaultSource interface {
	Defaults(dimensionality string) []string
}

// Input is a parsed query. Immutable once built by Parser.Parse.
type Input struct {
	// Number is the quantity's magnitude.
	Number float64
	// Dimensionality is the source unit's dimensionality tag, e.g. "[length]".
	Dimensionality string
	// FromUnit is the canonical source unit symbol.
	FromUnit string
	// ToUnit is the canonical destination symbol; empty when the query names
	// none.
	ToUnit string
	// Context is the activated context prefix; empty when none was given.
	Context string
}

func (i Input) String() string {
	return fmt.Sprintf("Input(number=%g, dimensionality=%s, from=%s, to=%s)",
		i.Number, i.Dimensionality, i.FromUnit, i.ToUnit)
}

// Conversion is one converted result. Its Dimensionality always equals that
// of the Input it came from, and ToUnit is always compatible with FromUnit
// (the registry refuses anything else).
type Conversion struct {
	FromNumber     float64
	FromUnit       string
	ToNumber       float64
	ToUnit         string
	Dimensionality string
}

// IsCurrency reports whether the result is a currency amount; currency
// results are formatted with their own decimal-place floor.
func (c Conversion) IsCurrency() bool {
	return c.Dimensionality == "[currency]"
}

func (c Conversion) String() string {
	return fmt.Sprintf("%f %s = %f %s %s",
		c.FromNumber, c.FromUnit, c.ToNumber, c.ToUnit, c.Dimensionality)
}
