// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"errors"
	"fmt"

	"github.com/convtool/conv/internal/units"
)

// Engine converts a parsed Input into Conversions, consulting the saved
// defaults when the query names no destination.
type Engine struct {
	registry Registry
	defaults DefaultSource
}

// NewEngine returns an engine over the given registry and defaults source.
func NewEngine(registry Registry, defaults DefaultSource) *Engine {
	return &Engine{registry: registry, defaults: defaults}
}

// Convert produces one Conversion per destination unit.
//
// With an explicit destination the result is exactly that one conversion,
// even when destination equals source. Without one, the saved defaults for
// the input's dimensionality are used in insertion order, with the source
// unit filtered out; an empty destination set fails with ErrNoDestinations.
// A destination that no longer resolves fails the whole call with
// *UnknownUnitError: no partial results.
func (e *Engine) Convert(in Input) ([]Conversion, error) {
	var dests []string
	if in.ToUnit != "" {
		dests = []string{in.ToUnit}
	} else {
		for _, u := range e.defaults.Defaults(in.Dimensionality) {
			if u != in.FromUnit {
				dests = append(dests, u)
			}
		}
	}
	if len(dests) == 0 {
		return nil, ErrNoDestinations
	}

	qty, err := e.registry.Quantity(in.Number, in.FromUnit)
	if err != nil {
		return nil, fmt.Errorf("source quantity: %w", err)
	}

	results := make([]Conversion, 0, len(dests))
	for _, dest := range dests {
		// Validate the destination on its own so a stale saved default is
		// reported as an unknown unit, not a conversion failure.
		one, err := e.registry.Quantity(1, dest)
		if err != nil {
			if errors.Is(err, units.ErrUndefinedUnit) {
				return nil, &UnknownUnitError{Unit: dest}
			}
			return nil, err
		}

		converted, err := e.registry.Convert(qty, dest)
		if err != nil {
			return nil, fmt.Errorf("convert %s to %s: %w", in.FromUnit, dest, err)
		}

		results = append(results, Conversion{
			FromNumber:     in.Number,
			FromUnit:       in.FromUnit,
			ToNumber:       converted.Magnitude,
			ToUnit:         one.Unit,
			Dimensionality: in.Dimensionality,
		})
	}
	return results, nil
}
