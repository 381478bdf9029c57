// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convert turns free-text conversion queries into conversion results.
//
// A query is a quantity, an optional context prefix, a source unit, and an
// optional destination unit, e.g. "10 km mi", "3,120.5 usd eur" or
// "cooking 2 cup ml".
//
// # Key Types
//
//   - Parser: tokenizes a raw query into an Input
//   - Engine: converts an Input into one or more Conversions
//   - Input: parsed query (immutable)
//   - Conversion: one converted result (immutable)
//   - QueryError: structured parse failure with a reason and offending token
//
// # Usage
//
// Parse then convert:
//
//	parser := convert.NewParser(registry, ".", ",")
//	engine := convert.NewEngine(registry, store)
//
//	input, err := parser.Parse("10 km mi")
//	if err != nil { ... }
//	results, err := engine.Convert(input)
//
// Both stages consume the unit registry through the Registry interface; the
// registry instance is constructed at startup and passed in explicitly.
package convert
