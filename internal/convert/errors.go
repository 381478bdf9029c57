// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import "errors"

// =============================================================================
// QUERY ERRORS
// =============================================================================

// Reason classifies why a query failed to parse.
type Reason int

const (
	// ReasonNoNumber: the query has no context and does not start with a
	// quantity.
	ReasonNoNumber Reason = iota
	// ReasonNoQuantity: a context prefix was given but no quantity follows.
	ReasonNoQuantity
	// ReasonNoUnits: a quantity with nothing after it.
	ReasonNoUnits
	// ReasonTooManyUnits: more than two unit tokens.
	ReasonTooManyUnits
	// ReasonUnknownUnit: a unit token the registry does not recognize.
	ReasonUnknownUnit
	// ReasonUnknownContext: a context prefix the registry does not recognize.
	ReasonUnknownContext
)

// QueryError is a parse failure. Token carries the offending unit or context
// where applicable. Query errors are recoverable: the front end shows the
// message and moves on, and the parser guarantees it has not mutated the
// defaults store.
type QueryError struct {
	Reason Reason
	Token  string
}

func (e *QueryError) Error() string {
	switch e.Reason {
	case ReasonNoNumber:
		return "start your query with a number"
	case ReasonNoQuantity:
		return "no quantity"
	case ReasonNoUnits:
		return "no units specified"
	case ReasonTooManyUnits:
		return "more than 2 units specified"
	case ReasonUnknownUnit:
		return "unknown unit: " + e.Token
	case ReasonUnknownContext:
		return "unknown context: " + e.Token
	}
	return "invalid query"
}

// =============================================================================
// ENGINE ERRORS
// =============================================================================

// ErrNoDestinations is returned by Engine.Convert when the query names no
// destination unit and no defaults are saved for the dimensionality.
var ErrNoDestinations = errors.New("no destination units")

// UnknownUnitError is returned by Engine.Convert when a saved default unit no
// longer resolves in the registry (e.g. a custom definition was removed).
type UnknownUnitError struct {
	Unit string
}

func (e *UnknownUnitError) Error() string {
	return "unknown unit: " + e.Unit
}
