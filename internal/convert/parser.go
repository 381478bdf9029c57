// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"errors"
	"strconv"
	"strings"

	"github.com/convtool/conv/internal/units"
)

// Parser tokenizes raw queries. The separator characters come from user
// configuration and are trusted as configured; no cross-validation against
// the other separator is attempted.
type Parser struct {
	registry     Registry
	decimalSep   rune
	thousandsSep rune // 0 disables grouping in queries
}

// NewParser returns a parser using the given registry and separator
// characters. Separators must be single characters; thousandsSep may be
// empty.
func NewParser(registry Registry, decimalSep, thousandsSep string) *Parser {
	p := &Parser{registry: registry, decimalSep: '.'}
	if decimalSep != "" {
		p.decimalSep = []rune(decimalSep)[0]
	}
	if thousandsSep != "" {
		p.thousandsSep = []rune(thousandsSep)[0]
	}
	return p
}

// Parse parses a query in three stages: context prefix, quantity, unit tail.
// Each stage consumes from the left; there is no backtracking across stage
// boundaries. Failures are *QueryError values with distinct reasons.
func (p *Parser) Parse(query string) (Input, error) {
	ctx, rest, err := p.parseContext(query)
	if err != nil {
		return Input{}, err
	}

	qty, tail, matched := p.parseQuantity(rest)
	if !matched {
		if ctx != "" {
			return Input{}, &QueryError{Reason: ReasonNoQuantity}
		}
		return Input{}, &QueryError{Reason: ReasonNoNumber}
	}

	if tail == "" {
		return Input{}, &QueryError{Reason: ReasonNoUnits}
	}

	from, to, err := p.parseUnits(tail, qty)
	if err != nil {
		return Input{}, err
	}

	in := Input{
		Number:         from.Magnitude,
		Dimensionality: from.Dimension,
		FromUnit:       from.Unit,
		Context:        ctx,
	}
	if to != nil {
		in.ToUnit = to.Unit
	}
	return in, nil
}

// parseContext consumes a maximal leading run of lowercase ASCII letters and
// activates it as a registry context. No run means no context.
func (p *Parser) parseContext(query string) (string, string, error) {
	n := 0
	for n < len(query) && query[n] >= 'a' && query[n] <= 'z' {
		n++
	}
	if n == 0 {
		return "", query, nil
	}

	ctx := query[:n]
	if err := p.registry.EnableContext(ctx); err != nil {
		if errors.Is(err, units.ErrUnknownContext) {
			return "", "", &QueryError{Reason: ReasonUnknownContext, Token: ctx}
		}
		return "", "", err
	}
	return ctx, strings.TrimSpace(query[n:]), nil
}

// parseQuantity scans quantity characters from the left: digits, signs and
// the configured separators. A sign or thousands separator keeps the scan
// alive without adding a digit; the decimal separator becomes a literal
// point. Returns matched=false when zero characters were recognized.
func (p *Parser) parseQuantity(query string) (float64, string, bool) {
	var buf strings.Builder
	n := 0

scan:
	for _, r := range query {
		switch {
		case r >= '0' && r <= '9' || r == '+' || r == '-':
			buf.WriteRune(r)
		case p.thousandsSep != 0 && r == p.thousandsSep:
			// Grouping only; contributes nothing to the magnitude.
		case r == p.decimalSep:
			buf.WriteByte('.')
		default:
			break scan
		}
		n += len(string(r))
	}

	if n == 0 {
		return 0, "", false
	}

	tail := strings.TrimSpace(query[n:])
	qty, err := strconv.ParseFloat(buf.String(), 64)
	if err != nil {
		// Quantity characters matched but form no number ("+", "--", "," ...).
		return 0, "", false
	}
	return qty, tail, true
}

// parseUnits splits the unit tail into a source and optional destination
// symbol and validates both against the registry.
func (p *Parser) parseUnits(tail string, qty float64) (units.Quantity, *units.Quantity, error) {
	tokens := strings.Fields(tail)
	if len(tokens) > 2 {
		return units.Quantity{}, nil, &QueryError{Reason: ReasonTooManyUnits}
	}

	from, err := p.registry.Quantity(qty, tokens[0])
	if err != nil {
		if errors.Is(err, units.ErrUndefinedUnit) {
			return units.Quantity{}, nil, &QueryError{Reason: ReasonUnknownUnit, Token: tokens[0]}
		}
		return units.Quantity{}, nil, err
	}

	if len(tokens) == 1 {
		return from, nil, nil
	}

	to, err := p.registry.Quantity(1, tokens[1])
	if err != nil {
		if errors.Is(err, units.ErrUndefinedUnit) {
			return units.Quantity{}, nil, &QueryError{Reason: ReasonUnknownUnit, Token: tokens[1]}
		}
		return units.Quantity{}, nil, err
	}
	return from, &to, nil
}
