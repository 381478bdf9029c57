// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package units implements the unit registry: named units grouped by
// dimensionality, linear (and affine, for temperature) conversion between
// compatible units, a text grammar for defining new units at runtime, and
// activatable contexts that carry extra definitions.
package units

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUndefinedUnit is returned when a symbol resolves to no known unit.
	ErrUndefinedUnit = errors.New("undefined unit")
	// ErrIncompatible is returned when two units have different dimensionality.
	ErrIncompatible = errors.New("incompatible dimensionality")
	// ErrUnknownContext is returned by EnableContext for an unregistered context.
	ErrUnknownContext = errors.New("unknown context")
	// ErrAlreadyDefined is returned by Define when a name or alias is taken.
	ErrAlreadyDefined = errors.New("unit already defined")
	// ErrBadDefinition is returned by Define for unparseable definition strings.
	ErrBadDefinition = errors.New("malformed unit definition")
)

// =============================================================================
// QUANTITY
// =============================================================================

// Quantity is a magnitude bound to a canonical unit symbol and its
// dimensionality tag (e.g. "[length]"). Value type; never mutated.
type Quantity struct {
	Magnitude float64
	Unit      string
	Dimension string
}

func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.Magnitude, q.Unit)
}

// =============================================================================
// REGISTRY
// =============================================================================

// unit is one registered unit. Conversion goes through the dimensionality's
// base unit: base = magnitude*factor + offset. Offset is zero for everything
// except the affine temperature scales.
type unit struct {
	name   string
	dim    string
	factor float64
	offset float64
}

// Context is a named group of extra unit definitions that can be switched on
// per query (e.g. "cooking" adds cup/tbsp/tsp).
type Context struct {
	Name        string
	Definitions []string
}

// Registry holds all known units and contexts. Built once at startup and
// passed explicitly to the parser and engine; there is no package-level
// instance. Access is strictly sequential (one query at a time), so the
// registry carries no lock.
type Registry struct {
	units    map[string]*unit
	aliases  map[string]string
	contexts map[string]Context
	enabled  map[string]bool
}

// New returns a registry preloaded with the builtin unit table and contexts.
func New() *Registry {
	r := &Registry{
		units:    make(map[string]*unit),
		aliases:  make(map[string]string),
		contexts: make(map[string]Context),
		enabled:  make(map[string]bool),
	}
	r.loadBuiltins()
	return r
}

// resolve maps a symbol (canonical name or alias) to its unit.
func (r *Registry) resolve(symbol string) (*unit, bool) {
	if u, ok := r.units[symbol]; ok {
		return u, true
	}
	if name, ok := r.aliases[symbol]; ok {
		return r.units[name], true
	}
	return nil, false
}

// Defined reports whether symbol resolves to a unit.
func (r *Registry) Defined(symbol string) bool {
	_, ok := r.resolve(symbol)
	return ok
}

// Quantity binds a magnitude to a unit symbol, returning the quantity in the
// unit's canonical name. Fails with ErrUndefinedUnit for unknown symbols.
func (r *Registry) Quantity(magnitude float64, symbol string) (Quantity, error) {
	u, ok := r.resolve(symbol)
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %s", ErrUndefinedUnit, symbol)
	}
	return Quantity{Magnitude: magnitude, Unit: u.name, Dimension: u.dim}, nil
}

// Convert converts q to the target unit. The target must share q's
// dimensionality; otherwise ErrIncompatible is returned.
func (r *Registry) Convert(q Quantity, target string) (Quantity, error) {
	from, ok := r.resolve(q.Unit)
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %s", ErrUndefinedUnit, q.Unit)
	}
	to, ok := r.resolve(target)
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %s", ErrUndefinedUnit, target)
	}
	if from.dim != to.dim {
		return Quantity{}, fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)",
			ErrIncompatible, from.name, from.dim, to.name, to.dim)
	}

	base := q.Magnitude*from.factor + from.offset
	out := (base - to.offset) / to.factor
	return Quantity{Magnitude: out, Unit: to.name, Dimension: to.dim}, nil
}

// =============================================================================
// DEFINITIONS
// =============================================================================

// Define registers a unit from a definition string. Supported forms:
//
//	meter = [length] = m = metre     base unit for a new dimensionality
//	inch = 0.0254 meter = in         scaled unit
//	EUR = usd / 0.92 = eur           derived by division
//	fortnight = week * 2             derived by multiplication
//	klick = km                       plain alias unit
//
// Every segment after the second "=" adds an alias. Redefining an existing
// name or alias fails with ErrAlreadyDefined; startup code is expected to
// treat that as fatal, while currency registration checks Defined first.
func (r *Registry) Define(definition string) error {
	parts := strings.Split(definition, "=")
	if len(parts) < 2 {
		return fmt.Errorf("%w: %q", ErrBadDefinition, definition)
	}
	name := strings.TrimSpace(parts[0])
	expr := strings.TrimSpace(parts[1])
	if name == "" || expr == "" {
		return fmt.Errorf("%w: %q", ErrBadDefinition, definition)
	}

	u, err := r.parseExpr(name, expr)
	if err != nil {
		return err
	}
	if r.Defined(name) {
		return fmt.Errorf("%w: %s", ErrAlreadyDefined, name)
	}

	var aliases []string
	for _, a := range parts[2:] {
		a = strings.TrimSpace(a)
		if a == "" {
			return fmt.Errorf("%w: empty alias in %q", ErrBadDefinition, definition)
		}
		if r.Defined(a) {
			return fmt.Errorf("%w: alias %s", ErrAlreadyDefined, a)
		}
		aliases = append(aliases, a)
	}

	r.units[name] = u
	for _, a := range aliases {
		r.aliases[a] = name
	}
	return nil
}

// parseExpr parses the right-hand side of a definition.
func (r *Registry) parseExpr(name, expr string) (*unit, error) {
	// Base unit: "[length]"
	if strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]") {
		return &unit{name: name, dim: expr, factor: 1}, nil
	}

	fields := strings.Fields(expr)
	switch len(fields) {
	case 1:
		// Plain reference: "klick = km"
		ref, ok := r.resolve(fields[0])
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedUnit, fields[0])
		}
		return &unit{name: name, dim: ref.dim, factor: ref.factor, offset: ref.offset}, nil

	case 2:
		// Scaled reference: "0.0254 meter"
		scale, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad scale in %q", ErrBadDefinition, expr)
		}
		ref, ok := r.resolve(fields[1])
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedUnit, fields[1])
		}
		if ref.offset != 0 {
			return nil, fmt.Errorf("%w: cannot scale affine unit %s", ErrBadDefinition, ref.name)
		}
		return &unit{name: name, dim: ref.dim, factor: scale * ref.factor}, nil

	case 3:
		// Derived: "usd / 0.92" or "week * 2"
		ref, ok := r.resolve(fields[0])
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedUnit, fields[0])
		}
		if ref.offset != 0 {
			return nil, fmt.Errorf("%w: cannot scale affine unit %s", ErrBadDefinition, ref.name)
		}
		n, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad operand in %q", ErrBadDefinition, expr)
		}
		switch fields[1] {
		case "/":
			if n == 0 {
				return nil, fmt.Errorf("%w: division by zero in %q", ErrBadDefinition, expr)
			}
			return &unit{name: name, dim: ref.dim, factor: ref.factor / n}, nil
		case "*":
			return &unit{name: name, dim: ref.dim, factor: ref.factor * n}, nil
		}
		return nil, fmt.Errorf("%w: unknown operator %q", ErrBadDefinition, fields[1])
	}

	return nil, fmt.Errorf("%w: %q", ErrBadDefinition, expr)
}

// defineAffine registers a unit with an offset relative to its dimensionality
// base. Only reachable from the builtin table; the definition grammar has no
// offset syntax.
func (r *Registry) defineAffine(name, dim string, factor, offset float64, aliases ...string) {
	r.units[name] = &unit{name: name, dim: dim, factor: factor, offset: offset}
	for _, a := range aliases {
		r.aliases[a] = name
	}
}

// LoadDefinitionsFile reads a definitions file: one definition per line,
// blank lines and lines starting with "#" ignored. Any bad line aborts the
// load with the file position attached.
func (r *Registry) LoadDefinitionsFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open definitions: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := r.Define(line); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read definitions: %w", err)
	}
	return nil
}

// =============================================================================
// CONTEXTS
// =============================================================================

// RegisterContext adds a context to the registry without enabling it.
func (r *Registry) RegisterContext(ctx Context) {
	r.contexts[ctx.Name] = ctx
}

// EnableContext activates a named context, loading its definitions into the
// registry. Enabling the same context twice is a no-op. An unregistered name
// fails with ErrUnknownContext.
func (r *Registry) EnableContext(name string) error {
	ctx, ok := r.contexts[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownContext, name)
	}
	if r.enabled[name] {
		return nil
	}
	for _, def := range ctx.Definitions {
		if err := r.Define(def); err != nil {
			return fmt.Errorf("context %s: %w", name, err)
		}
	}
	r.enabled[name] = true
	return nil
}
