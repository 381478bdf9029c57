// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// defaults_cmd.go - The conv defaults subcommands: save, delete, list.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/convtool/conv/internal/units"
)

const defaultsUsage = "usage: conv defaults save <unit>... | delete <unit>... | list [dimensionality]"

// runDefaults handles conv defaults save|delete|list.
func runDefaults(args []string) error {
	if len(args) == 0 {
		return &UsageError{Message: defaultsUsage}
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	sub, rest := args[0], args[1:]
	switch sub {
	case "save":
		return saveDefaults(a, rest)
	case "delete":
		return deleteDefaults(a, rest)
	case "list":
		return listDefaults(a, rest)
	default:
		return &UsageError{Message: fmt.Sprintf("unknown defaults subcommand %q\n%s", sub, defaultsUsage)}
	}
}

// saveDefaults adds each named unit to the defaults for its own
// dimensionality. Units are stored under their canonical symbol so saved
// aliases ("metres") and the parser's output ("meter") always agree.
func saveDefaults(a *app, unitNames []string) error {
	if len(unitNames) == 0 {
		return &UsageError{Message: defaultsUsage}
	}
	for _, name := range unitNames {
		q, err := a.registry.Quantity(1, name)
		if err != nil {
			if errors.Is(err, units.ErrUndefinedUnit) {
				return &UsageError{Message: fmt.Sprintf("unknown unit: %s", name)}
			}
			return err
		}
		if err := a.store.Add(q.Dimension, q.Unit); err != nil {
			return err
		}
		fmt.Printf("saved %s as a default %s unit\n", q.Unit, strings.Trim(q.Dimension, "[]"))
	}
	return nil
}

// deleteDefaults removes each named unit. A unit the registry still knows is
// removed from its own dimensionality; one it no longer knows (a stale saved
// default from a deleted custom definition) is removed from every
// dimensionality it appears under.
func deleteDefaults(a *app, unitNames []string) error {
	if len(unitNames) == 0 {
		return &UsageError{Message: defaultsUsage}
	}
	for _, name := range unitNames {
		q, err := a.registry.Quantity(1, name)
		switch {
		case err == nil:
			if err := a.store.Remove(q.Dimension, q.Unit); err != nil {
				return err
			}
		case errors.Is(err, units.ErrUndefinedUnit):
			for _, dim := range a.store.Dimensionalities() {
				if a.store.IsDefault(dim, name) {
					if err := a.store.Remove(dim, name); err != nil {
						return err
					}
				}
			}
		default:
			return err
		}
		fmt.Printf("deleted default unit %s\n", name)
	}
	return nil
}

// listDefaults prints saved defaults, either for one dimensionality or for
// all of them.
func listDefaults(a *app, args []string) error {
	if len(args) > 1 {
		return &UsageError{Message: defaultsUsage}
	}

	dims := a.store.Dimensionalities()
	if len(args) == 1 {
		dims = []string{normalizeDimensionality(args[0])}
	}

	if len(dims) == 0 {
		fmt.Println(dimStyle.Render("no default units saved"))
		return nil
	}

	for _, dim := range dims {
		saved := a.store.Defaults(dim)
		if len(saved) == 0 {
			fmt.Printf("%s  %s\n", labelStyle.Render(dim), dimStyle.Render("(none)"))
			continue
		}
		fmt.Printf("%s  %s\n", labelStyle.Render(dim), strings.Join(saved, ", "))
	}
	return nil
}

// normalizeDimensionality lets users write "length" for "[length]".
func normalizeDimensionality(s string) string {
	if strings.HasPrefix(s, "[") {
		return s
	}
	return "[" + s + "]"
}
