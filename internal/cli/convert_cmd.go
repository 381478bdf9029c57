// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// convert_cmd.go - The conv "<query>" command: parse, convert, print.
package cli

import (
	"fmt"
	"strings"
)

// runConvert handles the main query path: conv "10 km mi".
func runConvert(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return &UsageError{Message: `no query given; try conv "10 km mi"`}
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	in, err := a.parser.Parse(query)
	if err != nil {
		return err
	}

	results, err := a.engine.Convert(in)
	if err != nil {
		return err
	}

	for _, c := range results {
		f := a.formatterFor(c)
		from := f.FormatNoThousands(c.FromNumber, c.FromUnit)
		to := f.Format(c.ToNumber, c.ToUnit)
		fmt.Printf("%s = %s\n", labelStyle.Render(from), resultStyle.Render(to))
	}
	return nil
}
