// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package currency registers fiat currencies as synthetic units. Exchange
// rates come from an external source (not implemented here) and are cached
// on disk between runs; all rates are expressed relative to the US dollar.
package currency

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/convtool/conv/internal/units"
)

// baseDefinition anchors the currency dimensionality. Every rate is defined
// relative to it.
const baseDefinition = "USD = [currency] = usd"

// Source produces a currencyCode -> rate-relative-to-USD mapping. Fetching,
// timeouts and retries are the implementation's concern.
type Source interface {
	Rates(ctx context.Context) (map[string]float64, error)
}

// RegisterRates defines one synthetic unit per currency code in the
// registry. Codes whose symbol is already defined are skipped with a note on
// stderr rather than failing, so a custom unit named like a currency wins.
// A lowercase alias is added only when the lowercase form is still free.
func RegisterRates(reg *units.Registry, rates map[string]float64) error {
	if err := reg.Define(baseDefinition); err != nil {
		return fmt.Errorf("define base currency: %w", err)
	}

	// Map order is random; register deterministically.
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		if reg.Defined(code) {
			fmt.Fprintf(os.Stderr, "skipping currency %s: unit is already defined\n", code)
			continue
		}

		definition := code + " = usd / " + strconv.FormatFloat(rates[code], 'f', -1, 64)
		if lower := strings.ToLower(code); lower != code && !reg.Defined(lower) {
			definition += " = " + lower
		}
		if err := reg.Define(definition); err != nil {
			return fmt.Errorf("register currency %s: %w", code, err)
		}
	}
	return nil
}
