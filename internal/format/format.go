// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package format renders conversion results as display strings with
// user-configured separators and adaptive precision.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Placeholder tokens for the two-step separator swap. Swapping through
// placeholders keeps a thousands separator of "." from colliding with the
// machine decimal point (and vice versa).
const (
	commaToken = "||comma||"
	pointToken = "||point||"
)

// Formatter formats numbers for display. Construct once from configuration;
// fields are read-only afterwards.
type Formatter struct {
	// DecimalPlaces is the floor for fractional digits.
	DecimalPlaces int
	// DecimalSeparator replaces the machine decimal point.
	DecimalSeparator string
	// ThousandsSeparator groups the integer part; empty disables grouping.
	ThousandsSeparator string
	// DynamicDecimals expands precision until a significant digit shows.
	DynamicDecimals bool
}

// New returns a Formatter with the given settings.
func New(decimalPlaces int, decimalSep, thousandsSep string, dynamic bool) *Formatter {
	return &Formatter{
		DecimalPlaces:      decimalPlaces,
		DecimalSeparator:   decimalSep,
		ThousandsSeparator: thousandsSep,
		DynamicDecimals:    dynamic,
	}
}

// places picks the number of fractional digits for n.
//
// With dynamic decimals on, precision grows from the configured floor until
// n's first significant digit is visible (n * 10^p >= 10), bounded at
// max(floor, 10)+1 iterations; trailing zeros of the scaled value then shrink
// it back, never below the floor. The bound and the trim interact, so the
// shape of this code is deliberately literal.
func (f *Formatter) places(n float64) int {
	if !f.DynamicDecimals || n == 0 {
		return f.DecimalPlaces
	}

	m := f.DecimalPlaces
	if m < 10 {
		m = 10
	}
	m++

	p := f.DecimalPlaces
	var scaled float64
	for p < m {
		e := math.Pow(10, float64(p))
		scaled = n * e
		if scaled >= 10 {
			break
		}
		p++
	}

	// Trim trailing zeros of the scaled value's fraction. The scaled value is
	// rendered in shortest round-trip form with an explicit ".0" on integral
	// values, which the trim counts as one removable zero.
	if a := math.Abs(scaled); a >= 1e16 || (a != 0 && a < 1e-4) {
		// Exponent-form territory: no fractional digits to trim.
		return p
	}
	s := strconv.FormatFloat(scaled, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	frac := s[strings.IndexByte(s, '.')+1:]
	for strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
		p--
	}
	if p < f.DecimalPlaces {
		p = f.DecimalPlaces
	}
	return p
}

// Format renders n with thousands grouping (when configured) and the
// configured separators, appending " unit" when unit is non-empty.
func (f *Formatter) Format(n float64, unit string) string {
	num := strconv.FormatFloat(n, 'f', f.places(n), 64)
	if f.ThousandsSeparator != "" {
		num = groupThousands(num)
	}
	num = swapSeparators(num, f.ThousandsSeparator, f.DecimalSeparator)
	if unit != "" {
		num += " " + unit
	}
	return num
}

// FormatNoThousands renders n without digit grouping, for compact contexts.
func (f *Formatter) FormatNoThousands(n float64, unit string) string {
	num := strconv.FormatFloat(n, 'f', f.places(n), 64)
	num = swapSeparators(num, "", f.DecimalSeparator)
	if unit != "" {
		num += " " + unit
	}
	return num
}

// swapSeparators replaces the machine "," and "." with the configured
// separators via placeholders, so either configured character may itself be
// "," or ".".
func swapSeparators(num, thousands, decimal string) string {
	num = strings.ReplaceAll(num, ",", commaToken)
	num = strings.ReplaceAll(num, ".", pointToken)
	num = strings.ReplaceAll(num, commaToken, thousands)
	num = strings.ReplaceAll(num, pointToken, decimal)
	return num
}

// groupThousands inserts machine "," separators into the integer part of a
// fixed-point number string.
func groupThousands(num string) string {
	intPart := num
	rest := ""
	if dot := strings.IndexByte(num, '.'); dot >= 0 {
		intPart, rest = num[:dot], num[dot:]
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") || strings.HasPrefix(intPart, "+") {
		sign, intPart = intPart[:1], intPart[1:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + rest
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + rest
}
