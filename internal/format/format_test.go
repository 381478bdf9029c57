// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		name      string
		formatter *Formatter
		n         float64
		unit      string
		want      string
	}{
		{
			name:      "plain two places",
			formatter: New(2, ".", "", false),
			n:         3.14159,
			want:      "3.14",
		},
		{
			name:      "unit appended",
			formatter: New(2, ".", "", false),
			n:         3.14159,
			unit:      "km",
			want:      "3.14 km",
		},
		{
			name:      "european separators with grouping",
			formatter: New(2, ",", ".", false),
			n:         1234.5,
			want:      "1.234,50",
		},
		{
			name:      "machine separators with grouping",
			formatter: New(2, ".", ",", false),
			n:         1234567.891,
			want:      "1,234,567.89",
		},
		{
			name:      "negative grouped",
			formatter: New(2, ".", ",", false),
			n:         -98765.4,
			want:      "-98,765.40",
		},
		{
			name:      "grouping disabled",
			formatter: New(2, ".", "", false),
			n:         1234567.891,
			want:      "1234567.89",
		},
		{
			name:      "zero decimal places",
			formatter: New(0, ".", ",", false),
			n:         1234.5,
			want:      "1,234", // round-half-even at 0 places
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.formatter.Format(tt.n, tt.unit))
		})
	}
}

func TestFormatter_DynamicDecimals(t *testing.T) {
	f := New(2, ".", "", true)

	tests := []struct {
		n    float64
		want string
	}{
		{1234.5, "1234.50"},   // big enough: floor applies
		{0.5, "0.50"},         // trim clamps back to the floor
		{0.00123, "0.0012"},   // expands until a significant digit shows
		{0.005, "0.005"},      // trailing zero of scaled value trimmed
		{0.0000001234, "0.00000012"},
		{0, "0.00"}, // zero never expands
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, f.Format(tt.n, ""), "n=%v", tt.n)
	}
}

func TestFormatter_DynamicZeroUsesFloor(t *testing.T) {
	for _, dp := range []int{0, 2, 5} {
		f := New(dp, ".", ",", true)
		got := f.Format(0, "")
		want := "0"
		if dp > 0 {
			want = "0."
			for i := 0; i < dp; i++ {
				want += "0"
			}
		}
		require.Equal(t, want, got, "decimal places %d", dp)
	}
}

func TestFormatter_FormatNoThousands(t *testing.T) {
	f := New(2, ",", ".", false)
	require.Equal(t, "1234567,89", f.FormatNoThousands(1234567.891, ""))
	require.Equal(t, "12,00 EUR", f.FormatNoThousands(12.0, "EUR"))
}

func TestFormatter_SeparatorSwapDoesNotCorrupt(t *testing.T) {
	// Thousands "." and decimal "," must not feed each other's substitution.
	f := New(2, ",", ".", false)
	require.Equal(t, "1.234.567,89", f.Format(1234567.891, ""))
}
