// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/convtool/conv/internal/units"
)

func newTestParser(t *testing.T, decimalSep, thousandsSep string) *Parser {
	t.Helper()
	return NewParser(units.New(), decimalSep, thousandsSep)
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Input
	}{
		{
			name:  "from and to units",
			query: "10 km mi",
			want: Input{
				Number:         10,
				Dimensionality: "[length]",
				FromUnit:       "kilometer",
				ToUnit:         "mile",
			},
		},
		{
			name:  "from unit only",
			query: "10 km",
			want: Input{
				Number:         10,
				Dimensionality: "[length]",
				FromUnit:       "kilometer",
			},
		},
		{
			name:  "leading plus sign",
			query: "+5 km mi",
			want: Input{
				Number:         5,
				Dimensionality: "[length]",
				FromUnit:       "kilometer",
				ToUnit:         "mile",
			},
		},
		{
			name:  "negative quantity",
			query: "-12.5 degC degF",
			want: Input{
				Number:         -12.5,
				Dimensionality: "[temperature]",
				FromUnit:       "celsius",
				ToUnit:         "fahrenheit",
			},
		},
		{
			name:  "no space before unit",
			query: "10km mi",
			want: Input{
				Number:         10,
				Dimensionality: "[length]",
				FromUnit:       "kilometer",
				ToUnit:         "mile",
			},
		},
		{
			name:  "thousands separator ignored",
			query: "1,234.5 m ft",
			want: Input{
				Number:         1234.5,
				Dimensionality: "[length]",
				FromUnit:       "meter",
				ToUnit:         "foot",
			},
		},
		{
			name:  "context prefix",
			query: "cooking 2 cup ml",
			want: Input{
				Number:         2,
				Dimensionality: "[volume]",
				FromUnit:       "cup",
				ToUnit:         "milliliter",
				Context:        "cooking",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, ".", ",")
			got, err := p.Parse(tt.query)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParser_EuropeanSeparators(t *testing.T) {
	p := newTestParser(t, ",", ".")

	got, err := p.Parse("1.234,5 m cm")
	require.NoError(t, err)
	require.Equal(t, 1234.5, got.Number)
	require.Equal(t, "meter", got.FromUnit)
	require.Equal(t, "centimeter", got.ToUnit)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantReason Reason
		wantToken  string
	}{
		{
			name:       "no leading number",
			query:      "km mi",
			wantReason: ReasonUnknownContext, // lowercase run is taken as a context
			wantToken:  "km",
		},
		{
			name:       "starts with symbol",
			query:      "?10 km",
			wantReason: ReasonNoNumber,
		},
		{
			name:       "sign without digits",
			query:      "+ km",
			wantReason: ReasonNoNumber,
		},
		{
			name:       "context without quantity",
			query:      "cooking cup",
			wantReason: ReasonNoQuantity,
		},
		{
			name:       "quantity without units",
			query:      "10",
			wantReason: ReasonNoUnits,
		},
		{
			name:       "three units",
			query:      "10 km mi ft",
			wantReason: ReasonTooManyUnits,
		},
		{
			name:       "unknown source unit",
			query:      "10 flibbits",
			wantReason: ReasonUnknownUnit,
			wantToken:  "flibbits",
		},
		{
			name:       "unknown destination unit",
			query:      "10 km flibbits",
			wantReason: ReasonUnknownUnit,
			wantToken:  "flibbits",
		},
		{
			name:       "unknown context truncated at first digit",
			query:      "xyz123abc 2 m",
			wantReason: ReasonUnknownContext,
			wantToken:  "xyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, ".", ",")
			_, err := p.Parse(tt.query)
			require.Error(t, err)

			var qerr *QueryError
			require.ErrorAs(t, err, &qerr)
			require.Equal(t, tt.wantReason, qerr.Reason)
			require.Equal(t, tt.wantToken, qerr.Token)
		})
	}
}

func TestParser_ErrorMessagesDiffer(t *testing.T) {
	p := newTestParser(t, ".", ",")

	_, plain := p.Parse("?")
	_, withCtx := p.Parse("cooking cup")
	require.EqualError(t, plain, "start your query with a number")
	require.EqualError(t, withCtx, "no quantity")
}
