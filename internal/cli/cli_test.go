// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/convtool/conv/internal/convert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		cmd  Command
		args Args
	}{
		{"no args is help", nil, CmdHelp, Args{}},
		{"help word", []string{"help"}, CmdHelp, Args{}},
		{"help flag", []string{"--help"}, CmdHelp, Args{}},
		{"version word", []string{"version"}, CmdVersion, Args{}},
		{"version short flag", []string{"-v"}, CmdVersion, Args{}},
		{
			"defaults passes rest through",
			[]string{"defaults", "save", "mile"},
			CmdDefaults,
			Args{Rest: []string{"save", "mile"}},
		},
		{
			"quoted query",
			[]string{"10 km mi"},
			CmdConvert,
			Args{Query: "10 km mi"},
		},
		{
			"bare words rejoin into one query",
			[]string{"10", "km", "mi"},
			CmdConvert,
			Args{Query: "10 km mi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := Parse(tt.argv)
			require.Equal(t, tt.cmd, cmd)
			require.Equal(t, tt.args, args)
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", &UsageError{Message: "bad args"}, ExitUsageError},
		{"config", &ConfigError{Stage: "settings", Err: errors.New("locked")}, ExitConfigError},
		{"query", &convert.QueryError{Reason: convert.ReasonNoUnits}, ExitQueryError},
		{
			"wrapped query",
			fmt.Errorf("parse: %w", &convert.QueryError{Reason: convert.ReasonNoNumber}),
			ExitQueryError,
		},
		{"unknown unit", &convert.UnknownUnitError{Unit: "smoot"}, ExitQueryError},
		{"no destinations", convert.ErrNoDestinations, ExitQueryError},
		{"anything else", errors.New("disk on fire"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, exitCodeFor(tt.err))
		})
	}
}

func TestNormalizeDimensionality(t *testing.T) {
	require.Equal(t, "[length]", normalizeDimensionality("length"))
	require.Equal(t, "[length]", normalizeDimensionality("[length]"))
}
