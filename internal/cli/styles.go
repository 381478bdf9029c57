// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for all CLI commands in conv.
//
// Colors are handled by lipgloss, which respects NO_COLOR and disables
// styling on non-TTY output.
package cli

import "github.com/charmbracelet/lipgloss"

var (
	// resultStyle renders converted values.
	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")) // Green

	// labelStyle renders the echoed source quantity.
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Off-white

	// dimStyle renders hints and recoverable query errors.
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray

	// errorStyle renders hard failures.
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")) // Red
)
