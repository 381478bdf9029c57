// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for all CLI commands in conv.
//
// STANDARDIZED PATTERN:
//   - ALWAYS return errors (never just print and return nil)
//   - Let the caller decide how to display errors
//   - Use structured error types for better error handling
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/convtool/conv/internal/convert"
)

// =============================================================================
// EXIT CODES - Specific codes for different error categories
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitQueryError indicates a query the parser or engine rejected
	ExitQueryError = 4
)

// UsageError represents invalid command-line usage.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// ConfigError wraps startup failures: bad config, unreadable settings store,
// malformed unit definitions.
type ConfigError struct {
	Stage string // what was being set up ("config", "settings", "units")
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// exitCodeFor prints err (when non-nil) and maps it to an exit code. Query
// failures are expected and rendered compactly; anything else is an error
// line.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(os.Stderr, errorStyle.Render(usage.Message))
		return ExitUsageError
	}

	var cfg *ConfigError
	if errors.As(err, &cfg) {
		fmt.Fprintln(os.Stderr, errorStyle.Render("conv: "+cfg.Error()))
		return ExitConfigError
	}

	var qerr *convert.QueryError
	var uerr *convert.UnknownUnitError
	if errors.As(err, &qerr) || errors.As(err, &uerr) || errors.Is(err, convert.ErrNoDestinations) {
		fmt.Fprintln(os.Stderr, dimStyle.Render(err.Error()))
		return ExitQueryError
	}

	fmt.Fprintln(os.Stderr, errorStyle.Render("conv: "+err.Error()))
	return ExitGeneralError
}
