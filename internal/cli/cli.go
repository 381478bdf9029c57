// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for conv.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdConvert Command = iota
	CmdDefaults
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Query is the raw conversion query ("10 km mi").
	Query string
	// Rest carries subcommand arguments (defaults save|delete|list ...).
	Rest []string
}

// Parse inspects os.Args and decides which command runs.
func Parse(argv []string) (Command, Args) {
	if len(argv) == 0 {
		return CmdHelp, Args{}
	}

	switch argv[0] {
	case "help", "--help", "-h":
		return CmdHelp, Args{}
	case "version", "--version", "-v":
		return CmdVersion, Args{}
	case "defaults":
		return CmdDefaults, Args{Rest: argv[1:]}
	}

	// Everything else is a query; multiple arguments are re-joined so both
	// `conv "10 km mi"` and `conv 10 km mi` work.
	return CmdConvert, Args{Query: strings.Join(argv, " ")}
}

// Run dispatches a parsed command and returns its exit code.
func Run(cmd Command, args Args) int {
	switch cmd {
	case CmdVersion:
		fmt.Printf("conv %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return ExitSuccess
	case CmdHelp:
		printUsage()
		return ExitSuccess
	case CmdDefaults:
		return exitCodeFor(runDefaults(args.Rest))
	case CmdConvert:
		return exitCodeFor(runConvert(args.Query))
	}
	return ExitGeneralError
}

func printUsage() {
	fmt.Print(`conv - convert units from the command line

Usage:
  conv "<quantity> <from> [to]"   convert a quantity
  conv defaults save <unit>...    save default destination units
  conv defaults delete <unit>...  delete saved defaults
  conv defaults list [dim]        show saved defaults
  conv version                    show version
  conv help                       show this help

Examples:
  conv "10 km mi"
  conv "3,120.5 usd eur"
  conv "cooking 2 cup ml"
  conv defaults save mile
`)
}

// warnf prints a non-fatal notice to stderr.
func warnf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", a...)
}
