// Package cliout provides structured output formatting for the rfcurl
// commands.
//
// # Features
//
//   - Multiple output formats (default human-readable, JSON and YAML)
//   - ANSI color support, disabled automatically when stdout is not a terminal
//   - Unicode symbols with ASCII fallbacks for legacy terminals
//   - Aligned labels and tables for decomposition results
//
// # Basic Usage
//
//	import "github.com/jongio/rfcurl/cliout"
//
//	cliout.Success("%s is a valid URL", raw)
//	cliout.Error("%s: %v", raw, err)
//	cliout.Label("Host", u.Host)
//
// # Output Formats
//
// Commands set the format once from the --output flag and then call Print,
// which picks the structured encoding or the human-readable formatter:
//
//	if err := cliout.SetFormat(output); err != nil {
//		return err
//	}
//	return cliout.Print(u, func() {
//		cliout.Label("Scheme", u.Scheme)
//	})
//
// # Colors
//
// Colors are disabled when stdout is not a terminal or the NO_COLOR
// environment variable is set. NoColor and ForceColor override detection.
package cliout
