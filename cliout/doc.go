// Package cliout provides structured output formatting for the urlprefix
// command line with two output formats: human-readable text and JSON.
//
// # Basic Usage
//
//	import "github.com/jongio/urlprefix/cliout"
//
//	cliout.Success("Built %s", p)
//	cliout.Error("Invalid host: %s", err)
//	cliout.Label("Protocol", "https")
//
// # Output Formats
//
// The package supports two output formats:
//   - default: Human-readable text with colors and Unicode symbols
//   - json: Structured JSON output for automation and scripting
//
// Set the output format using SetFormat:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    return err
//	}
//
// # Hybrid Output
//
// Print takes both the JSON payload and a formatter for the default format:
//
//	err := cliout.Print(result, func() {
//	    cliout.Label("Prefix", result.Prefix)
//	})
//
// # Color
//
// ANSI colors are emitted only when stdout is a terminal and NO_COLOR is
// unset. NoColor and ForceColor override the detection.
//
// # Tables
//
//	headers := []string{"Name", "Prefix"}
//	rows := []cliout.TableRow{
//	    {"Name": "site", "Prefix": "https://magiclen.org"},
//	}
//	cliout.Table(headers, rows)
//
// All output goes to stdout.
package cliout
