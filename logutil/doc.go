// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// The prefix and hostcheck packages are pure and never log. The packages
// around them (config loading, the CLI, and the MCP server) log through
// this package so that a single --debug flag or environment variable
// controls all of them.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("built prefix", "prefix", p)
//	logutil.Info("loaded endpoints", "count", n)
//	logutil.Warn("port ignored", "endpoint", name)
//	logutil.Error("config load failed", "error", err)
//
// # Component Loggers
//
// NewLogger returns a logger that tags every record with a component name:
//
//	log := logutil.NewLogger("config").WithOperation("load")
//	log.Debug("reading file", "path", path)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set URLPREFIX_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"loaded endpoints","count":3}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="loaded endpoints" count=3
package logutil
