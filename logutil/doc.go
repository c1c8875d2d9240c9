// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the structured logging used by rfcurl, built on top
// of slog.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("decomposed urlpath", "path", path, "query", query)
//	logutil.Info("check finished", "valid", valid, "invalid", invalid)
//	logutil.Warn("config file ignored", "path", path)
//	logutil.Error("metrics not written", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set RFCURL_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"check finished","valid":12}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="check finished" valid=12
//
// Logs go to stderr so that command output on stdout stays machine readable.
package logutil
