// Package logging provides structured logging for ptable.
//
// This package wraps a zap logger with convenience functions for the events
// ptable reports: document loads, renders, preview server requests and
// source file changes.
//
// # Log Levels
//
//   - Debug: Detailed debugging info (cache resets, file watch events)
//   - Info: Normal operations (documents loaded, tables rendered, requests)
//   - Warn: Rejected documents and failed retrievals
//   - Error: Failures the process cannot recover from
//
// # Configuration
//
// Logging is silent unless a level is given, either via --log-level or the
// PTABLE_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(level); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Output goes to stderr in console format so that rendered SVG written to
// stdout stays clean.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned.
package logging
