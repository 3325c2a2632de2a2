// Package log provides simple leveled logging for fritzkit.
//
// This package implements a lightweight logging system with colored output
// and support for different log levels: DEBUG, INFO, WARN, and ERROR.
// It provides global logging functions used by the fritzkit packages and
// available to applications built on them.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures and exceptions
//
// # Features
//
//   - Colored console output with ANSI escape codes
//   - Configurable verbosity (debug logging on/off)
//   - Flexible output (stdout vs stderr)
//   - Printf-style formatting
//   - Fatal logging with immediate exit
//
// # Example Usage
//
// Basic logging:
//
//	log.Infof("Starting scan")
//	log.Warnf("Script file not found at %s", path)
//	log.Errorf("Failed to call action: %v", err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Detailed trace: %+v", data)
//
// Silencing the library entirely:
//
//	log.DisableLogs()
//
// Restoring the default state (enabled, non-verbose, stdout):
//
//	log.Reset()
package log
