// Package logging provides structured logging for ring connections and
// wire-protocol traffic.
//
// This package wraps zap with convenience functions for common logging
// patterns used throughout the CLI and client: connection lifecycle
// events, decoded frames, and decoded replies.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: frame/reply hex dumps, protocol-level detail
//   - Info: connection lifecycle events
//   - Warn: non-fatal issues (recoverable protocol faults)
//   - Error: fatal issues (connect failures, transport errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("device connected",
//	    zap.String("device_addr", addr),
//	)
//
// # Configuration
//
// Initialize logging at process startup:
//
//	if err := logging.Initialize(""); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// By default logging is silent; set RING_LOG_LEVEL (debug, info, warn,
// error) to enable console output.
package logging
