// Package log provides structured logging capabilities for PyCalc.
//
// Package: log
// Title: PyCalc Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual fields, multiple output formats, log levels, and
//              tight integration with the PyCalc error handling system. It
//              also supports timing measurements and audit trails.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-10
// Modified: 2025-03-10
//
// Change History:
// - 2025-03-10 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, console, and logfmt formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with named loggers and custom fields
// - Integration with the PyCalc error system for automatic error logging
// - Performance timers with checkpoints
// - Audit trail level that bypasses filtering
// - Optional asynchronous output with a bounded buffer
//
// Usage:
//
//	import pclog "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/log"
//
//	// Create a logger with context
//	logger := pclog.New().
//	  WithLevel(pclog.LevelInfo).
//	  WithFormat(pclog.FormatConsole).
//	  WithField("component", "calc-engine")
//
//	// Log messages with different levels
//	logger.Info("Operator registered", pclog.Field("symbol", "%"))
//	logger.Error("Evaluation failed", pclog.Err(err))
//	logger.Debug("Evaluating expression", pclog.Fields{
//	  "input":  "1 + 2 * 3",
//	  "length": 9,
//	})
//
//	// Log performance metrics
//	timer := logger.StartTimer("evaluate")
//	// ... evaluate the expression
//	timer.Stop()
package log
