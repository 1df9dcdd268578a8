// Package error provides comprehensive error handling capabilities for PyCalc.
//
// Package: error
// Title: PyCalc Error Handling Framework
// Description: This package implements a structured error handling system with contextual
//              information, error codes, stack traces, and integration with the logging
//              system. It provides a foundation for consistent error handling across
//              all PyCalc components while staying compatible with Go's error interface.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-11
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-11 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent error classification
// - Stack trace capture for debugging
// - Integration with the logging system
// - Error severity levels and categorization
//
// Usage:
//   import pcerror "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/error"
//
//   // Create a new error with context
//   err := pcerror.New("division by zero").
//     WithCode(pcerror.CodeDivisionByZero).
//     WithOperation("evaluate").
//     WithDetail("expression", "1/0")
//
//   // Wrap an existing error with context
//   wrapped := pcerror.Wrap(err, "failed to evaluate expression").
//     WithCode(pcerror.CodeInternal)
//
//   // Check error type and code
//   if pcerror.HasCode(err, pcerror.CodeDivisionByZero) {
//     // Report the arithmetic failure without ending the session
//   }
package error
