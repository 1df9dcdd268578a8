// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization, monitoring, and logging decisions.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-11
// Modified: 2025-03-11
//
// Change History:
// - 2025-03-11 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed expressions, unknown tokens, empty input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects a single operation
	// Examples: division by zero, unregistered operator symbols
	SeverityMedium

	// SeverityHigh indicates a serious error that impacts the session
	// Examples: broken configuration, component initialization failures
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the program unusable
	// Examples: unusable environment, unrecoverable internal state
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// ShouldLog returns true if this severity level should be logged
func (s Severity) ShouldLog() bool {
	return true // All severities should be logged
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical system errors
	case CodeEnvironmentError:
		return SeverityCritical

	// High severity errors
	case CodeInternal, CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	// Medium severity errors
	case CodeInvalidOperator, CodeDivisionByZero, CodeTimeout:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound,
		CodeTokenize, CodeEmptyExpression, CodeUnmatchedParen, CodeUnexpectedToken,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
