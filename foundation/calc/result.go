// File: result.go
// Title: Evaluation Result Type
// Description: Defines the structured result returned by the calculation
//              engine for a successful evaluation.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial result type

package calc

import "time"

// Result is the outcome of one successful evaluation
type Result struct {
	// Expression is the raw input as submitted
	Expression string `json:"expression"`

	// Value is the computed numeric value
	Value float64 `json:"value"`

	// Formatted is the display form of Value. Whole numbers carry a
	// trailing ".0" so results are recognizably floating-point.
	Formatted string `json:"formatted"`

	// Duration is how long parsing and evaluation took
	Duration time.Duration `json:"duration"`

	// Sequence is the history sequence number assigned to this result
	Sequence int `json:"sequence"`
}

// String returns the display form of the result
func (r *Result) String() string {
	return r.Formatted
}
