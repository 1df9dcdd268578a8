// File: format.go
// Title: Result Formatting
// Description: Formats numeric results and history records for display.
//              Whole numbers are rendered with a trailing ".0" so output
//              is recognizably floating-point.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial formatting implementation

package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc/history"
)

// FormatValue renders a numeric result for display. Values are printed
// in the shortest representation that round-trips; whole numbers get a
// trailing ".0" appended.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}

	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// FormatRecord renders one history record as "N: expr = result"
func FormatRecord(rec history.Record) string {
	return fmt.Sprintf("%d: %s = %s", rec.Sequence, rec.Expression, FormatValue(rec.Result))
}
