// File: engine_test.go
// Title: Engine Integration Tests
// Description: Cross-package flows through the engine facade: parsing,
//              registry-driven evaluation, history recording, and
//              result formatting.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial engine integration tests

package integration

import (
	"math"
	"testing"
	"time"

	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc"
	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc/registry"
	pcerror "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/error"
)

func TestEngine_AcceptanceExpressions(t *testing.T) {
	logTestStart(t, "Engine", "AcceptanceExpressions")
	engine := newTestEngine(t)
	ctx, cancel := testContext(t, 10*time.Second)
	defer cancel()

	tests := []struct {
		input string
		want  string
	}{
		{"1+2*3", "7.0"},
		{"(1+2)*3", "9.0"},
		{"2^3^2", "512.0"},
		{"8-3-2", "3.0"},
		{"10/4", "2.5"},
		{"7%3", "1.0"},
		{"-1+4", "3.0"},
		{"-(1+2)", "-3.0"},
		{"--5", "5.0"},
		{"2*-3", "-6.0"},
	}

	for _, tt := range tests {
		result, err := engine.Evaluate(ctx, tt.input)
		requireNoError(t, err, "Evaluate "+tt.input)
		requireEqual(t, tt.want, result.Formatted, "Formatted result of "+tt.input)
	}

	requireEqual(t, len(tests), engine.History().Len(), "History length")
}

func TestEngine_ErrorCodes(t *testing.T) {
	logTestStart(t, "Engine", "ErrorCodes")
	engine := newTestEngine(t)

	tests := []struct {
		input string
		code  pcerror.Code
	}{
		{"", pcerror.CodeEmptyExpression},
		{"1/0", pcerror.CodeDivisionByZero},
		{"(1+2", pcerror.CodeUnmatchedParen},
		{"1+2)", pcerror.CodeUnmatchedParen},
		{"1@2", pcerror.CodeInvalidOperator},
		{"1 2", pcerror.CodeUnexpectedToken},
		{"1+", pcerror.CodeUnexpectedToken},
	}

	for _, tt := range tests {
		_, err := engine.EvaluateString(tt.input)
		requireTrue(t, err != nil, "Expected error for "+tt.input)
		requireTrue(t, pcerror.HasCode(err, tt.code),
			"Expected code "+string(tt.code)+" for "+tt.input)
	}

	requireEqual(t, 0, engine.History().Len(), "Failed evaluations must not be recorded")
}

func TestEngine_RuntimeOperatorFlow(t *testing.T) {
	logTestStart(t, "Engine", "RuntimeOperatorFlow")
	engine := newTestEngine(t)

	// Unknown before registration
	_, err := engine.EvaluateString("10?3")
	requireTrue(t, pcerror.HasCode(err, pcerror.CodeInvalidOperator),
		"Expected INVALID_OPERATOR before registration")

	err = engine.Registry().Register(registry.Operator{
		Symbol:     '?',
		Precedence: 2,
		Apply: func(left, right float64) (float64, error) {
			return math.Max(left, right), nil
		},
	})
	requireNoError(t, err, "Register ?")

	// Immediately usable, correct precedence against +
	result, err := engine.EvaluateString("1+10?3")
	requireNoError(t, err, "Evaluate with new operator")
	requireEqual(t, "11.0", result.Formatted, "1+10?3 with ? binding tighter than +")

	// Replacing an existing operator is last-wins
	err = engine.Registry().Register(registry.Operator{
		Symbol:     '?',
		Precedence: 2,
		Apply: func(left, right float64) (float64, error) {
			return math.Min(left, right), nil
		},
	})
	requireNoError(t, err, "Re-register ?")

	result, err = engine.EvaluateString("10?3")
	requireNoError(t, err, "Evaluate with replaced operator")
	requireEqual(t, "3.0", result.Formatted, "Replaced ? must apply")
}

func TestEngine_HistoryLifecycle(t *testing.T) {
	logTestStart(t, "Engine", "HistoryLifecycle")
	engine := newTestEngine(t)

	inputs := []string{"1+2", "2*3", "10/4"}
	for _, in := range inputs {
		_, err := engine.EvaluateString(in)
		requireNoError(t, err, "Evaluate "+in)
	}

	records := engine.History().All()
	requireEqual(t, 3, len(records), "Record count")
	requireEqual(t, "1: 1+2 = 3.0", calc.FormatRecord(records[0]), "First record line")
	requireEqual(t, "3: 10/4 = 2.5", calc.FormatRecord(records[2]), "Third record line")

	engine.History().Clear()
	requireEqual(t, 0, engine.History().Len(), "History after clear")

	// Numbering restarts after clear
	result, err := engine.EvaluateString("5*5")
	requireNoError(t, err, "Evaluate after clear")
	requireEqual(t, 1, result.Sequence, "Sequence restarts at 1")
}

func TestEngine_NonFiniteValuesFlowThrough(t *testing.T) {
	logTestStart(t, "Engine", "NonFiniteValuesFlowThrough")
	engine := newTestEngine(t)

	result, err := engine.EvaluateString("10^400")
	requireNoError(t, err, "Evaluate overflow")
	requireEqual(t, "+Inf", result.Formatted, "Overflow formats as +Inf")

	result, err = engine.EvaluateString("(0-1)^0.5")
	requireNoError(t, err, "Evaluate NaN case")
	requireEqual(t, "NaN", result.Formatted, "NaN formats as NaN")

	// Non-finite results still land in the history
	requireEqual(t, 2, engine.History().Len(), "History records non-finite results")
}
