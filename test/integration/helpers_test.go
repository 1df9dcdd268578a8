// File: helpers_test.go
// Title: Integration Test Helpers
// Description: Shared assertion and setup helpers for the cross-package
//              integration tests.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial integration helpers

package integration

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc"
	pclog "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/log"
)

// newTestEngine creates an engine with logging silenced
func newTestEngine(t *testing.T) *calc.Engine {
	t.Helper()

	engine, err := calc.New(calc.Options{
		Logger: pclog.New().WithOutput(io.Discard),
	})
	if err != nil {
		t.Fatalf("calc.New() failed: %v", err)
	}
	return engine
}

func testContext(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), timeout)
}

// requireNoError fails the test if err is not nil
func requireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// requireTrue fails the test if condition is false
func requireTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Fatalf("Expected true: %s", msg)
	}
}

// requireEqual fails the test if expected != actual
func requireEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// logTestStart logs the start of a test with component info
func logTestStart(t *testing.T, component, testName string) {
	t.Helper()
	t.Logf("=== %s: %s ===", component, testName)
}
