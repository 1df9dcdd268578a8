// File: doc.go
// Title: Calc Package Documentation
// Description: Package documentation for the PyCalc evaluation engine.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial documentation

// Package calc provides the high-level PyCalc evaluation engine.
//
// The engine composes three subpackages behind a single facade:
//
//   - registry: the operator registry mapping symbols to precedence,
//     associativity, and application functions
//   - parser: the tokenizer and precedence-climbing parser that
//     evaluates expressions directly against the registry
//   - history: the session-scoped store of successful evaluations
//
// Basic usage:
//
//	engine, err := calc.New(calc.Options{})
//	if err != nil {
//		return err
//	}
//	defer engine.Close()
//
//	result, err := engine.Evaluate(ctx, "1 + 2 * 3")
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.Formatted) // 7.0
//
// New operators can be registered at runtime through the registry and
// become usable immediately:
//
//	engine.Registry().Register(registry.Operator{
//		Symbol:     '?',
//		Precedence: 2,
//		Apply:      func(l, r float64) (float64, error) { return math.Min(l, r), nil },
//	})
package calc
