// File: doc.go
// Title: Operator Registry Package Documentation
// Description: Package registry manages the set of binary operators known
//              to the expression evaluator.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13

/*
Package registry implements the operator registry for PyCalc.

The registry maps single-character operator symbols to their definitions:
precedence, associativity, and the arithmetic function that combines two
operands. The parser asks the registry which operators exist, so new
operators become usable immediately after registration without touching
the tokenizer or the parser.

A registry created with New carries the default operator set:

	+  precedence 1  left   addition
	-  precedence 1  left   subtraction
	*  precedence 2  left   multiplication
	/  precedence 2  left   division (divisor 0 fails)
	%  precedence 2  left   modulo (divisor 0 fails)
	^  precedence 3  right  exponentiation

Registering a symbol that already exists replaces the previous definition;
the last registration wins. Registration is guarded by a read-write mutex
so operators may be added between evaluations while other goroutines read.

Usage:

	reg := registry.New(registry.Options{})

	err := reg.Register(registry.Operator{
		Symbol:     '!',
		Precedence: 2,
		Apply: func(left, right float64) (float64, error) {
			return left * right * 2, nil
		},
	})
*/
package registry
