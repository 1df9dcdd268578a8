// File: doc.go
// Title: Expression Parser Package Documentation
// Description: Package parser implements tokenization and precedence-climbing
//              evaluation of arithmetic expressions.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13

/*
Package parser implements the expression evaluator for PyCalc.

Evaluation happens in two phases. The Lexer scans the input left to right
and produces typed tokens (numbers, operator symbols, parentheses) with
byte positions for error reporting. The Parser then walks the token stream
with precedence climbing: it parses one primary value, and while the next
token is an operator binding at least as tightly as the current threshold,
it consumes the operator and recursively parses the right-hand side with a
raised threshold. Right-associative operators keep the threshold instead
of raising it, which is how 2^3^2 groups as 2^(3^2).

A primary value is an optional run of unary minuses followed by a number
or a parenthesized sub-expression. There is no AST: parse methods return
float64 directly, and each binary combination invokes the operator's
apply function from the registry.

The parser holds no state between Evaluate calls other than read-only
access to the registry, so evaluating the same expression twice always
yields the same result.

Usage:

	reg := registry.New(registry.Options{})
	p, err := parser.New(parser.Options{Registry: reg})
	if err != nil {
		return err
	}

	result, err := p.Evaluate("1 + 2 * 3") // 7
*/
package parser
