// File: registry.go
// Title: PyCalc Operator Registry
// Description: Implements the operator registry that supplies the parser
//              with everything it needs to recognize and apply binary
//              operators. Open to extension: new operators may be added at
//              runtime without modifying the tokenizer or the parser.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial registry implementation with default operators

package registry

import (
	"fmt"
	"math"
	"sort"
	"sync"

	pcerror "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/error"
	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/log"
)

// Operator describes one binary operator known to the evaluator
type Operator struct {
	// Symbol is the single printable ASCII character that selects the
	// operator. Digits, '.', parentheses, and whitespace are reserved
	// for the tokenizer and may not be used.
	Symbol byte

	// Precedence is the binding strength; higher binds tighter
	Precedence int

	// RightAssoc marks right-associative operators (exponentiation).
	// All other operators group left-to-right.
	RightAssoc bool

	// Apply combines two operands into one result. Domain failures
	// (division by zero) are reported through the error return.
	Apply func(left, right float64) (float64, error)
}

// Registry holds the set of known binary operators
type Registry struct {
	operators map[byte]Operator
	logger    *log.Logger
	mutex     sync.RWMutex
	options   Options
}

// Options configures registry construction
type Options struct {
	// Logger for registry operations (optional, defaults to default logger)
	Logger *log.Logger

	// WithoutDefaults skips registration of the builtin operator set.
	// Used by tests that need a registry with a controlled operator set.
	WithoutDefaults bool
}

// New creates a new operator registry
func New(opts Options) *Registry {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	registry := &Registry{
		operators: make(map[byte]Operator),
		logger:    opts.Logger.WithField("component", "calc-registry"),
		options:   opts,
	}

	if !opts.WithoutDefaults {
		registry.registerDefaults()
	}

	registry.logger.Info("Operator registry initialized", log.Fields{
		"operatorCount": len(registry.operators),
	})

	return registry
}

// Register adds an operator, replacing any previous definition for the
// same symbol (last registration wins)
func (r *Registry) Register(op Operator) error {
	if err := validateSymbol(op.Symbol); err != nil {
		return err
	}

	if op.Apply == nil {
		return pcerror.New(fmt.Sprintf("operator '%c' has no apply function", op.Symbol)).
			WithCode(pcerror.CodeInvalidOperator).
			WithOperation("registry.Register")
	}

	if op.Precedence <= 0 {
		return pcerror.New(fmt.Sprintf("operator '%c' precedence must be positive, got %d", op.Symbol, op.Precedence)).
			WithCode(pcerror.CodeInvalidOperator).
			WithOperation("registry.Register").
			WithDetail("precedence", op.Precedence)
	}

	r.mutex.Lock()
	_, replaced := r.operators[op.Symbol]
	r.operators[op.Symbol] = op
	r.mutex.Unlock()

	r.logger.Info("Operator registered", log.Fields{
		"symbol":     string(op.Symbol),
		"precedence": op.Precedence,
		"rightAssoc": op.RightAssoc,
		"replaced":   replaced,
	})

	return nil
}

// Lookup returns the operator definition for a symbol if present
func (r *Registry) Lookup(symbol byte) (Operator, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	op, ok := r.operators[symbol]
	return op, ok
}

// Apply looks up an operator and invokes its combining function
func (r *Registry) Apply(symbol byte, left, right float64) (float64, error) {
	op, ok := r.Lookup(symbol)
	if !ok {
		return 0, pcerror.New(fmt.Sprintf("unknown operator '%c'", symbol)).
			WithCode(pcerror.CodeInvalidOperator).
			WithOperation("registry.Apply").
			WithDetail("symbol", string(symbol))
	}

	return op.Apply(left, right)
}

// Has checks whether a symbol is registered
func (r *Registry) Has(symbol byte) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, ok := r.operators[symbol]
	return ok
}

// Symbols returns a sorted snapshot of the registered operator symbols
func (r *Registry) Symbols() []byte {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	symbols := make([]byte, 0, len(r.operators))
	for symbol := range r.operators {
		symbols = append(symbols, symbol)
	}

	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}

// Operators returns a snapshot of all registered operators sorted by symbol
func (r *Registry) Operators() []Operator {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	operators := make([]Operator, 0, len(r.operators))
	for _, op := range r.operators {
		operators = append(operators, op)
	}

	sort.Slice(operators, func(i, j int) bool { return operators[i].Symbol < operators[j].Symbol })
	return operators
}

// Len returns the number of registered operators
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.operators)
}

// validateSymbol checks that a symbol is one printable ASCII character
// outside the set reserved for numbers, parentheses, and whitespace
func validateSymbol(symbol byte) error {
	if symbol < '!' || symbol > '~' {
		return pcerror.New(fmt.Sprintf("operator symbol 0x%02x is not a printable character", symbol)).
			WithCode(pcerror.CodeInvalidOperator).
			WithOperation("registry.Register")
	}

	if symbol >= '0' && symbol <= '9' {
		return pcerror.New(fmt.Sprintf("operator symbol '%c' is reserved for numbers", symbol)).
			WithCode(pcerror.CodeInvalidOperator).
			WithOperation("registry.Register")
	}

	switch symbol {
	case '.':
		return pcerror.New("operator symbol '.' is reserved for decimal points").
			WithCode(pcerror.CodeInvalidOperator).
			WithOperation("registry.Register")
	case '(', ')':
		return pcerror.New(fmt.Sprintf("operator symbol '%c' is reserved for grouping", symbol)).
			WithCode(pcerror.CodeInvalidOperator).
			WithOperation("registry.Register")
	}

	return nil
}

// registerDefaults installs the builtin operator set
func (r *Registry) registerDefaults() {
	defaults := []Operator{
		{Symbol: '+', Precedence: 1, Apply: func(left, right float64) (float64, error) {
			return left + right, nil
		}},
		{Symbol: '-', Precedence: 1, Apply: func(left, right float64) (float64, error) {
			return left - right, nil
		}},
		{Symbol: '*', Precedence: 2, Apply: func(left, right float64) (float64, error) {
			return left * right, nil
		}},
		{Symbol: '/', Precedence: 2, Apply: safeDivide},
		{Symbol: '%', Precedence: 2, Apply: safeModulo},
		{Symbol: '^', Precedence: 3, RightAssoc: true, Apply: func(left, right float64) (float64, error) {
			// NaN and Inf results pass through as values
			return math.Pow(left, right), nil
		}},
	}

	for _, op := range defaults {
		r.operators[op.Symbol] = op
	}
}

// safeDivide divides two operands, rejecting a zero divisor
func safeDivide(left, right float64) (float64, error) {
	if right == 0 {
		return 0, pcerror.New("division by zero").
			WithCode(pcerror.CodeDivisionByZero).
			WithOperation("apply '/'")
	}
	return left / right, nil
}

// safeModulo computes the floating-point remainder, rejecting a zero divisor
func safeModulo(left, right float64) (float64, error) {
	if right == 0 {
		return 0, pcerror.New("modulo by zero").
			WithCode(pcerror.CodeDivisionByZero).
			WithOperation("apply '%'")
	}
	return math.Mod(left, right), nil
}
