// File: registry_test.go
// Title: Operator Registry Unit Tests
// Description: Comprehensive unit tests for the operator registry including
//              default operator set, registration validation, duplicate
//              handling, and lookup behavior. Tests cover both positive and
//              negative scenarios with comprehensive error handling.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial comprehensive registry test suite

package registry

import (
	"math"
	"testing"

	pcerror "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/error"
	pclog "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/log"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		options   Options
		checkFunc func(*Registry) bool
	}{
		{
			name: "Default options",
			options: Options{
				Logger: pclog.GetDefault(),
			},
			checkFunc: func(r *Registry) bool {
				return r.Len() == 6 // + - * / % ^
			},
		},
		{
			name: "Without defaults",
			options: Options{
				Logger:          pclog.GetDefault(),
				WithoutDefaults: true,
			},
			checkFunc: func(r *Registry) bool {
				return r.Len() == 0
			},
		},
		{
			name: "Nil logger (should use default)",
			options: Options{
				Logger: nil,
			},
			checkFunc: func(r *Registry) bool {
				return r.Len() == 6
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := New(tt.options)
			if reg == nil {
				t.Fatal("New() returned nil")
			}
			if !tt.checkFunc(reg) {
				t.Errorf("Registry check failed for %s", tt.name)
			}
		})
	}
}

func TestDefaultOperators(t *testing.T) {
	reg := New(Options{})

	tests := []struct {
		symbol     byte
		precedence int
		rightAssoc bool
	}{
		{'+', 1, false},
		{'-', 1, false},
		{'*', 2, false},
		{'/', 2, false},
		{'%', 2, false},
		{'^', 3, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.symbol), func(t *testing.T) {
			op, ok := reg.Lookup(tt.symbol)
			if !ok {
				t.Fatalf("Expected operator '%c' to be registered", tt.symbol)
			}
			if op.Precedence != tt.precedence {
				t.Errorf("Precedence = %d, want %d", op.Precedence, tt.precedence)
			}
			if op.RightAssoc != tt.rightAssoc {
				t.Errorf("RightAssoc = %v, want %v", op.RightAssoc, tt.rightAssoc)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	apply := func(left, right float64) (float64, error) { return left + right, nil }

	tests := []struct {
		name      string
		op        Operator
		expectErr bool
	}{
		{
			name:      "valid operator",
			op:        Operator{Symbol: '&', Precedence: 2, Apply: apply},
			expectErr: false,
		},
		{
			name:      "digit symbol",
			op:        Operator{Symbol: '7', Precedence: 2, Apply: apply},
			expectErr: true,
		},
		{
			name:      "decimal point symbol",
			op:        Operator{Symbol: '.', Precedence: 2, Apply: apply},
			expectErr: true,
		},
		{
			name:      "left paren symbol",
			op:        Operator{Symbol: '(', Precedence: 2, Apply: apply},
			expectErr: true,
		},
		{
			name:      "right paren symbol",
			op:        Operator{Symbol: ')', Precedence: 2, Apply: apply},
			expectErr: true,
		},
		{
			name:      "whitespace symbol",
			op:        Operator{Symbol: ' ', Precedence: 2, Apply: apply},
			expectErr: true,
		},
		{
			name:      "unprintable symbol",
			op:        Operator{Symbol: 0x07, Precedence: 2, Apply: apply},
			expectErr: true,
		},
		{
			name:      "nil apply function",
			op:        Operator{Symbol: '&', Precedence: 2, Apply: nil},
			expectErr: true,
		},
		{
			name:      "zero precedence",
			op:        Operator{Symbol: '&', Precedence: 0, Apply: apply},
			expectErr: true,
		},
		{
			name:      "negative precedence",
			op:        Operator{Symbol: '&', Precedence: -1, Apply: apply},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := New(Options{WithoutDefaults: true})
			err := reg.Register(tt.op)

			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !pcerror.HasCode(err, pcerror.CodeInvalidOperator) {
					t.Errorf("Expected INVALID_OPERATOR code, got %v", pcerror.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if !reg.Has(tt.op.Symbol) {
				t.Errorf("Expected '%c' to be registered", tt.op.Symbol)
			}
		})
	}
}

func TestRegisterDuplicateLastWins(t *testing.T) {
	reg := New(Options{WithoutDefaults: true})

	first := Operator{Symbol: '&', Precedence: 1, Apply: func(left, right float64) (float64, error) {
		return 1, nil
	}}
	second := Operator{Symbol: '&', Precedence: 3, RightAssoc: true, Apply: func(left, right float64) (float64, error) {
		return 2, nil
	}}

	if err := reg.Register(first); err != nil {
		t.Fatalf("Register(first) error = %v", err)
	}
	if err := reg.Register(second); err != nil {
		t.Fatalf("Register(second) error = %v", err)
	}

	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}

	op, ok := reg.Lookup('&')
	if !ok {
		t.Fatal("Expected '&' to be registered")
	}
	if op.Precedence != 3 {
		t.Errorf("Precedence = %d, want 3 (last registration wins)", op.Precedence)
	}
	if !op.RightAssoc {
		t.Error("RightAssoc = false, want true (last registration wins)")
	}

	result, err := reg.Apply('&', 0, 0)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result != 2 {
		t.Errorf("Apply() = %v, want 2 (last registration wins)", result)
	}
}

func TestApply(t *testing.T) {
	reg := New(Options{})

	tests := []struct {
		name      string
		symbol    byte
		left      float64
		right     float64
		want      float64
		expectErr bool
		errCode   pcerror.Code
	}{
		{name: "addition", symbol: '+', left: 1, right: 2, want: 3},
		{name: "subtraction", symbol: '-', left: 8, right: 3, want: 5},
		{name: "multiplication", symbol: '*', left: 3, right: 4, want: 12},
		{name: "division", symbol: '/', left: 10, right: 4, want: 2.5},
		{name: "modulo", symbol: '%', left: 7, right: 3, want: 1},
		{name: "exponentiation", symbol: '^', left: 2, right: 10, want: 1024},
		{name: "division by zero", symbol: '/', left: 1, right: 0, expectErr: true, errCode: pcerror.CodeDivisionByZero},
		{name: "modulo by zero", symbol: '%', left: 7, right: 0, expectErr: true, errCode: pcerror.CodeDivisionByZero},
		{name: "unknown operator", symbol: '@', left: 1, right: 2, expectErr: true, errCode: pcerror.CodeInvalidOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Apply(tt.symbol, tt.left, tt.right)

			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !pcerror.HasCode(err, tt.errCode) {
					t.Errorf("Expected code %v, got %v", tt.errCode, pcerror.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExponentiationEdgeCases(t *testing.T) {
	reg := New(Options{})

	// Fractional exponent
	got, err := reg.Apply('^', 9, 0.5)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got != 3 {
		t.Errorf("9^0.5 = %v, want 3", got)
	}

	// Negative exponent
	got, err = reg.Apply('^', 2, -1)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got != 0.5 {
		t.Errorf("2^-1 = %v, want 0.5", got)
	}

	// NaN passes through as a value, not an error
	got, err = reg.Apply('^', -1, 0.5)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("(-1)^0.5 = %v, want NaN", got)
	}
}

func TestSymbols(t *testing.T) {
	reg := New(Options{})

	symbols := reg.Symbols()
	expected := []byte{'%', '*', '+', '-', '/', '^'}

	if len(symbols) != len(expected) {
		t.Fatalf("Symbols() length = %d, want %d", len(symbols), len(expected))
	}

	for i, symbol := range symbols {
		if symbol != expected[i] {
			t.Errorf("Symbols()[%d] = '%c', want '%c'", i, symbol, expected[i])
		}
	}

	// Snapshot must be a fresh slice; mutating it must not affect the registry
	symbols[0] = 'X'
	if reg.Has('X') {
		t.Error("Mutating the Symbols() snapshot changed registry state")
	}
	fresh := reg.Symbols()
	if fresh[0] != '%' {
		t.Errorf("Symbols() after mutation = '%c', want '%%'", fresh[0])
	}
}

func TestOperators(t *testing.T) {
	reg := New(Options{})

	operators := reg.Operators()
	if len(operators) != 6 {
		t.Fatalf("Operators() length = %d, want 6", len(operators))
	}

	// Sorted by symbol
	for i := 1; i < len(operators); i++ {
		if operators[i-1].Symbol >= operators[i].Symbol {
			t.Errorf("Operators() not sorted: '%c' before '%c'",
				operators[i-1].Symbol, operators[i].Symbol)
		}
	}
}

func TestHasAndLen(t *testing.T) {
	reg := New(Options{WithoutDefaults: true})

	if reg.Has('+') {
		t.Error("Expected empty registry to not have '+'")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}

	err := reg.Register(Operator{Symbol: '+', Precedence: 1, Apply: func(left, right float64) (float64, error) {
		return left + right, nil
	}})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if !reg.Has('+') {
		t.Error("Expected '+' to be registered")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}
