// File: calc.go
// Title: PyCalc High-Level Engine Interface
// Description: Provides a high-level interface for the PyCalc evaluator
//              that integrates the operator registry, the expression
//              parser, and the evaluation history behind a single facade.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial high-level engine implementation

package calc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc/history"
	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc/parser"
	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc/registry"
	pclog "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/log"
)

// Engine ties the operator registry, the parser, and the history
// together behind a single evaluation facade
type Engine struct {
	registry *registry.Registry
	parser   *parser.Parser
	history  *history.History
	logger   *pclog.Logger
	options  Options
}

// Options configures the high-level PyCalc engine
type Options struct {
	Logger         *pclog.Logger
	Registry       *registry.Registry
	History        *history.History
	MaxInputLength int
	SessionID      string
}

// New creates a new high-level PyCalc engine
func New(opts Options) (*Engine, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = pclog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = 4096
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}

	logger := opts.Logger.
		WithField("component", "calc-engine").
		WithField("sessionID", opts.SessionID)

	// Create registry with default operators if not provided
	if opts.Registry == nil {
		opts.Registry = registry.New(registry.Options{Logger: logger})
	}

	if opts.History == nil {
		opts.History = history.New()
	}

	p, err := parser.New(parser.Options{
		Logger:         logger,
		Registry:       opts.Registry,
		MaxInputLength: opts.MaxInputLength,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize expression parser: %w", err)
	}

	engine := &Engine{
		registry: opts.Registry,
		parser:   p,
		history:  opts.History,
		logger:   logger,
		options:  opts,
	}

	logger.Info("Calculation engine initialized", pclog.Fields{
		"maxInputLength": opts.MaxInputLength,
		"operators":      opts.Registry.Len(),
	})

	return engine, nil
}

// Evaluate parses and evaluates an arithmetic expression. Successful
// evaluations are recorded in the history; failed ones are not.
func (e *Engine) Evaluate(ctx context.Context, input string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	value, err := e.parser.Evaluate(input)
	if err != nil {
		e.logger.Debug("Evaluation failed", pclog.Fields{
			"input": input,
			"error": err.Error(),
		})
		return nil, err
	}

	duration := time.Since(start)
	rec := e.history.Add(input, value)

	e.logger.Debug("Evaluation succeeded", pclog.Fields{
		"input":    input,
		"result":   value,
		"sequence": rec.Sequence,
		"duration": duration.String(),
	})

	return &Result{
		Expression: input,
		Value:      value,
		Formatted:  FormatValue(value),
		Duration:   duration,
		Sequence:   rec.Sequence,
	}, nil
}

// EvaluateString evaluates an expression without a caller-supplied context
func (e *Engine) EvaluateString(input string) (*Result, error) {
	return e.Evaluate(context.Background(), input)
}

// Registry returns the operator registry so callers can register
// additional operators at runtime
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// History returns the evaluation history
func (e *Engine) History() *history.History {
	return e.history
}

// SessionID returns the identifier of this evaluation session
func (e *Engine) SessionID() string {
	return e.options.SessionID
}

// Close releases engine resources
func (e *Engine) Close() error {
	e.logger.Close()
	return nil
}
