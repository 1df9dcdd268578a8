// File: repl.go
// Title: PyCalc Plain REPL
// Description: Implements the line-oriented read-eval-print loop: banner,
//              prompt, meta-command dispatch (history/clear/quit/exit),
//              expression evaluation, and single-line error reporting.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial REPL implementation

package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc"
	pclog "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/log"
)

// Banner is printed once at session start, followed by a blank line
const Banner = "PyCalc - simple command-line calculator\n" +
	"Type expressions to evaluate them.\n" +
	"Type 'history' to show past results, 'clear' to erase history, 'quit' to exit.\n"

// Prompt is written before each input line
const Prompt = "> "

// Config configures a REPL session
type Config struct {
	// Input is the line source; defaults to os.Stdin
	Input io.Reader

	// Output receives prompts, results, and errors; defaults to os.Stdout
	Output io.Writer

	// Engine evaluates expressions; a default engine is created when nil
	Engine *calc.Engine

	// Logger for session diagnostics; defaults to log.GetDefault()
	Logger *pclog.Logger

	// ShowBanner controls the startup banner
	ShowBanner bool
}

// DefaultConfig returns a Config wired to stdin/stdout with the banner on
func DefaultConfig() Config {
	return Config{
		Input:      os.Stdin,
		Output:     os.Stdout,
		ShowBanner: true,
	}
}

// REPL is one interactive calculator session
type REPL struct {
	engine  *calc.Engine
	scanner *bufio.Scanner
	out     io.Writer
	logger  *pclog.Logger
	banner  bool
}

// New creates a REPL from the given configuration
func New(cfg Config) (*REPL, error) {
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = pclog.GetDefault()
	}

	logger := cfg.Logger.WithField("component", "repl")

	if cfg.Engine == nil {
		engine, err := calc.New(calc.Options{Logger: cfg.Logger})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize calculation engine: %w", err)
		}
		cfg.Engine = engine
	}

	return &REPL{
		engine:  cfg.Engine,
		scanner: bufio.NewScanner(cfg.Input),
		out:     cfg.Output,
		logger:  logger,
		banner:  cfg.ShowBanner,
	}, nil
}

// Run executes the session loop until quit/exit or end of input
func (r *REPL) Run() error {
	if r.banner {
		fmt.Fprint(r.out, Banner, "\n")
	}

	r.logger.Info("REPL session started")

	for {
		fmt.Fprint(r.out, Prompt)

		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				r.logger.Error("Input scan failed", pclog.Fields{"error": err.Error()})
				return err
			}
			// EOF (Ctrl-D)
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, "Exiting PyCalc.")
			r.logger.Info("REPL session ended on EOF")
			return nil
		}

		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		// Meta-commands match exactly and case-sensitively; anything
		// else is handed to the evaluator.
		switch line {
		case "quit", "exit":
			fmt.Fprintln(r.out, "Goodbye.")
			r.logger.Info("REPL session ended", pclog.Fields{"command": line})
			return nil
		case "history":
			r.printHistory()
		case "clear":
			r.engine.History().Clear()
			fmt.Fprintln(r.out, "History cleared.")
		default:
			r.evaluate(line)
		}
	}
}

func (r *REPL) printHistory() {
	records := r.engine.History().All()
	if len(records) == 0 {
		fmt.Fprintln(r.out, "(no history)")
		return
	}
	for _, rec := range records {
		fmt.Fprintln(r.out, calc.FormatRecord(rec))
	}
}

func (r *REPL) evaluate(line string) {
	result, err := r.engine.EvaluateString(line)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintln(r.out, result.Formatted)
}

// Run creates a REPL from cfg and runs it to completion
func Run(cfg Config) error {
	r, err := New(cfg)
	if err != nil {
		return err
	}
	return r.Run()
}
