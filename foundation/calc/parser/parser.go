// File: parser.go
// Title: Precedence-Climbing Expression Parser
// Description: Implements the parsing and evaluation phase of expression
//              processing. Consumes token streams and evaluates them
//              directly to numeric values using precedence climbing, with
//              operator definitions drawn from the operator registry.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"

	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc/registry"
	pcerror "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/error"
	pclog "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/log"
)

// Parser evaluates arithmetic expressions using precedence climbing
type Parser struct {
	registry *registry.Registry
	logger   *pclog.Logger
	tokens   []Token
	pos      int
	options  Options
}

// Options configures parser behavior
type Options struct {
	// Logger for parser operations (optional, defaults to default logger)
	Logger *pclog.Logger

	// Registry supplies the operator definitions (required)
	Registry *registry.Registry

	// MaxInputLength limits input expression length (default: 4096)
	MaxInputLength int
}

// New creates a new expression parser with the given options
func New(opts Options) (*Parser, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = pclog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = 4096
	}

	if opts.Registry == nil {
		return nil, pcerror.New("parser requires an operator registry").
			WithCode(pcerror.CodeInvalidInput).
			WithOperation("parser.New")
	}

	return &Parser{
		registry: opts.Registry,
		logger:   opts.Logger.WithField("component", "calc-parser"),
		options:  opts,
	}, nil
}

// Evaluate tokenizes, parses, and evaluates an expression string
func (p *Parser) Evaluate(input string) (float64, error) {
	// Validate input length
	if len(input) > p.options.MaxInputLength {
		return 0, pcerror.New(fmt.Sprintf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength)).
			WithCode(pcerror.CodeInvalidInput).
			WithOperation("parser.Evaluate")
	}

	p.logger.Debug("Starting expression evaluation", pclog.Fields{
		"input":  input,
		"length": len(input),
	})

	tokens, err := TokenizeInput(input)
	if err != nil {
		p.logger.Warn("Expression tokenization failed", pclog.Fields{
			"input": input,
			"error": err.Error(),
		})
		return 0, err
	}

	// The token slice always ends with EOF; anything shorter is empty input
	if len(tokens) <= 1 {
		return 0, pcerror.New("expression is empty").
			WithCode(pcerror.CodeEmptyExpression).
			WithOperation("parser.Evaluate")
	}

	p.tokens = tokens
	p.pos = 0

	result, err := p.parseExpression(1)
	if err != nil {
		p.logger.Warn("Expression parsing failed", pclog.Fields{
			"input": input,
			"error": err.Error(),
		})
		return 0, err
	}

	// Ensure we've consumed all input
	if tok := p.current(); tok.Type != TokenEOF {
		var parseErr error
		if tok.Type == TokenRightParen {
			parseErr = pcerror.New(fmt.Sprintf("unmatched closing parenthesis at position %d", tok.Position)).
				WithCode(pcerror.CodeUnmatchedParen).
				WithOperation("parser.Evaluate").
				WithDetail("position", tok.Position)
		} else {
			parseErr = p.unexpectedToken(tok)
		}
		p.logger.Warn("Expression parsing failed", pclog.Fields{
			"input": input,
			"error": parseErr.Error(),
		})
		return 0, parseErr
	}

	p.logger.Debug("Expression evaluation completed", pclog.Fields{
		"input":  input,
		"result": result,
	})

	return result, nil
}

// parseExpression parses a sequence of primaries joined by binary operators
// whose precedence is at least minPrec (precedence climbing)
func (p *Parser) parseExpression(minPrec int) (float64, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}

	for {
		tok := p.current()
		if tok.Type != TokenOperator {
			break
		}

		op, ok := p.registry.Lookup(tok.Value[0])
		if !ok {
			return 0, pcerror.New(fmt.Sprintf("unknown operator '%s' at position %d",
				tok.Value, tok.Position)).
				WithCode(pcerror.CodeInvalidOperator).
				WithOperation("parser.parseExpression").
				WithDetail("symbol", tok.Value).
				WithDetail("position", tok.Position)
		}

		if op.Precedence < minPrec {
			break
		}

		p.advance() // consume the operator

		// Left-associative operators raise the threshold for the right
		// side; right-associative operators keep it, so equal precedence
		// groups rightward (2^3^2 == 2^(3^2))
		nextMin := op.Precedence + 1
		if op.RightAssoc {
			nextMin = op.Precedence
		}

		right, err := p.parseExpression(nextMin)
		if err != nil {
			return 0, err
		}

		left, err = op.Apply(left, right)
		if err != nil {
			return 0, err
		}
	}

	return left, nil
}

// parsePrimary parses a value: an optional run of unary minuses followed
// by a number or a parenthesized sub-expression
func (p *Parser) parsePrimary() (float64, error) {
	tok := p.current()

	switch tok.Type {
	case TokenNumber:
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return 0, pcerror.Wrap(err, fmt.Sprintf("invalid number '%s' at position %d",
				tok.Value, tok.Position)).
				WithCode(pcerror.CodeTokenize).
				WithOperation("parser.parsePrimary").
				WithDetail("value", tok.Value).
				WithDetail("position", tok.Position)
		}
		p.advance()
		return value, nil

	case TokenLeftParen:
		p.advance() // consume '('
		value, err := p.parseExpression(1)
		if err != nil {
			return 0, err
		}
		if p.current().Type != TokenRightParen {
			return 0, pcerror.New("missing closing parenthesis").
				WithCode(pcerror.CodeUnmatchedParen).
				WithOperation("parser.parsePrimary").
				WithDetail("openPosition", tok.Position)
		}
		p.advance() // consume ')'
		return value, nil

	case TokenOperator:
		// A '-' in value position is unary minus; consecutive unary
		// minuses nest, so --5 evaluates to 5
		if tok.Value == "-" {
			p.advance()
			value, err := p.parsePrimary()
			if err != nil {
				return 0, err
			}
			return -value, nil
		}

		if !p.registry.Has(tok.Value[0]) {
			return 0, pcerror.New(fmt.Sprintf("unknown operator '%s' at position %d",
				tok.Value, tok.Position)).
				WithCode(pcerror.CodeInvalidOperator).
				WithOperation("parser.parsePrimary").
				WithDetail("symbol", tok.Value).
				WithDetail("position", tok.Position)
		}
		return 0, p.unexpectedToken(tok)

	case TokenEOF:
		return 0, pcerror.New("unexpected end of expression").
			WithCode(pcerror.CodeUnexpectedToken).
			WithOperation("parser.parsePrimary").
			WithDetail("position", tok.Position)

	default:
		return 0, p.unexpectedToken(tok)
	}
}

// current returns the token at the current position
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// unexpectedToken builds a grammar-violation error for a token
func (p *Parser) unexpectedToken(tok Token) error {
	return pcerror.New(fmt.Sprintf("unexpected token '%s' at position %d", tok.Value, tok.Position)).
		WithCode(pcerror.CodeUnexpectedToken).
		WithOperation("parser.parseExpression").
		WithDetail("token", tok.String()).
		WithDetail("position", tok.Position)
}
