// File: lexer.go
// Title: Expression Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of expression parsing.
//              Converts raw expression strings into streams of tokens for
//              the parser and provides detailed position information for
//              error reporting.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"

	pcerror "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/error"
)

// Lexer performs lexical analysis of arithmetic expressions
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input.
//
// Any printable non-space character that is not a digit, a decimal
// point, or a parenthesis becomes a TokenOperator; whether the symbol
// is actually registered is decided later by the parser against the
// operator registry, so newly registered operators tokenize without
// lexer changes.
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	switch {
	case l.ch == '(':
		tok = newToken(TokenLeftParen, l.ch, pos, line, column)
	case l.ch == ')':
		tok = newToken(TokenRightParen, l.ch, pos, line, column)
	case l.ch == 0:
		tok = Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		tok.Type = TokenNumber
		tok.Value = l.readNumber()
		tok.Position = pos
		tok.Line = line
		tok.Column = column
		return tok // Early return to avoid readChar()
	case isPrintable(l.ch) && l.ch != '.':
		tok = newToken(TokenOperator, l.ch, pos, line, column)
	default:
		// A bare '.' (no digit on either side) and unprintable bytes
		// are illegal.
		tok = newToken(TokenIllegal, l.ch, pos, line, column)
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenIllegal {
			return tokens, pcerror.New(fmt.Sprintf("unexpected character '%s' at position %d",
				tok.Value, tok.Position)).
				WithCode(pcerror.CodeTokenize).
				WithOperation("lexer.Tokenize").
				WithDetail("character", tok.Value).
				WithDetail("position", tok.Position).
				WithDetail("line", tok.Line).
				WithDetail("column", tok.Column)
		}
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readNumber reads a numeric literal. The integer part is optional
// (".5" is 0.5) and a trailing decimal point is allowed ("1." is 1.0),
// but a literal carries at most one dot, so "1.2.3" splits into the
// numbers "1.2" and ".3" and fails later in the parser.
func (l *Lexer) readNumber() string {
	start := l.position
	hasDot := l.ch == '.'
	l.readChar()

	for {
		if isDigit(l.ch) {
			l.readChar()
			continue
		}
		if l.ch == '.' && !hasDot {
			hasDot = true
			l.readChar()
			continue
		}
		break
	}

	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// Utility functions

// newToken creates a new token with the given parameters
func newToken(tokenType TokenType, ch byte, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isPrintable checks if the character is printable ASCII (excluding space)
func isPrintable(ch byte) bool {
	return ch >= '!' && ch <= '~'
}

// TokenizeInput is a convenience function that tokenizes input and returns tokens or error
func TokenizeInput(input string) ([]Token, error) {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}
