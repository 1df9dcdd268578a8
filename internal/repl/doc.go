// File: doc.go
// Title: REPL Package Documentation
// Description: Package documentation for the plain line-oriented REPL.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial documentation

// Package repl implements the plain line-oriented calculator session.
//
// The loop prints a banner, prompts with "> ", and dispatches each line:
// the exact commands "history", "clear", "quit", and "exit" are handled
// directly; every other non-blank line is evaluated as an arithmetic
// expression. Evaluation errors are reported as a single "Error: ..."
// line and never terminate the session. End of input (Ctrl-D) ends the
// session cleanly.
package repl
