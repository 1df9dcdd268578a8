// File: doc.go
// Title: History Package Documentation
// Description: Package documentation for the evaluation history store.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial documentation

// Package history provides an in-memory, session-scoped store of
// successful evaluations.
//
// Each record keeps the original expression text, the computed value,
// a timestamp, and a 1-based sequence number. Records are returned in
// insertion order, and Clear resets the numbering so the next record
// is sequence 1 again. Nothing is persisted across sessions.
//
// Usage:
//
//	h := history.New()
//	h.Add("1+2*3", 7)
//	for _, rec := range h.All() {
//		fmt.Printf("%d: %s = %v\n", rec.Sequence, rec.Expression, rec.Result)
//	}
//	h.Clear()
package history
