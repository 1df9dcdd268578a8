// File: history.go
// Title: Evaluation History
// Description: In-memory, session-scoped store of successful evaluations.
//              Records are numbered from 1 in insertion order; clearing the
//              history resets the numbering.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial history implementation

package history

import (
	"sync"
	"time"
)

// Record is one successful evaluation
type Record struct {
	// Sequence is the 1-based position of the record within the
	// current history. Sequence numbers restart at 1 after Clear.
	Sequence int `json:"sequence"`

	// Expression is the raw input as typed by the user
	Expression string `json:"expression"`

	// Result is the numeric value the expression evaluated to
	Result float64 `json:"result"`

	// Timestamp is when the evaluation completed
	Timestamp time.Time `json:"timestamp"`
}

// History stores evaluation records in insertion order.
// It is safe for concurrent use.
type History struct {
	mu      sync.RWMutex
	records []Record
}

// New creates an empty history
func New() *History {
	return &History{}
}

// Add appends a successful evaluation and returns the stored record.
// Only successful evaluations belong in the history; callers must not
// record failed ones.
func (h *History) Add(expression string, result float64) Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	rec := Record{
		Sequence:   len(h.records) + 1,
		Expression: expression,
		Result:     result,
		Timestamp:  time.Now(),
	}
	h.records = append(h.records, rec)
	return rec
}

// All returns a copy of every record in insertion order.
// The copy is independent; later mutations do not affect it.
func (h *History) All() []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of stored records
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// Clear removes all records and resets sequence numbering
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = nil
}
