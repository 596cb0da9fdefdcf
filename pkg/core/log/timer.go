// File: timer.go
// Title: Operation Timer
// Description: Measures an operation and logs one entry carrying its
//              duration when stopped.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-15 v0.2.0: Duration carried on the entry instead of ad-hoc fields
// - 2026-10-15 v0.3.0: Stop and Cancel only

package log

import "time"

// Timer times one operation. It is not safe for concurrent use.
type Timer struct {
	logger *Logger
	op     string
	start  time.Time
	level  Level
	fields Fields
	done   bool
}

// WithLevel sets the level of the completion entry (default debug)
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithFields adds fields to the completion entry
func (t *Timer) WithFields(fields Fields) *Timer {
	for k, v := range fields {
		t.fields[k] = v
	}
	return t
}

// Stop logs message with the elapsed time and an "op" field. Only the
// first Stop logs; later calls return 0.
func (t *Timer) Stop(message string) time.Duration {
	if t.done {
		return 0
	}
	t.done = true

	elapsed := time.Since(t.start)
	t.fields["op"] = t.op
	t.logger.write(t.level, message, nil, elapsed, t.fields)
	return elapsed
}

// Cancel ends the timer without logging
func (t *Timer) Cancel() {
	t.done = true
}
