// File: entry.go
// Title: Log Entry
// Description: A single log record and the Fields map carrying its
//              structured context.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Reduced context to logger name and correlation id
// - 2026-10-15 v0.3.0: Entries are built by the logger only

package log

import (
	"sort"
	"time"
)

// Entry is one log record as handed to a Formatter
type Entry struct {
	Time          time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Err           error
	Duration      time.Duration
}

// Fields holds structured key-value context
type Fields map[string]interface{}

// Field is shorthand for a single-key Fields
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

func (f Fields) sortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
