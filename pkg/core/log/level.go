// File: level.go
// Title: Log Levels
// Description: Severity levels for log entries, from operation traces up to
//              audit markers that are written at any minimum level.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-15 v0.2.0: Dropped fatal level
// - 2026-10-15 v0.3.0: Table-driven names, coded parse errors

package log

import (
	"fmt"
	"strings"

	slerror "github.com/msto63/strlist/pkg/core/error"
)

// Level is the importance of a log entry
type Level int

const (
	LevelTrace Level = iota // operation entered/completed
	LevelDebug              // operation messages
	LevelInfo
	LevelWarn
	LevelError
	LevelAudit // always written; test pass/fail markers
)

type levelInfo struct {
	name  string
	short string
	color string
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelAudit: {"audit", "AUD", "\033[34m"},
}

const colorReset = "\033[0m"

func (l Level) info() levelInfo {
	if l < 0 || int(l) >= len(levels) {
		return levelInfo{"unknown", "???", colorReset}
	}
	return levels[l]
}

func (l Level) String() string {
	return l.info().name
}

// Enabled reports whether an entry at l passes the minimum level min
func (l Level) Enabled(min Level) bool {
	return l == LevelAudit || l >= min
}

// ParseLevel accepts a level name or its three-letter short form, in any case
func ParseLevel(s string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, info := range levels {
		if want == info.name || want == strings.ToLower(info.short) {
			return Level(i), nil
		}
	}
	return LevelInfo, slerror.New(fmt.Sprintf("invalid level: %s", s)).
		WithCode(slerror.CodeInvalidInput).
		WithOperation("log.ParseLevel")
}
