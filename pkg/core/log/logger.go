// File: logger.go
// Title: Structured Logger
// Description: Logger writes leveled entries with persistent fields and a
//              correlation id through a Formatter. Coded errors are logged
//              at a level chosen from their severity.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-15 v0.2.0: Removed async worker and request/user context
// - 2026-10-15 v0.3.0: Immutable loggers; With* always returns a copy

package log

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	slerror "github.com/msto63/strlist/pkg/core/error"
)

// Logger is safe for concurrent use. With* methods return a modified
// copy and leave the receiver unchanged.
type Logger struct {
	level         Level
	formatter     Formatter
	out           io.Writer
	name          string
	correlationID string
	fields        Fields

	// serializes writes to out across copies
	mu *sync.Mutex
}

// Config configures NewWithConfig
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // default os.Stdout
	Name   string
}

// New returns an info-level JSON logger writing to stdout
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON})
}

// NewWithConfig builds a logger from cfg
func NewWithConfig(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	return &Logger{
		level:     cfg.Level,
		formatter: NewFormatter(cfg.Format),
		out:       out,
		name:      cfg.Name,
		fields:    Fields{},
		mu:        &sync.Mutex{},
	}
}

var defaultLogger = New()

// GetDefault returns the process-wide logger
func GetDefault() *Logger {
	return defaultLogger
}

func (l *Logger) copy() *Logger {
	c := *l
	c.fields = make(Fields, len(l.fields))
	for k, v := range l.fields {
		c.fields[k] = v
	}
	return &c
}

func (l *Logger) WithLevel(level Level) *Logger {
	c := l.copy()
	c.level = level
	return c
}

// WithField adds a field written with every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.copy()
	c.fields[key] = value
	return c
}

// WithCorrelationID tags every entry with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	c := l.copy()
	c.correlationID = id
	return c
}

func (l *Logger) CorrelationID() string {
	return l.correlationID
}

func (l *Logger) Trace(msg string, fields ...Fields) { l.write(LevelTrace, msg, nil, 0, fields...) }
func (l *Logger) Debug(msg string, fields ...Fields) { l.write(LevelDebug, msg, nil, 0, fields...) }
func (l *Logger) Info(msg string, fields ...Fields) { l.write(LevelInfo, msg, nil, 0, fields...) }
func (l *Logger) Warn(msg string, fields ...Fields) { l.write(LevelWarn, msg, nil, 0, fields...) }
func (l *Logger) Error(msg string, fields ...Fields) { l.write(LevelError, msg, nil, 0, fields...) }

// Audit writes regardless of the minimum level
func (l *Logger) Audit(msg string, fields ...Fields) { l.write(LevelAudit, msg, nil, 0, fields...) }

// LogError writes err as the message. A *slerror.Error adds error_code,
// error_severity, error_operation and error_<detail> fields and picks the
// level from its severity: low is info, medium is warn, anything else is
// error. Other errors are logged at error level.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	var coded *slerror.Error
	if !errors.As(err, &coded) {
		l.write(LevelError, err.Error(), err, 0, fields...)
		return
	}

	ctx := Fields{
		"error_code":     coded.Code().String(),
		"error_severity": coded.Severity().String(),
	}
	if op := coded.Operation(); op != "" {
		ctx["error_operation"] = op
	}
	for k, v := range coded.Details() {
		ctx["error_"+k] = v
	}

	level := LevelError
	switch coded.Severity() {
	case slerror.SeverityLow:
		level = LevelInfo
	case slerror.SeverityMedium:
		level = LevelWarn
	}
	l.write(level, err.Error(), err, 0, append([]Fields{ctx}, fields...)...)
}

// StartTimer starts timing op; see Timer.Stop
func (l *Logger) StartTimer(op string) *Timer {
	return &Timer{
		logger: l,
		op:     op,
		start:  time.Now(),
		level:  LevelDebug,
		fields: Fields{},
	}
}

// Enabled reports whether entries at level are written
func (l *Logger) Enabled(level Level) bool {
	return level.Enabled(l.level)
}

func (l *Logger) write(level Level, msg string, err error, d time.Duration, fields ...Fields) {
	if !l.Enabled(level) || l.out == io.Discard {
		return
	}

	e := &Entry{
		Time:          time.Now(),
		Level:         level,
		Message:       msg,
		Logger:        l.name,
		CorrelationID: l.correlationID,
		Fields:        make(Fields, len(l.fields)),
		Err:           err,
		Duration:      d,
	}
	for k, v := range l.fields {
		e.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			e.Fields[k] = v
		}
	}

	out, ferr := l.formatter.Format(e)
	if ferr != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(out)
}
