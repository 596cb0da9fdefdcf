// File: format.go
// Title: Log Formats
// Description: JSON, text, colored console and logfmt renderings of an
//              Entry. Text formats write fields in key order.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-15 v0.2.0: Sorted field output so traces diff cleanly
// - 2026-10-15 v0.3.0: Console is colored text; formatters built from Format only

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	slerror "github.com/msto63/strlist/pkg/core/error"
)

// Format selects a Formatter
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole
	FormatLogfmt
)

var formatNames = [...]string{"json", "text", "console", "logfmt"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat accepts json, text, console or logfmt in any case
func ParseFormat(s string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range formatNames {
		if want == name {
			return Format(i), nil
		}
	}
	return FormatJSON, slerror.New(fmt.Sprintf("invalid format: %s", s)).
		WithCode(slerror.CodeInvalidFormat).
		WithOperation("log.ParseFormat")
}

// Formatter renders one entry, including the trailing newline
type Formatter interface {
	Format(e *Entry) ([]byte, error)
}

// NewFormatter returns the formatter for f. Unknown values give JSON.
func NewFormatter(f Format) Formatter {
	switch f {
	case FormatText:
		return &textFormatter{timeLayout: "15:04:05"}
	case FormatConsole:
		return &textFormatter{timeLayout: "15:04:05", color: true}
	case FormatLogfmt:
		return &logfmtFormatter{timeLayout: time.RFC3339}
	default:
		return &jsonFormatter{timeLayout: time.RFC3339}
	}
}

type jsonFormatter struct {
	timeLayout string
}

func (f *jsonFormatter) Format(e *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(e.Fields)+7)
	for k, v := range e.Fields {
		data[k] = v
	}

	data["timestamp"] = e.Time.Format(f.timeLayout)
	data["level"] = e.Level.String()
	data["message"] = e.Message
	if e.Logger != "" {
		data["logger"] = e.Logger
	}
	if e.CorrelationID != "" {
		data["correlation_id"] = e.CorrelationID
	}
	if e.Err != nil {
		data["error"] = e.Err.Error()
	}
	if e.Duration > 0 {
		data["duration_ms"] = millis(e.Duration)
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// textFormatter writes
//
//	15:04:05 [TRC] {name} (list=1234abcd) message [k=v ...] error="..." duration=1ms
type textFormatter struct {
	timeLayout string
	noTime     bool
	color      bool
}

func (f *textFormatter) Format(e *Entry) ([]byte, error) {
	var b strings.Builder

	if f.color {
		b.WriteString(e.Level.info().color)
	}
	if !f.noTime {
		b.WriteString(e.Time.Format(f.timeLayout))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s] ", e.Level.info().short)
	if e.Logger != "" {
		fmt.Fprintf(&b, "{%s} ", e.Logger)
	}
	if id := e.CorrelationID; id != "" {
		fmt.Fprintf(&b, "(list=%s) ", id[:min(len(id), 8)])
	}
	b.WriteString(e.Message)

	if len(e.Fields) > 0 {
		pairs := make([]string, 0, len(e.Fields))
		for _, k := range e.Fields.sortedKeys() {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.Fields[k]))
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(pairs, " "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " error=%q", e.Err.Error())
	}
	if e.Duration > 0 {
		fmt.Fprintf(&b, " duration=%s", e.Duration)
	}
	if f.color {
		b.WriteString(colorReset)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

type logfmtFormatter struct {
	timeLayout string
	noTime     bool
}

func (f *logfmtFormatter) Format(e *Entry) ([]byte, error) {
	var pairs []string
	add := func(k string, v interface{}) {
		if s, ok := v.(string); ok && k != "level" && k != "timestamp" {
			pairs = append(pairs, fmt.Sprintf("%s=%q", k, s))
			return
		}
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}

	if !f.noTime {
		add("timestamp", e.Time.Format(f.timeLayout))
	}
	add("level", e.Level.String())
	add("message", e.Message)
	if e.Logger != "" {
		add("logger", e.Logger)
	}
	if e.CorrelationID != "" {
		add("correlation_id", e.CorrelationID)
	}
	for _, k := range e.Fields.sortedKeys() {
		add(k, e.Fields[k])
	}
	if e.Err != nil {
		add("error", e.Err.Error())
	}
	if e.Duration > 0 {
		pairs = append(pairs, fmt.Sprintf("duration_ms=%.3f", millis(e.Duration)))
	}

	return []byte(strings.Join(pairs, " ") + "\n"), nil
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
