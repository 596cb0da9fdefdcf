// File: severity.go
// Title: Error Severity
// Description: Severity of an error. The logger picks the log level of a
//              reported error from it.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-15 v0.2.0: Severity table for container codes
// - 2026-10-15 v0.3.0: Severity is derived from the code only

package error

// Severity orders errors by impact
type Severity int

const (
	// SeverityLow is a caller mistake that leaves stored data untouched,
	// e.g. an out-of-range index
	SeverityLow Severity = iota
	SeverityMedium
	// SeverityHigh stops a component from starting or the list from being used
	SeverityHigh
)

var severityNames = [...]string{"low", "medium", "high"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

func severityOf(code Code) Severity {
	switch code {
	case CodeConfigError, CodeInvalidConfig, CodeListReleased:
		return SeverityHigh
	case CodeUnknown:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
