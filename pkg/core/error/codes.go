// File: codes.go
// Title: Error Codes
// Description: Codes raised by the list container, the configuration layer
//              and the command-line tools.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Added list container codes, dropped service codes
// - 2026-10-15 v0.3.0: Dropped categories and exit codes

package error

// Code identifies the kind of failure
type Code string

const (
	CodeUnknown      Code = "UNKNOWN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// List container
	CodeInvalidCapacity  Code = "INVALID_CAPACITY"
	CodeIndexOutOfBounds Code = "INDEX_OUT_OF_BOUNDS"
	CodeListReleased     Code = "LIST_RELEASED"

	// Configuration
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

func (c Code) String() string {
	return string(c)
}
