// File: error.go
// Title: Coded Error Type
// Description: Error carries a code, a severity derived from it, the failing
//              operation and key-value details. Errors unwrap to their cause
//              and match each other by code through errors.Is.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-15 v0.2.0: Code-based Is matching
// - 2026-10-15 v0.3.0: Dropped stack capture, timestamps and chain truncation

package error

import (
	"errors"
	"fmt"
)

// Error is a failure raised by a strlist package
type Error struct {
	msg      string
	cause    error
	code     Code
	severity Severity
	op       string
	details  map[string]interface{}
}

// New returns an error with CodeUnknown and medium severity
func New(message string) *Error {
	return &Error{
		msg:      message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  map[string]interface{}{},
	}
}

// Wrap annotates err with message. A wrapped *Error passes on its code,
// severity, operation and details. Wrap(nil, ...) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	w := New(message)
	w.cause = err

	var inner *Error
	if errors.As(err, &inner) {
		w.code = inner.code
		w.severity = inner.severity
		w.op = inner.op
		for k, v := range inner.details {
			w.details[k] = v
		}
	}
	return w
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same code. CodeUnknown never matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code != CodeUnknown && t.code == e.code
}

// WithCode sets the code. A severity still at its default follows the code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = severityOf(code)
	}
	return e
}

// WithOperation records the failing operation, e.g. "strlist.Insert"
func (e *Error) WithOperation(op string) *Error {
	e.op = op
	return e
}

// WithDetail attaches one key-value detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

func (e *Error) Code() Code {
	return e.code
}

func (e *Error) Severity() Severity {
	return e.severity
}

func (e *Error) Operation() string {
	return e.op
}

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// Detail looks up one detail
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// HasCode reports whether err or anything it wraps carries code
func HasCode(err error, code Code) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok && e.code == code {
			return true
		}
	}
	return false
}
