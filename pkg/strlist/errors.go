// File: errors.go
// Title: List Errors
// Description: Sentinel errors and constructors for list failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strlist

import (
	"fmt"

	slerror "github.com/msto63/strlist/pkg/core/error"
)

// Sentinels for use with errors.Is. Matching is by error code, so every
// error returned by this package matches exactly one of them.
var (
	ErrInvalidCapacity  = slerror.New("invalid capacity").WithCode(slerror.CodeInvalidCapacity)
	ErrIndexOutOfBounds = slerror.New("index out of bounds").WithCode(slerror.CodeIndexOutOfBounds)
	ErrListReleased     = slerror.New("list released").WithCode(slerror.CodeListReleased)
)

func capacityError(capacity int) error {
	return slerror.New(fmt.Sprintf("cannot create list of capacity %d", capacity)).
		WithCode(slerror.CodeInvalidCapacity).
		WithOperation("strlist.New").
		WithDetail("capacity", capacity)
}

// indexError reports index outside [0, bound). bound is size for reads,
// writes and removals and size+1 for insertion.
func indexError(op string, index, size, bound int) error {
	return slerror.New(fmt.Sprintf("index %d out of bounds", index)).
		WithCode(slerror.CodeIndexOutOfBounds).
		WithOperation("strlist." + op).
		WithDetail("index", index).
		WithDetail("size", size).
		WithDetail("bound", bound)
}

func releasedError(op string) error {
	return slerror.New("list used after Free").
		WithCode(slerror.CodeListReleased).
		WithOperation("strlist." + op)
}
