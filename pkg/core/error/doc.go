// Package error provides the coded error type shared by the strlist
// packages.
//
// An Error is built with a chain of setters and matched by code, so a
// package-level sentinel matches every error raised with its code:
//
//	import slerror "github.com/msto63/strlist/pkg/core/error"
//
//	var ErrIndexOutOfBounds = slerror.New("index out of bounds").
//		WithCode(slerror.CodeIndexOutOfBounds)
//
//	err := slerror.New("index 11 out of bounds").
//		WithCode(slerror.CodeIndexOutOfBounds).
//		WithOperation("strlist.Insert").
//		WithDetail("index", 11)
//
//	errors.Is(err, ErrIndexOutOfBounds) // true
package error
