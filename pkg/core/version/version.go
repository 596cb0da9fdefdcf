// ============================================================================
// strlist - Growable string list
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library is the version of the strlist package
	Library = "1.0.0"

	// CLI is the version of the strlist command
	CLI = "1.0.0"
)

// Set via -ldflags at build time.
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info returns a multi-line build description
func Info() string {
	return fmt.Sprintf("strlist v%s\n  Library:    v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		CLI, Library, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
