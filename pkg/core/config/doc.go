// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for the config package.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2026-10-15 v0.2.0: Settings and environment prefix
// - 2026-10-15 v0.3.0: Read-only Config

// Package config loads strlist configuration from TOML or YAML files.
//
// The format is detected from the file extension (.yaml/.yml select YAML,
// anything else TOML). Values are read with dot-notation keys. Defaults
// sit below the file and every getter checks the environment first, so with the STRLIST prefix the key
// trace.messages is overridden by STRLIST_TRACE_MESSAGES.
//
// Most callers only need LoadSettings:
//
//	settings, err := config.LoadSettings(path)
//	if err != nil {
//		return err
//	}
//	list, err := strlist.New(settings.List.InitialCapacity)
//
// A minimal file:
//
//	[log]
//	level = "debug"
//	format = "console"
//
//	[trace]
//	enabled = true
//	messages = false
//
//	[list]
//	initial_capacity = 16
//	seed = 7
package config
