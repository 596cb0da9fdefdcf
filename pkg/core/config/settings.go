// File: settings.go
// Title: Application Settings
// Description: Typed settings for the strlist tools, decoded from a Config
//              with defaults, environment overrides and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"strings"

	slerror "github.com/msto63/strlist/pkg/core/error"
)

// EnvPrefix is the environment variable prefix for all settings,
// e.g. STRLIST_TRACE_MESSAGES=true.
const EnvPrefix = "STRLIST"

// Settings holds the complete application configuration
type Settings struct {
	Log   LogSettings   `toml:"log" yaml:"log"`
	Trace TraceSettings `toml:"trace" yaml:"trace"`
	List  ListSettings  `toml:"list" yaml:"list"`
}

// LogSettings holds logger settings
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// TraceSettings toggles the diagnostic trace categories
type TraceSettings struct {
	Enabled  bool `toml:"enabled" yaml:"enabled"`
	Messages bool `toml:"messages" yaml:"messages"`
	Errors   bool `toml:"errors" yaml:"errors"`
	Tests    bool `toml:"tests" yaml:"tests"`
}

// ListSettings holds list construction defaults
type ListSettings struct {
	InitialCapacity int   `toml:"initial_capacity" yaml:"initial_capacity"`
	Seed            int64 `toml:"seed" yaml:"seed"`
	Seeded          bool  `toml:"-" yaml:"-"`
}

// Defaults returns the default values in the nested map form used by
// LoadOptions.Defaults.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "info",
			"format": "text",
		},
		"trace": map[string]interface{}{
			"enabled":  false,
			"messages": true,
			"errors":   true,
			"tests":    true,
		},
		"list": map[string]interface{}{
			"initial_capacity": 10,
		},
	}
}

// Rules returns the validation rules for the known keys
func Rules() ValidationRules {
	return ValidationRules{
		"log.level":             {Type: "string", Pattern: `^(?i)(trace|debug|info|warn|error|audit)$`},
		"log.format":            {Type: "string", Pattern: `^(?i)(json|text|console|logfmt)$`},
		"trace.enabled":         {Type: "bool"},
		"trace.messages":        {Type: "bool"},
		"trace.errors":          {Type: "bool"},
		"trace.tests":           {Type: "bool"},
		"list.initial_capacity": {Required: true, Type: "int", Min: AtLeast(1)},
		"list.seed":             {Type: "int", Min: AtLeast(0)},
	}
}

// LoadSettings loads settings from the given file, or from defaults and
// environment only when path is blank.
func LoadSettings(path string) (*Settings, error) {
	var cfg *Config
	if strings.TrimSpace(path) == "" {
		cfg = FromDefaults(Defaults(), EnvPrefix)
	} else {
		var err error
		cfg, err = Load(path, LoadOptions{
			EnvPrefix: EnvPrefix,
			Defaults:  Defaults(),
		})
		if err != nil {
			return nil, err
		}
	}
	return Decode(cfg)
}

// Decode validates cfg and converts it into Settings
func Decode(cfg *Config) (*Settings, error) {
	if result := cfg.Validate(Rules()); !result.Valid {
		return nil, slerror.New("invalid configuration").
			WithCode(slerror.CodeInvalidConfig).
			WithOperation("config.Decode").
			WithDetail("errors", strings.Join(result.Errors, "; "))
	}

	s := &Settings{
		Log: LogSettings{
			Level:  strings.ToLower(cfg.GetString("log.level", "info")),
			Format: strings.ToLower(cfg.GetString("log.format", "text")),
		},
		Trace: TraceSettings{
			Enabled:  cfg.GetBool("trace.enabled"),
			Messages: cfg.GetBool("trace.messages", true),
			Errors:   cfg.GetBool("trace.errors", true),
			Tests:    cfg.GetBool("trace.tests", true),
		},
		List: ListSettings{
			InitialCapacity: cfg.GetInt("list.initial_capacity", 10),
			Seed:            cfg.GetInt64("list.seed"),
			Seeded:          cfg.IsSet("list.seed"),
		},
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks values that may have come from the environment and
// bypassed rule validation.
func (s *Settings) Validate() error {
	if s.List.InitialCapacity < 1 {
		return slerror.New(fmt.Sprintf("list.initial_capacity must be at least 1, got %d", s.List.InitialCapacity)).
			WithCode(slerror.CodeValueOutOfRange).
			WithOperation("config.Settings.Validate").
			WithDetail("key", "list.initial_capacity")
	}

	if s.List.Seed < 0 {
		return slerror.New(fmt.Sprintf("list.seed must not be negative, got %d", s.List.Seed)).
			WithCode(slerror.CodeValueOutOfRange).
			WithOperation("config.Settings.Validate").
			WithDetail("key", "list.seed")
	}

	switch s.Log.Format {
	case "json", "text", "console", "logfmt":
	default:
		return slerror.New(fmt.Sprintf("unknown log format: %s", s.Log.Format)).
			WithCode(slerror.CodeInvalidFormat).
			WithOperation("config.Settings.Validate").
			WithDetail("key", "log.format")
	}

	switch s.Log.Level {
	case "trace", "debug", "info", "warn", "error", "audit":
	default:
		return slerror.New(fmt.Sprintf("unknown log level: %s", s.Log.Level)).
			WithCode(slerror.CodeInvalidInput).
			WithOperation("config.Settings.Validate").
			WithDetail("key", "log.level")
	}

	return nil
}
