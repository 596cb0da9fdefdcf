// File: config.go
// Title: Configuration Loading
// Description: Config reads a TOML or YAML file into a tree of values
//              addressed by dot-notation keys. Defaults sit below the file
//              and environment variables sit above it.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Nested defaults merge, dropped file watching
// - 2026-10-15 v0.3.0: Read-only Config; single Load entry point

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	slerror "github.com/msto63/strlist/pkg/core/error"
)

// Format is the syntax of a config file
type Format int

const (
	FormatAuto Format = iota // from the extension: .yaml/.yml, else TOML
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

type tree = map[string]interface{}

// Config is a loaded configuration. It is read-only and safe for
// concurrent use.
type Config struct {
	data      tree
	envPrefix string
}

// LoadOptions controls Load
type LoadOptions struct {
	Format    Format
	EnvPrefix string // STRLIST makes STRLIST_LIST_SEED override list.seed
	Defaults  tree   // nested like the file; file values win key by key
}

// Load reads the file at path. Errors carry CodeValidationFailed for a
// blank path, CodeNotFound for a missing file, CodeConfigError when the
// file cannot be read and CodeInvalidFormat when it cannot be parsed.
func Load(path string, opts LoadOptions) (*Config, error) {
	const op = "config.Load"

	if strings.TrimSpace(path) == "" {
		return nil, slerror.New("config file path cannot be empty").
			WithCode(slerror.CodeValidationFailed).
			WithOperation(op)
	}

	content, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return nil, slerror.New(fmt.Sprintf("config file not found: %s", path)).
			WithCode(slerror.CodeNotFound).
			WithOperation(op).
			WithDetail("path", path)
	case err != nil:
		return nil, slerror.Wrap(err, "failed to read config file").
			WithCode(slerror.CodeConfigError).
			WithOperation(op).
			WithDetail("path", path)
	}

	format := opts.Format
	if format == FormatAuto {
		format = formatOf(path)
	}

	data := tree{}
	if format == FormatYAML {
		err = yaml.Unmarshal(content, &data)
	} else {
		err = toml.Unmarshal(content, &data)
	}
	if err != nil {
		return nil, slerror.Wrap(err, "failed to parse config file").
			WithCode(slerror.CodeInvalidFormat).
			WithOperation(op).
			WithDetail("path", path).
			WithDetail("format", format.String())
	}

	return &Config{data: layer(opts.Defaults, data), envPrefix: opts.EnvPrefix}, nil
}

// FromDefaults returns a Config holding only defaults, still subject to
// environment overrides.
func FromDefaults(defaults tree, envPrefix string) *Config {
	return &Config{data: layer(defaults, nil), envPrefix: envPrefix}
}

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// layer returns a new tree with top over base, merging nested tables.
// Neither input is modified.
func layer(base, top tree) tree {
	out := make(tree, len(base)+len(top))
	for k, v := range base {
		if sub, ok := v.(tree); ok {
			v = layer(sub, nil)
		}
		out[k] = v
	}
	for k, v := range top {
		sub, isTable := v.(tree)
		under, hasTable := out[k].(tree)
		switch {
		case isTable && hasTable:
			out[k] = layer(under, sub)
		case isTable:
			out[k] = layer(nil, sub)
		default:
			out[k] = v
		}
	}
	return out
}

// value returns the file or default value at a dot-notation key
func (c *Config) value(key string) interface{} {
	node := c.data
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		sub, ok := node[p].(tree)
		if !ok {
			return nil
		}
		node = sub
	}
	return node[parts[len(parts)-1]]
}

// envKey maps trace.messages to PREFIX_TRACE_MESSAGES
func (c *Config) envKey(key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix == "" {
		return name
	}
	return strings.ToUpper(c.envPrefix) + "_" + name
}

func (c *Config) env(key string) (string, bool) {
	v := os.Getenv(c.envKey(key))
	return v, v != ""
}

// IsSet reports whether key has a value in the environment, the file or
// the defaults.
func (c *Config) IsSet(key string) bool {
	_, ok := c.env(key)
	return ok || c.value(key) != nil
}

// GetString returns key as a string, or def (or "") when unset
func (c *Config) GetString(key string, def ...string) string {
	if v, ok := c.env(key); ok {
		return v
	}
	switch v := c.value(key).(type) {
	case nil:
		return first(def)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// GetInt returns key as an int, or def (or 0) when unset or not a number
func (c *Config) GetInt(key string, def ...int) int {
	n, ok := c.integer(key)
	if !ok {
		return first(def)
	}
	return int(n)
}

// GetInt64 is GetInt for 64-bit values
func (c *Config) GetInt64(key string, def ...int64) int64 {
	n, ok := c.integer(key)
	if !ok {
		return first(def)
	}
	return n
}

// GetBool returns key as a bool, or def (or false) when unset or not a bool
func (c *Config) GetBool(key string, def ...bool) bool {
	raw, ok := c.env(key)
	if !ok {
		switch v := c.value(key).(type) {
		case bool:
			return v
		case string:
			raw = v
		}
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return first(def)
}

func (c *Config) integer(key string) (int64, bool) {
	if raw, ok := c.env(key); ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		return n, err == nil
	}
	v := c.value(key)
	if s, ok := v.(string); ok {
		n, err := strconv.ParseInt(s, 10, 64)
		return n, err == nil
	}
	return asInt(v)
}

func first[T any](def []T) T {
	var zero T
	if len(def) == 0 {
		return zero
	}
	return def[0]
}
