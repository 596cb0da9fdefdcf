// File: validation.go
// Title: Configuration Validation
// Description: Declarative rules for config values: presence, type, a
//              numeric minimum and a string pattern.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-15 v0.2.0: Validation no longer rewrites values; rules are
//                      checked in key order
// - 2026-10-15 v0.3.0: Typed minimum, dropped maximum and reflection

package config

import (
	"fmt"
	"regexp"
	"sort"
)

// ValidationRule describes the acceptable values of one key
type ValidationRule struct {
	Required bool
	Type     string // "string", "int" or "bool"
	Min      *int64 // lower bound for ints
	Pattern  string // regexp a string must match
}

// ValidationRules maps dot-notation keys to rules
type ValidationRules map[string]ValidationRule

// ValidationResult lists one message per failing key, in key order
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// AtLeast returns a pointer for ValidationRule.Min
func AtLeast(n int64) *int64 {
	return &n
}

// Validate checks the file and default values against rules. Environment
// overrides are not seen here.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := &ValidationResult{Valid: true}
	for _, k := range keys {
		if err := check(k, c.value(k), rules[k]); err != nil {
			res.Valid = false
			res.Errors = append(res.Errors, err.Error())
		}
	}
	return res
}

func check(key string, v interface{}, rule ValidationRule) error {
	if v == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "":
	case "string":
		if _, ok := v.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, v)
		}
	case "bool":
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, v)
		}
	case "int":
		if _, ok := asInt(v); !ok {
			return fmt.Errorf("field '%s' must be an integer, got %v", key, v)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}

	if rule.Min != nil {
		if n, ok := asInt(v); ok && n < *rule.Min {
			return fmt.Errorf("field '%s' value %d is less than minimum %d", key, n, *rule.Min)
		}
	}

	if rule.Pattern != "" {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("field '%s' pattern validation requires string value", key)
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
		}
		if !re.MatchString(s) {
			return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, s, rule.Pattern)
		}
	}
	return nil
}

// asInt accepts the integer types the TOML and YAML decoders produce and
// whole floats.
func asInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), n == float64(int64(n))
	}
	return 0, false
}
