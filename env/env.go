package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrNotSet is returned when a required variable is unset or empty.
var ErrNotSet = errors.New("environment variable not set")

// String returns the variable's raw value and whether it is set. An empty
// value counts as unset.
func String(name string) (string, bool) {
	v := os.Getenv(name)
	return v, v != ""
}

// StringOr returns the variable's raw value, or fallback when unset.
func StringOr(name, fallback string) string {
	if v, ok := String(name); ok {
		return v
	}
	return fallback
}

// Require returns the variable's raw value, failing with ErrNotSet when the
// variable is unset or empty.
func Require(name string) (string, error) {
	v, ok := String(name)
	if !ok {
		return "", fmt.Errorf("env: %s: %w", name, ErrNotSet)
	}
	return v, nil
}

// Int parses the variable as a base-10 integer.
func Int(name string) (int, error) {
	raw, err := Require(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("env: %s=%q: %w", name, raw, err)
	}
	return v, nil
}

// IntOr parses the variable as an integer, returning fallback when unset or
// unparsable.
func IntOr(name string, fallback int) int {
	if v, err := Int(name); err == nil {
		return v
	}
	return fallback
}

// Bool parses the variable with strconv.ParseBool semantics
// (1/t/true/0/f/false, case-insensitive for the word forms).
func Bool(name string) (bool, error) {
	raw, err := Require(name)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("env: %s=%q: %w", name, raw, err)
	}
	return v, nil
}

// BoolOr parses the variable as a bool, returning fallback when unset or
// unparsable.
func BoolOr(name string, fallback bool) bool {
	if v, err := Bool(name); err == nil {
		return v
	}
	return fallback
}

// Float64 parses the variable as a 64-bit float.
func Float64(name string) (float64, error) {
	raw, err := Require(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("env: %s=%q: %w", name, raw, err)
	}
	return v, nil
}

// Float64Or parses the variable as a float, returning fallback when unset or
// unparsable.
func Float64Or(name string, fallback float64) float64 {
	if v, err := Float64(name); err == nil {
		return v
	}
	return fallback
}

// Duration parses the variable with time.ParseDuration (e.g. "1m30s").
func Duration(name string) (time.Duration, error) {
	raw, err := Require(name)
	if err != nil {
		return 0, err
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("env: %s=%q: %w", name, raw, err)
	}
	return v, nil
}

// DurationOr parses the variable as a duration, returning fallback when
// unset or unparsable.
func DurationOr(name string, fallback time.Duration) time.Duration {
	if v, err := Duration(name); err == nil {
		return v
	}
	return fallback
}

// Strings splits the variable on sep, trimming whitespace around each
// element and dropping empty ones. An unset variable yields an empty,
// non-nil slice.
func Strings(name, sep string) []string {
	out := []string{}
	raw, ok := String(name)
	if !ok {
		return out
	}
	for _, part := range strings.Split(raw, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
