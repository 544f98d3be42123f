// Package xform holds small string transformers used to turn raw
// configuration values into typed ones. Each has the shape
// func(A) (B, error) so it can be chained with envutil.Map.
package xform

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotPositive is returned by Positive for zero or negative values.
	ErrNotPositive = errors.New("value must be positive")

	// ErrNotAllowed is returned by OneOf for values outside the allowed set.
	ErrNotAllowed = errors.New("value not allowed")

	// ErrInvalidLogLevel is returned when a log level string is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// TrimString removes leading and trailing whitespace.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// SplitString returns a transformer that splits on sep, trims each part and
// drops empty parts.
func SplitString(sep string) func(string) ([]string, error) {
	return func(s string) ([]string, error) {
		var out []string

		for part := range strings.SplitSeq(s, sep) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}

		return out, nil
	}
}

// Each lifts a transformer to work on every element of a slice. The first
// failure is reported with the index of the offending element.
func Each[A any, B any](f func(A) (B, error)) func([]A) ([]B, error) {
	return func(values []A) ([]B, error) {
		out := make([]B, 0, len(values))

		for i, value := range values {
			converted, err := f(value)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}

			out = append(out, converted)
		}

		return out, nil
	}
}

// Bool parses a string as a boolean.
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Int parses a string as a base-10 int.
func Int(value string) (int, error) {
	return strconv.Atoi(value)
}

// Duration parses a string such as "1m30s" as a time.Duration.
func Duration(value string) (time.Duration, error) {
	return time.ParseDuration(value)
}

// Positive validates that a value is greater than zero.
func Positive[A int | int64 | float64 | time.Duration](value A) (A, error) { //nolint:ireturn
	if value <= 0 {
		return value, fmt.Errorf("%w: %v", ErrNotPositive, value)
	}

	return value, nil
}

// OneOf returns a transformer that only lets the given choices through.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		for _, choice := range choices {
			if value == choice {
				return value, nil
			}
		}

		return value, fmt.Errorf("%w: %v (expected one of %v)", ErrNotAllowed, value, choices)
	}
}

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-sensitive).
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
