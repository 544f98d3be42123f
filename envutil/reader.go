package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Sentinels wrapped by Reader.Value, so a config loader such as
// bench.LoadConfig can tell a typo from an omission.
var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is a value read from an environment variable, together with whether
// it was set and whether it could be parsed. Transformations and defaults
// are applied with Map and the Options accepted by the constructors.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Key is the variable name, e.g. "BENCH_SIZES".
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the parsed value. The error wraps ErrBadEnvVar when parsing or
// validation failed and ErrEnvVarMissing when the variable is unset and no
// default applies; either way it names the key.
func (e Reader[A]) Value() (A, error) {
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrFatal is Value for main packages: any error is logged and the process
// exits with status 1.
func (e Reader[A]) ValueOrFatal() A {
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// ValueOrElse returns v unless the variable holds a usable value. A parse
// error is logged as a warning before falling back.
func (e Reader[A]) ValueOrElse(v A) A {
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", v)
	}

	return v
}

// HasValue reports whether Value would succeed.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// HasError reports a parse or validation failure. An unset variable is not one.
func (e Reader[A]) HasError() bool {
	return e.err != nil
}

// Error is the unwrapped parse or validation error, or nil.
func (e Reader[A]) Error() error {
	return e.err
}

// String renders KEY=value, KEY=<error: ...> or KEY=<not set> for log lines.
func (e Reader[A]) String() string {
	if e.present && e.err == nil {
		return fmt.Sprintf("%s=%v", e.key, e.value)
	}

	if e.err != nil {
		return fmt.Sprintf("%s=<error: %v>", e.key, e.err)
	}

	return e.key + "=<not set>"
}

// WithDefault returns a Reader holding v if the original Reader has no value.
func (e Reader[A]) WithDefault(v A) Reader[A] {
	if e.present {
		return e
	}

	return Reader[A]{
		key:     e.key,
		present: true,
		err:     e.err,
		value:   v,
	}
}

// Map returns a new Reader with the value transformed by f.
func (e Reader[A]) Map(f func(A) (A, error)) Reader[A] {
	return Map(e, f)
}

// Map returns a new Reader with the value transformed by f. Missing values
// and earlier errors pass through without calling f.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	if !env.present || env.err != nil {
		return Reader[B]{
			key:     env.key,
			present: env.present,
			err:     env.err,
		}
	}

	val, err := f(env.value)

	return Reader[B]{
		key:     env.key,
		present: true,
		err:     err,
		value:   val,
	}
}
