// Package envutil reads typed configuration from environment variables.
package envutil

import (
	"log/slog"
	"os"
	"time"

	"github.com/amp-labs/sortedvec/xform"
)

// get returns a Reader for the given environment variable key.
// Variables set to the empty string count as unset.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok && val != "",
		value:   val,
	}
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(key), xform.TrimString), opts)
}

// Bool returns a Reader which parses the variable with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(Map(get(key), xform.TrimString), xform.Bool), opts)
}

// Int returns a Reader which parses the variable as a base-10 int.
func Int(key string, opts ...Option[int]) Reader[int] {
	return apply(Map(Map(get(key), xform.TrimString), xform.Int), opts)
}

// IntSlice returns a Reader which parses a comma separated list of ints,
// such as "8,64,1024".
func IntSlice(key string, opts ...Option[[]int]) Reader[[]int] {
	return apply(Map(Map(get(key), xform.SplitString(",")), xform.Each(xform.Int)), opts)
}

// Duration returns a Reader which parses the variable with time.ParseDuration.
func Duration(key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(Map(get(key), xform.TrimString), xform.Duration), opts)
}

// SlogLevel returns a Reader which parses "debug", "info", "warn" or "error",
// ignoring case.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(Map(get(key), xform.TrimString), xform.ToLower), xform.SlogLevel), opts)
}
