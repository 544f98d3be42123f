package maps

import (
	"fmt"

	"github.com/amp-labs/sortedvec/errors"
)

// Option configures a Map at construction time.
type Option func(*config)

type config struct {
	capacity  int
	scanLimit int
	scanSet   bool
	keyClone  any
}

// WithCapacity preallocates room for n fields.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = max(n, 0)
	}
}

// WithScanLimit sets the window width at or below which lookups switch from
// bisection to a linear scan. Zero means pure bisection. The value only affects
// speed, never results.
func WithScanLimit(n int) Option {
	return func(c *config) {
		c.scanLimit = max(n, 0)
		c.scanSet = true
	}
}

// WithKeyClone registers a function which produces an owned copy of a key.
// Keys passed to Map.Entry are only cloned when a vacant entry actually
// inserts them, so lookups of existing keys never pay for the copy. Keys
// copied from another map during a merge are cloned as well.
//
// This is useful for keys which alias caller memory, such as []byte.
func WithKeyClone[K any](clone func(K) K) Option {
	return func(c *config) {
		c.keyClone = clone
	}
}

func buildConfig(opts []Option) config {
	var cfg config

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func keyCloneFor[K any](cfg config) func(K) K {
	if cfg.keyClone == nil {
		return nil
	}

	clone, ok := cfg.keyClone.(func(K) K)
	if !ok {
		var key K

		panic(fmt.Errorf("%w: key clone is %T, map key is %T", errors.ErrWrongType, cfg.keyClone, key))
	}

	return clone
}
