package bench

import (
	"github.com/amp-labs/sortedvec/envutil"
	"github.com/amp-labs/sortedvec/errors"
	"github.com/amp-labs/sortedvec/xform"
)

const (
	defaultLookups     = 100_000
	defaultParallelism = 4
)

// DefaultSizes are the collection sizes measured when BENCH_SIZES is unset.
var DefaultSizes = []int{8, 32, 128, 512, 2048} //nolint:gochecknoglobals

// Config controls a benchmark run.
type Config struct {
	// Sizes lists the number of keys stored in each measured collection.
	Sizes []int

	// Lookups is the number of lookups timed per collection.
	Lookups int

	// Parallelism bounds how many measurements run at once.
	Parallelism int

	// ScanLimit overrides the map's linear scan window. Negative keeps the default.
	ScanLimit int

	// MetricsFile, when set, receives the results in Prometheus text format.
	MetricsFile string
}

// LoadConfig reads the configuration from BENCH_SIZES, BENCH_LOOKUPS,
// BENCH_PARALLELISM, BENCH_SCAN_LIMIT and BENCH_METRICS_FILE. Every invalid
// variable is reported, not just the first.
func LoadConfig() (Config, error) {
	var errs errors.Collection

	positive := func(v int) error {
		_, err := xform.Positive(v)

		return err
	}

	allPositive := func(values []int) error {
		for _, v := range values {
			if err := positive(v); err != nil {
				return err
			}
		}

		return nil
	}

	sizes := envutil.IntSlice("BENCH_SIZES", envutil.Default(DefaultSizes), envutil.Validate(allPositive))
	lookups := envutil.Int("BENCH_LOOKUPS", envutil.Default(defaultLookups), envutil.Validate(positive))
	parallelism := envutil.Int("BENCH_PARALLELISM", envutil.Default(defaultParallelism), envutil.Validate(positive))
	scanLimit := envutil.Int("BENCH_SCAN_LIMIT", envutil.Default(-1))
	metricsFile := envutil.String("BENCH_METRICS_FILE", envutil.Default(""))

	cfg := Config{}

	var err error

	cfg.Sizes, err = sizes.Value()
	errs.Add(err)

	cfg.Lookups, err = lookups.Value()
	errs.Add(err)

	cfg.Parallelism, err = parallelism.Value()
	errs.Add(err)

	cfg.ScanLimit, err = scanLimit.Value()
	errs.Add(err)

	cfg.MetricsFile, err = metricsFile.Value()
	errs.Add(err)

	return cfg, errs.GetError()
}
