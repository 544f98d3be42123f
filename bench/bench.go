// Package bench measures lookups in sortedvec maps and sets against a
// builtin map and a plain binary search over a sorted slice.
package bench

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/sortedvec/errors"
	"github.com/amp-labs/sortedvec/logger"
	"github.com/amp-labs/sortedvec/spans"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

// ErrWrongAnswer is returned when a structure disagrees with the expected
// number of lookup hits.
var ErrWrongAnswer = stderrors.New("lookup returned a wrong answer")

// Result is the measurement of one structure at one size.
type Result struct {
	Structure string
	Size      int
	Lookups   int
	Hits      int
	Elapsed   time.Duration
}

// NsPerLookup returns the mean time per lookup in nanoseconds.
func (r Result) NsPerLookup() float64 {
	if r.Lookups == 0 {
		return 0
	}

	return float64(r.Elapsed.Nanoseconds()) / float64(r.Lookups)
}

// Runner executes a benchmark described by a Config.
type Runner struct {
	cfg      Config
	registry *prometheus.Registry
	nsPerOp  *prometheus.GaugeVec
	lookups  *prometheus.CounterVec
	total    *atomic.Int64
	log      *slog.Logger
}

// NewRunner returns a Runner with its own Prometheus registry.
func NewRunner(cfg Config) *Runner {
	registry := prometheus.NewRegistry()

	nsPerOp := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sortedvec_bench_lookup_ns",
		Help: "Mean nanoseconds per lookup",
	}, []string{"structure", "size"})

	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sortedvec_bench_lookups_total",
		Help: "The total number of lookups performed",
	}, []string{"structure"})

	registry.MustRegister(nsPerOp, lookups)

	return &Runner{
		cfg:      cfg,
		registry: registry,
		nsPerOp:  nsPerOp,
		lookups:  lookups,
		total:    atomic.NewInt64(0),
	}
}

// WithLogger makes the runner log to l instead of the logger found in the
// context.
func (r *Runner) WithLogger(l *slog.Logger) *Runner {
	r.log = l

	return r
}

// Registry exposes the metrics recorded by Run.
func (r *Runner) Registry() *prometheus.Registry {
	return r.registry
}

// TotalLookups returns the number of lookups performed so far.
func (r *Runner) TotalLookups() int64 {
	return r.total.Load()
}

// Run measures every structure at every configured size. Results come back
// ordered by size, then by structure name in the order of Structures.
// Measurements that have not started when ctx is cancelled are skipped.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	return spans.RunValue(ctx, "bench.Run", func(ctx context.Context, _ trace.Span) ([]Result, error) {
		return r.run(ctx)
	}, spans.WithAttributes(
		attribute.IntSlice("sizes", r.cfg.Sizes),
		attribute.Int("lookups", r.cfg.Lookups),
		attribute.Int("parallelism", r.cfg.Parallelism),
	))
}

func (r *Runner) run(ctx context.Context) ([]Result, error) {
	type job struct {
		structure string
		size      int
	}

	jobs := make([]job, 0, len(r.cfg.Sizes)*len(Structures))

	for _, size := range r.cfg.Sizes {
		for _, name := range Structures {
			jobs = append(jobs, job{structure: name, size: size})
		}
	}

	pool := pond.NewPool(r.cfg.Parallelism)
	defer pool.StopAndWait()

	results := make([]Result, len(jobs))
	failures := make([]error, len(jobs))
	tasks := make([]pond.Task, 0, len(jobs))

	for i, j := range jobs {
		tasks = append(tasks, pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}

			results[i], failures[i] = r.measure(ctx, j.structure, j.size)
		}))
	}

	var errs errors.Collection

	for _, task := range tasks {
		errs.Add(task.Wait())
	}

	for _, err := range failures {
		errs.Add(err)
	}

	errs.Add(ctx.Err())

	// Drop the measurements skipped after cancellation.
	results = slices.DeleteFunc(results, func(res Result) bool {
		return res.Structure == ""
	})

	if r.cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(r.cfg.MetricsFile, r.registry); err != nil {
			errs.Add(fmt.Errorf("writing metrics: %w", err))
		}
	}

	return results, errs.GetError()
}

// measure times one structure at one size inside a "bench.measure" span
// carrying the structure, size and outcome.
func (r *Runner) measure(ctx context.Context, name string, size int) (Result, error) {
	return spans.RunValue(ctx, "bench.measure", func(ctx context.Context, span trace.Span) (Result, error) {
		result, err := r.timeLookups(ctx, name, size)

		span.SetAttributes(
			attribute.Int("lookups", result.Lookups),
			attribute.Int("hits", result.Hits),
			attribute.Float64("ns_per_lookup", result.NsPerLookup()),
		)

		return result, err
	}, spans.WithAttributes(
		attribute.String("structure", name),
		attribute.Int("size", size),
	))
}

func (r *Runner) timeLookups(ctx context.Context, name string, size int) (Result, error) {
	keys := Keys(size)
	queries := Queries(size, r.cfg.Lookups)

	impl := newStructure(name, r.cfg.ScanLimit)
	impl.load(keys)

	hits := 0
	start := time.Now()

	for _, query := range queries {
		if impl.contains(query) {
			hits++
		}
	}

	elapsed := time.Since(start)

	result := Result{
		Structure: name,
		Size:      size,
		Lookups:   len(queries),
		Hits:      hits,
		Elapsed:   elapsed,
	}

	r.total.Add(int64(len(queries)))
	r.lookups.WithLabelValues(name).Add(float64(len(queries)))
	r.nsPerOp.WithLabelValues(name, strconv.Itoa(size)).Set(result.NsPerLookup())

	r.logFor(ctx).Debug("measured", "structure", name, "size", size,
		"lookups", result.Lookups, "hits", hits, "ns_per_lookup", result.NsPerLookup())

	if want := ExpectedHits(size, r.cfg.Lookups); hits != want {
		return result, fmt.Errorf("%w: %s at size %d found %d of %d", ErrWrongAnswer, name, size, hits, want)
	}

	return result, nil
}

func (r *Runner) logFor(ctx context.Context) *slog.Logger {
	if r.log != nil {
		return r.log
	}

	return logger.Get(ctx)
}

// Keys returns the keys stored in a collection of the given size: the even
// numbers below 2*size, in a scrambled but deterministic order.
func Keys(size int) []int {
	keys := make([]int, size)
	for i := range keys {
		keys[i] = ((i * 7919) % size) * 2 //nolint:mnd
	}

	if size%7919 == 0 { //nolint:mnd
		for i := range keys {
			keys[i] = i * 2 //nolint:mnd
		}
	}

	return keys
}

// Queries returns the keys looked up against a collection of the given size.
// They cycle through [0, 2*size), so about half of them hit.
func Queries(size, lookups int) []int {
	queries := make([]int, lookups)
	if size == 0 {
		return queries
	}

	for i := range queries {
		queries[i] = (i * 31) % (size * 2) //nolint:mnd
	}

	return queries
}

// ExpectedHits returns how many of Queries(size, lookups) are in Keys(size).
func ExpectedHits(size, lookups int) int {
	if size == 0 {
		return 0
	}

	hits := 0

	for _, query := range Queries(size, lookups) {
		if query%2 == 0 {
			hits++
		}
	}

	return hits
}
