// Command sortedvec-bench compares lookups in sortedvec maps and sets with a
// builtin map and a binary search over a sorted slice.
//
// It is configured entirely through the environment; see bench.LoadConfig,
// telemetry.LoadConfig and logger.ConfigureLogging for the variables it
// reads. Spans are exported only when OTEL_ENABLED is set.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/amp-labs/sortedvec/bench"
	"github.com/amp-labs/sortedvec/cli"
	"github.com/amp-labs/sortedvec/logger"
	"github.com/amp-labs/sortedvec/shutdown"
	"github.com/amp-labs/sortedvec/telemetry"
)

func main() {
	logger.ConfigureLogging("sortedvec-bench", logger.WithOutput(os.Stderr))

	if err := run(context.Background(), os.Stdout); err != nil {
		logger.Get().Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	cfg, err := bench.LoadConfig()
	if err != nil {
		return err
	}

	handler := shutdown.NewHandler(ctx)
	defer handler.Stop()

	handler.BeforeShutdown(func() {
		logger.Get(ctx).Warn("interrupted, skipping remaining measurements")
	})

	ctx = logger.WithSubsystem(handler.Context(), "bench")

	otelCfg, err := telemetry.LoadConfig(ctx)
	if err != nil {
		return err
	}

	tracing, err := telemetry.Initialize(ctx, otelCfg)
	if err != nil {
		return err
	}

	defer func() {
		// The run context may already be cancelled; spans still need flushing.
		if err := tracing.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Get(ctx).Warn("flushing spans failed", "error", err)
		}
	}()

	ctx = tracing.Attach(ctx, "sortedvec-bench")
	logger.Get(ctx).Info("starting", "sizes", cfg.Sizes, "lookups", cfg.Lookups,
		"parallelism", cfg.Parallelism)

	results, runErr := bench.NewRunner(cfg).Run(ctx)

	_, _ = fmt.Fprint(out, cli.Heading("sortedvec lookups"))

	table := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight) //nolint:mnd
	_, _ = fmt.Fprintln(table, "structure\tsize\tlookups\thits\tns/lookup\t")

	for _, r := range results {
		_, _ = fmt.Fprintf(table, "%s\t%d\t%d\t%d\t%.1f\t\n",
			r.Structure, r.Size, r.Lookups, r.Hits, r.NsPerLookup())
	}

	if err := table.Flush(); err != nil {
		return err
	}

	return runErr
}
