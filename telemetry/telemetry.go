// Package telemetry exports benchmark spans over OTLP/HTTP. Export is opt-in:
// nothing is set up unless OTEL_ENABLED is true and a traces endpoint is
// configured, so a plain run stays a one-shot local tool.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/amp-labs/sortedvec/envutil"
	"github.com/amp-labs/sortedvec/errors"
	"github.com/amp-labs/sortedvec/logger"
	"github.com/amp-labs/sortedvec/spans"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second
)

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
	Timeout        time.Duration
}

// LoadConfig reads OTEL_ENABLED, OTEL_SERVICE_NAME, OTEL_SERVICE_VERSION,
// OTEL_EXPORTER_OTLP_TRACES_ENDPOINT and OTEL_EXPORTER_OTLP_TRACES_TIMEOUT.
// The service name defaults to the subsystem stored in ctx.
func LoadConfig(ctx context.Context) (Config, error) {
	var errs errors.Collection

	cfg := Config{}

	var err error

	cfg.Enabled, err = envutil.Bool("OTEL_ENABLED", envutil.Default(false)).Value()
	errs.Add(err)

	cfg.ServiceName, err = envutil.String("OTEL_SERVICE_NAME", envutil.Default(logger.GetSubsystem(ctx))).Value()
	errs.Add(err)

	cfg.ServiceVersion, err = envutil.String("OTEL_SERVICE_VERSION", envutil.Default(defaultServiceVersion)).Value()
	errs.Add(err)

	cfg.Endpoint, err = envutil.String("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", envutil.Default("")).Value()
	errs.Add(err)

	cfg.Timeout, err = envutil.Duration("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT", envutil.Default(defaultTimeout)).Value()
	errs.Add(err)

	if err := errs.GetError(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Tracing owns the tracer provider set up by Initialize. A disabled Tracing
// is valid: Attach leaves the context alone and Shutdown does nothing.
type Tracing struct {
	provider *sdktrace.TracerProvider
}

// Initialize sets up OTLP trace export for cfg and installs the provider as
// the global one.
func Initialize(ctx context.Context, cfg Config) (*Tracing, error) {
	log := logger.Get(ctx)

	if !cfg.Enabled {
		log.Debug("OpenTelemetry tracing is disabled")

		return &Tracing{}, nil
	}

	if cfg.Endpoint == "" {
		log.Warn("OpenTelemetry endpoint not configured, tracing will be disabled")

		return &Tracing{}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
		otlptracehttp.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("service.version", cfg.ServiceVersion),
		)),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("OpenTelemetry tracing initialized",
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"endpoint", cfg.Endpoint,
	)

	return &Tracing{provider: provider}, nil
}

// Enabled reports whether spans are being exported.
func (t *Tracing) Enabled() bool {
	return t != nil && t.provider != nil
}

// Attach stores a tracer named name in ctx, for use by the spans package.
func (t *Tracing) Attach(ctx context.Context, name string) context.Context {
	if !t.Enabled() {
		return ctx
	}

	return spans.WithTracer(ctx, t.provider.Tracer(name))
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if !t.Enabled() {
		return nil
	}

	logger.Get(ctx).Debug("shutting down OpenTelemetry tracer provider")

	return t.provider.Shutdown(ctx)
}
