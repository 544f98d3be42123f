// Package spans runs units of work inside OpenTelemetry spans.
//
// The tracer travels in the context. When a context carries no tracer the
// work still runs, just without a span, so callers never need to check.
//
//	ctx = spans.WithTracer(ctx, provider.Tracer("bench"))
//
//	err := spans.Run(ctx, "bench.measure", func(ctx context.Context, span trace.Span) error {
//	    span.SetAttributes(attribute.Int("hits", hits))
//	    return nil
//	}, spans.WithAttributes(attribute.String("structure", name)))
package spans

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const tracerKey contextKey = "tracer"

// WithTracer stores tracer in the context for Run and RunValue.
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, tracerKey, tracer)
}

// TracerFromContext returns the tracer stored by WithTracer.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	tracer, ok := ctx.Value(tracerKey).(trace.Tracer)

	return tracer, ok && tracer != nil
}

// Option configures the span started by Run.
type Option func(*runner)

// WithAttributes sets attributes on the span when it starts.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(r *runner) {
		r.start = append(r.start, trace.WithAttributes(attrs...))
	}
}

// WithSpanKind overrides the default kind, SpanKindInternal.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.kind = kind
	}
}

type runner struct {
	kind  trace.SpanKind
	start []trace.SpanStartOption
}

// Run calls op inside a span named name. An error from op is recorded on the
// span and its status set to Error; otherwise the status is Ok. If op panics
// the span is marked and ended before the panic continues.
func Run(ctx context.Context, name string, op func(ctx context.Context, span trace.Span) error, opts ...Option) error {
	_, err := RunValue(ctx, name, func(ctx context.Context, span trace.Span) (struct{}, error) {
		return struct{}{}, op(ctx, span)
	}, opts...)

	return err
}

// RunValue is Run for work that produces a value.
func RunValue[T any](
	ctx context.Context,
	name string,
	op func(ctx context.Context, span trace.Span) (T, error),
	opts ...Option,
) (T, error) {
	tracer, found := TracerFromContext(ctx)
	if !found {
		return op(ctx, trace.SpanFromContext(ctx))
	}

	r := &runner{kind: trace.SpanKindInternal}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	ctx, span := tracer.Start(ctx, name, append(r.start, trace.WithSpanKind(r.kind))...)
	defer span.End()

	defer func() {
		if recovered := recover(); recovered != nil {
			span.SetAttributes(attribute.Bool("panic", true))
			span.SetStatus(codes.Error, fmt.Sprintf("panic: %v", recovered))

			panic(recovered)
		}
	}()

	value, err := op(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "ok")
	}

	return value, err
}
