package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/shinyvision/phpindex"

// NewTracerProvider builds an sdktrace.TracerProvider with no exporter
// wired by default; callers that want spans shipped somewhere register
// a processor with sdktrace.WithBatcher before calling
// otel.SetTracerProvider.
func NewTracerProvider(opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(opts...)
}

// RunID is a per-run correlation identifier attached to the run's root
// span and to log lines for one indexing run.
type RunID string

// NewRunID mints a fresh correlation ID for one indexing run.
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

// StartRun opens the root span for one indexing run, tagging it with
// runID so downstream spans and log lines can be correlated.
func StartRun(ctx context.Context, runID RunID) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "phpindex.run")
	span.SetAttributes(attribute.String("phpindex.run_id", string(runID)))
	return ctx, span
}

// StartFile opens a child span for indexing a single file.
func StartFile(ctx context.Context, uri string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "phpindex.index_file")
	span.SetAttributes(attribute.String("phpindex.uri", uri))
	return ctx, span
}
