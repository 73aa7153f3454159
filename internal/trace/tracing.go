// Package trace wires OpenTelemetry tracing for portal API calls.
// Tracing is opt-in: without OTEL_EXPORTER_OTLP_ENDPOINT in the
// environment nothing is exported and callers get a noop tracer.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Tracing holds an OTLP tracer provider, or nothing when disabled.
type Tracing struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// Init creates an OTLP/HTTP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is
// set. Returns (nil, nil) when the endpoint is not configured; a nil
// *Tracing is valid and hands out noop tracers.
func Init(ctx context.Context, service string) (*Tracing, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		service = name
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(service),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Tracing{
		provider: provider,
		tracer:   provider.Tracer("edudesk/api"),
	}, nil
}

// Tracer returns the configured tracer, or a noop tracer when tracing
// is disabled.
func (t *Tracing) Tracer() trace.Tracer {
	if t == nil {
		return noop.NewTracerProvider().Tracer("edudesk/api")
	}
	return t.tracer
}

// Shutdown flushes and closes the exporter. Safe on a nil receiver.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
