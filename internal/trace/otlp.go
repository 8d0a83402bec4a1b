package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	// EndpointEnv enables export when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides DefaultServiceName.
	ServiceNameEnv     = "OTEL_SERVICE_NAME"
	DefaultServiceName = "cleanselect"
)

// NewProvider creates a tracer provider that batches spans to an OTLP/HTTP
// endpoint. The exporter connects lazily, so an unreachable endpoint is not
// an error here.
func NewProvider(ctx context.Context, endpoint, serviceName string) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local collectors
	)
	if err != nil {
		return nil, err
	}

	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// Setup installs an OTLP tracer provider as the global provider when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Otherwise the global no-op provider is
// left in place. The returned shutdown flushes pending spans and is always
// safe to call.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil // Disabled
	}

	provider, err := NewProvider(ctx, endpoint, os.Getenv(ServiceNameEnv))
	if err != nil {
		return nil, err
	}
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)

	return func(ctx context.Context) error {
		otel.SetTracerProvider(prev)
		return provider.Shutdown(ctx)
	}, nil
}
