package trace

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	before := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, otel.GetTracerProvider(), "global provider untouched")
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_InstallsAndRestoresProvider(t *testing.T) {
	t.Setenv(EndpointEnv, "127.0.0.1:4318")
	t.Setenv(ServiceNameEnv, "cleanselect-test")
	before := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, before, otel.GetTracerProvider())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	// Nothing was recorded, so the flush has nothing to send.
	assert.NoError(t, shutdown(ctx))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestNewProvider_RecordsSpans(t *testing.T) {
	provider, err := NewProvider(context.Background(), "127.0.0.1:4318", "")
	require.NoError(t, err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		_ = provider.Shutdown(ctx)
	}()

	_, span := provider.Tracer(InstrumentationName).Start(context.Background(), SpanOpen)
	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.IsRecording())
	span.End()
}
