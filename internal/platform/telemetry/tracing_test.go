package telemetry

import (
	"context"
	"testing"

	"github.com/blogdev/blog-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupTracing_WithoutExporter(t *testing.T) {
	ctx := context.Background()

	shutdown, err := SetupTracing(ctx, config.TelemetryConfig{
		ServiceName: "blog-api-test",
		SampleRatio: 1.0,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, span := otel.Tracer("test").Start(ctx, "operation")
	defer span.End()

	assert.True(t, span.SpanContext().TraceID().IsValid())
	assert.True(t, span.SpanContext().IsSampled())
}
