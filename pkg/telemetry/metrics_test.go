package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTelemetryDisabled(t *testing.T) func() {
	ctx := context.Background()
	cfg := &Config{
		Enabled:     false,
		ServiceName: "test-service",
	}

	_, err := Init(ctx, cfg)
	require.NoError(t, err)

	return func() {
		_ = Shutdown(ctx)
	}
}

func TestNewCounter_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	counter, err := NewCounter(MetricOpts{
		Name:        "test_counter",
		Description: "A test counter",
		Unit:        "1",
	})
	require.NoError(t, err)
	assert.NotNil(t, counter)
}

func TestCounter_Add_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	counter, err := NewCounter(MetricOpts{
		Name:        "test_counter_add",
		Description: "A test counter for Add",
		Unit:        "1",
	})
	require.NoError(t, err)

	ctx := context.Background()

	// Should not panic
	counter.Add(ctx, 5)
	counter.Inc(ctx, OrgIDAttr("org-1"))
}

func TestNewUpDownCounter_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	counter, err := NewUpDownCounter(MetricOpts{
		Name:        "test_updown_counter",
		Description: "A test up-down counter",
		Unit:        "{connection}",
	})
	require.NoError(t, err)

	ctx := context.Background()
	counter.Inc(ctx)
	counter.Dec(ctx)
	counter.Add(ctx, -3)
}

func TestNewHistogram_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	histogram, err := NewHistogram(MetricOpts{
		Name:        "test_histogram",
		Description: "A test histogram",
		Unit:        "ms",
	})
	require.NoError(t, err)

	histogram.Record(context.Background(), 42.5, MethodAttr("POST"), PathAttr("/org/create-org"))
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Equal(t, "", GetTraceID(context.Background()))
}

func TestStartSpan_Uninitialized(t *testing.T) {
	globalTelemetry = nil
	t.Cleanup(func() { _, _ = Init(context.Background(), nil) })

	ctx, span := StartSpan(context.Background(), "mutation.record")
	require.NotNil(t, span)
	span.End()
	assert.Equal(t, "", GetTraceID(ctx))
}
