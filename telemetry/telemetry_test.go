package telemetry

import (
	"testing"
	"time"

	"github.com/amp-labs/sortedvec/logger"
	"github.com/amp-labs/sortedvec/spans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"OTEL_ENABLED",
		"OTEL_SERVICE_NAME",
		"OTEL_SERVICE_VERSION",
		"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT",
		"OTEL_EXPORTER_OTLP_TRACES_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	ctx := logger.WithSubsystem(t.Context(), "bench")

	cfg, err := LoadConfig(ctx)
	require.NoError(t, err)

	assert.Equal(t, Config{
		ServiceName:    "bench",
		ServiceVersion: defaultServiceVersion,
		Timeout:        defaultTimeout,
	}, cfg)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "sortedvec-bench")
	t.Setenv("OTEL_SERVICE_VERSION", "2.1.0")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://collector:4318/v1/traces")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT", "2s")

	cfg, err := LoadConfig(t.Context())
	require.NoError(t, err)

	assert.Equal(t, Config{
		ServiceName:    "sortedvec-bench",
		ServiceVersion: "2.1.0",
		Endpoint:       "http://collector:4318/v1/traces",
		Enabled:        true,
		Timeout:        2 * time.Second,
	}, cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("OTEL_ENABLED", "sometimes")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT", "soon")

	_, err := LoadConfig(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OTEL_ENABLED")
	assert.Contains(t, err.Error(), "OTEL_EXPORTER_OTLP_TRACES_TIMEOUT")
}

func TestInitializeDisabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "not enabled", cfg: Config{Endpoint: "http://collector:4318/v1/traces"}},
		{name: "no endpoint", cfg: Config{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tracing, err := Initialize(t.Context(), tt.cfg)
			require.NoError(t, err)
			assert.False(t, tracing.Enabled())

			ctx := tracing.Attach(t.Context(), "bench")
			_, found := spans.TracerFromContext(ctx)
			assert.False(t, found)

			require.NoError(t, tracing.Shutdown(t.Context()))
		})
	}
}

func TestInitializeEnabled(t *testing.T) {
	tracing, err := Initialize(t.Context(), Config{
		ServiceName:    "sortedvec-bench",
		ServiceVersion: "1.0.0",
		Endpoint:       "http://127.0.0.1:4318/v1/traces",
		Enabled:        true,
		Timeout:        time.Second,
	})
	require.NoError(t, err)
	assert.True(t, tracing.Enabled())

	ctx := tracing.Attach(t.Context(), "bench")
	_, found := spans.TracerFromContext(ctx)
	assert.True(t, found)

	require.NoError(t, tracing.Shutdown(t.Context()))
}
