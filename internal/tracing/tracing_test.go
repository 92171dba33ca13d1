package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracer(t *testing.T) {
	t.Setenv("OTEL_TRACES_EXPORTER", "none")

	shutdown, err := InitTracer(context.Background(), "cribsim-test", "test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	ctx, span := StartSpan(context.Background(), "test.span")
	assert.NotNil(t, ctx)
	span.End()

	require.NoError(t, shutdown(context.Background()))
}

func TestInitTracerRequiresServiceName(t *testing.T) {
	t.Setenv("OTEL_TRACES_EXPORTER", "none")

	_, err := InitTracer(context.Background(), "", "test")
	assert.Error(t, err)
}

func TestSamplerFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		sampler string
		arg     string
		want    string
	}{
		{"default", "", "", "ParentBased"},
		{"always on", "always_on", "", "AlwaysOnSampler"},
		{"always off", "always_off", "", "AlwaysOffSampler"},
		{"ratio", "traceidratio", "0.25", "TraceIDRatioBased"},
		{"ratio clamped", "traceidratio", "7", "TraceIDRatioBased"},
		{"ratio garbage", "traceidratio", "lots", "TraceIDRatioBased"},
		{"unsupported", "mystery", "", "ParentBased"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OTEL_TRACES_SAMPLER", tc.sampler)
			t.Setenv("OTEL_TRACES_SAMPLER_ARG", tc.arg)
			assert.Contains(t, samplerFromEnv().Description(), tc.want)
		})
	}
}
