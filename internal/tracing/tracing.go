// Package tracing bootstraps OpenTelemetry for the simulation service.
// Spans go to stdout (the only exporter this service uses); set
// OTEL_TRACES_EXPORTER=none to disable export entirely.
package tracing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "cribsim"

var tracer trace.Tracer

// InitTracer wires the global tracer provider and propagators. In
// development the stdout exporter pretty-prints; elsewhere spans are
// one JSON line each. The returned shutdown flushes pending spans and
// must be called on process exit.
func InitTracer(ctx context.Context, serviceName, environment string) (func(context.Context) error, error) {
	if serviceName == "" {
		return nil, errors.New("tracing: service name is required")
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.DeploymentEnvironmentKey.String(environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tracing: create resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(samplerFromEnv()),
	}
	if exporter, err := newExporter(environment); err != nil {
		return nil, err
	} else if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(tracerName)

	return tp.Shutdown, nil
}

// GetTracer returns the tracer set up by InitTracer, falling back to
// the global provider so spans from tests and the CLI are no-ops.
func GetTracer() trace.Tracer {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return tracer
}

// StartSpan starts a span on the service tracer.
func StartSpan(ctx context.Context, spanName string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, spanName)
}

// newExporter returns nil when export is disabled via
// OTEL_TRACES_EXPORTER=none (or noop).
func newExporter(environment string) (sdktrace.SpanExporter, error) {
	switch os.Getenv("OTEL_TRACES_EXPORTER") {
	case "none", "noop":
		return nil, nil
	}
	var expOpts []stdouttrace.Option
	if environment == "development" {
		expOpts = append(expOpts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(expOpts...)
	if err != nil {
		return nil, fmt.Errorf("tracing: init stdout exporter: %w", err)
	}
	return exporter, nil
}

func samplerFromEnv() sdktrace.Sampler {
	switch s := os.Getenv("OTEL_TRACES_SAMPLER"); s {
	case "", "parentbased_always_on":
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case "always_on":
		return sdktrace.AlwaysSample()
	case "always_off":
		return sdktrace.NeverSample()
	case "traceidratio":
		arg := os.Getenv("OTEL_TRACES_SAMPLER_ARG")
		ratio, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			slog.Warn("tracing: bad OTEL_TRACES_SAMPLER_ARG, sampling everything", "arg", arg)
			ratio = 1
		}
		ratio = min(max(ratio, 0), 1)
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	default:
		slog.Warn("tracing: unsupported OTEL_TRACES_SAMPLER, sampling everything", "sampler", s)
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
}
