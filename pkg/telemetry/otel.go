package telemetry

import (
	"context"
	"errors"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.25.0"

	"github.com/litmuschaos/probe-diagrams/pkg/cerrors"
)

const (
	ServiceName = "probe_diagrams"

	// ExporterNone keeps tracing off, spans go to the global no-op provider
	ExporterNone   = ""
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// traceOutput receives spans of the stdout exporter
var traceOutput io.Writer = os.Stderr

// InitOTelSDK installs a global tracer provider for the selected exporter and
// returns a function that flushes and stops it
func InitOTelSDK(ctx context.Context, exporter, endpoint string) (shutdown func(context.Context) error, err error) {
	var shutdownFuncs []func(context.Context) error

	shutdown = func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}

	if exporter == ExporterNone {
		return shutdown, nil
	}

	handleErr := func(inErr error) {
		err = errors.Join(inErr, shutdown(ctx))
	}

	tracerProvider, err := newTracerProvider(ctx, exporter, endpoint)
	if err != nil {
		handleErr(err)
		return
	}

	prop := newPropagator()
	otel.SetTextMapPropagator(prop)

	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)
	return
}

func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newExporter(ctx context.Context, exporter, endpoint string) (trace.SpanExporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithWriter(traceOutput))
	case ExporterOTLP:
		if endpoint == "" {
			return nil, cerrors.Config{Source: "OTEL_EXPORTER_OTLP_ENDPOINT", Reason: "endpoint is required for the otlp exporter"}
		}
		return otlptrace.New(
			ctx,
			otlptracegrpc.NewClient(
				// TODO: add secure option
				otlptracegrpc.WithInsecure(),
				otlptracegrpc.WithEndpoint(endpoint),
			),
		)
	}
	return nil, cerrors.Config{Source: "OTEL_EXPORTER", Reason: "unsupported trace exporter '" + exporter + "', use stdout or otlp"}
}

func newTracerProvider(ctx context.Context, exporter, endpoint string) (*trace.TracerProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
		),
	)
	if err != nil {
		return nil, err
	}
	traceExporter, err := newExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	batchSpanProcessor := trace.NewBatchSpanProcessor(traceExporter)
	tracerProvider := trace.NewTracerProvider(
		trace.WithSampler(trace.AlwaysSample()),
		trace.WithResource(res),
		trace.WithSpanProcessor(batchSpanProcessor),
	)

	return tracerProvider, nil
}
