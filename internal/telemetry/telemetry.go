// Package telemetry wires OpenTelemetry logging and tracing for brim. When
// no OTLP endpoint is configured the returned handle degrades to a local
// slog logger so the rest of the program never branches on telemetry state.
package telemetry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const serviceName = "brim"

var version = "dev"

// SetVersion records the build version reported in telemetry resources.
func SetVersion(v string) {
	version = v
}

// Handle owns the telemetry providers and the logger handed to the app.
type Handle struct {
	tracerProvider *sdktrace.TracerProvider
	loggerProvider *sdklog.LoggerProvider
	Logger         *slog.Logger
}

// Options configures telemetry setup.
type Options struct {
	// Debug routes local logging to stderr at debug level when no OTLP
	// endpoint is configured
	Debug bool
}

// Setup initializes telemetry. Without OTEL_EXPORTER_OTLP_ENDPOINT set it
// returns a local-only handle and starts no exporters.
func Setup(ctx context.Context, opts Options) (*Handle, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return newLocalHandle(opts.Debug), nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(traceExporter,
			sdktrace.WithBatchTimeout(5*time.Second),
		),
	)

	logExporter, err := otlploggrpc.New(ctx)
	if err != nil {
		_ = tracerProvider.Shutdown(ctx)
		return nil, err
	}
	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	global.SetLoggerProvider(loggerProvider)

	return &Handle{
		tracerProvider: tracerProvider,
		loggerProvider: loggerProvider,
		Logger: otelslog.NewLogger(serviceName,
			otelslog.WithLoggerProvider(loggerProvider),
		),
	}, nil
}

// NewNoop returns a handle that discards everything. Used in tests.
func NewNoop() *Handle {
	return newLocalHandle(false)
}

// Shutdown flushes and stops the providers.
func (h *Handle) Shutdown(ctx context.Context) error {
	if h.tracerProvider == nil && h.loggerProvider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var errs []error
	if h.loggerProvider != nil {
		if err := h.loggerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if h.tracerProvider != nil {
		if err := h.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newLocalHandle(debug bool) *Handle {
	var handler slog.Handler
	if debug {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	} else {
		handler = slog.NewTextHandler(io.Discard, nil)
	}
	return &Handle{Logger: slog.New(handler)}
}
