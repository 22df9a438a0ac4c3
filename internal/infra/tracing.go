package infra

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/pkg/bininfo"
	"mergington.dev/backend/internal/pkg/observability"
)

func envName(conf *appconfig.Config) string {
	return lo.Ternary(conf.DevMode, "dev", "prod")
}

// Tracing builds the process tracer provider. A no-op provider is returned
// when tracing is disabled.
func Tracing(conf *appconfig.Config, lc fx.Lifecycle) (trace.TracerProvider, error) {
	if !conf.TracingEnabled {
		return trace.NewNoopTracerProvider(), nil
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(observability.ServiceName),
			semconv.ServiceVersionKey.String(bininfo.Version),
			attribute.String("environment", envName(conf)),
		)),
	}

	for _, name := range lo.Uniq(conf.TracingExporters) {
		exporter, err := newExporter(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	tp := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	log.Info().
		Str("evt.name", "infra.tracing.enabled").
		Strs("exporters", conf.TracingExporters).
		Float64("sampleRate", conf.TracingSampleRate).
		Msg("tracing enabled")

	return tp, nil
}

func newExporter(name string) (tracesdk.SpanExporter, error) {
	switch name {
	case "jaeger":
		return jaeger.New(jaeger.WithCollectorEndpoint())
	case "otlp":
		return otlptracegrpc.New(context.Background())
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, errors.Errorf("infra: tracing: unknown exporter %q", name)
	}
}
