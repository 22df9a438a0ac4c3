package infra

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"

	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/pkg/bininfo"
)

func Datadog(conf *appconfig.Config, lc fx.Lifecycle) {
	if conf.DevMode || !conf.DatadogProfilerEnabled {
		log.Info().
			Str("evt.name", "infra.datadog.disabled").
			Msg("datadog profiler is disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			err := profiler.Start(
				profiler.WithService("mergington-backend"),
				profiler.WithEnv(envName(conf)),
				profiler.WithVersion(bininfo.Version),
				profiler.WithAgentAddr(conf.DatadogProfilerAgentAddress),
				profiler.WithProfileTypes(
					profiler.CPUProfile,
					profiler.HeapProfile,
				),
			)
			if err != nil {
				log.Error().
					Err(err).
					Str("evt.name", "infra.datadog.error").
					Msg("datadog profiler failed to start")
			}

			// datadog profiler is not a critical component, so we don't return error here
			return nil
		},
		OnStop: func(ctx context.Context) error {
			profiler.Stop()
			return nil
		},
	})
}
