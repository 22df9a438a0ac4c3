package infra

import (
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
)

func Module(conf *appconfig.Config) fx.Option {
	opts := []fx.Option{
		fx.Provide(NATS, Tracing),
		fx.Invoke(Datadog),
	}

	switch conf.StoreDriver {
	case appconfig.StoreMongo:
		opts = append(opts, fx.Provide(Mongo, MongoCollection))
	case appconfig.StorePostgres:
		opts = append(opts, fx.Provide(Postgres))
	}

	return fx.Module("infra", opts...)
}
