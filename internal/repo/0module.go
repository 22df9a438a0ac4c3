package repo

import (
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
)

func Module(conf *appconfig.Config) fx.Option {
	var store any
	switch conf.StoreDriver {
	case appconfig.StoreMongo:
		store = NewMongoActivity
	case appconfig.StorePostgres:
		store = NewPostgresActivity
	default:
		store = NewMemoryActivity
	}

	return fx.Module("repo", fx.Provide(
		fx.Annotate(store, fx.As(new(ActivityStore))),
	))
}
