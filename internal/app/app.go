package app

import (
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/app/appcontext"
	"mergington.dev/backend/internal/controller"
	"mergington.dev/backend/internal/infra"
	"mergington.dev/backend/internal/pkg/logger"
	"mergington.dev/backend/internal/repo"
	"mergington.dev/backend/internal/server"
	"mergington.dev/backend/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)
	log.Info().
		Str("evt.name", "app.boot").
		Stringer("env", ctx.Env).
		Str("store", string(conf.StoreDriver)).
		Msg("bootstrapping application")

	return ProvideOptions(conf, additionalOpts...)
}

// ProvideOptions assembles the application graph around an already parsed configuration.
func ProvideOptions(conf *appconfig.Config, additionalOpts ...fx.Option) []fx.Option {
	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(conf),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(conf),

		// Services
		service.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(infra.SentryInit),

		// Controllers
		controller.Module(),

		// fx Extra Options
		// store schema creation and seeding run as start hooks
		fx.StartTimeout(15 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
