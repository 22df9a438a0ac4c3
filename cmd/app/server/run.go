package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app"
	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/app/appcontext"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:    "start",
		Aliases: []string{"serve"},
		Usage:   "serve the activity directory over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address, overriding MERGINGTON_SERVICE_ADDRESS",
			},
		},
		Action: func(c *cli.Context) error {
			opts := []fx.Option{fx.Invoke(run)}
			if address := c.String("address"); address != "" {
				opts = append(opts, fx.Decorate(func(conf *appconfig.Config) *appconfig.Config {
					conf.ServiceAddress = address
					return conf
				}))
			}

			app.New(appcontext.Declare(appcontext.EnvServer), opts...).Run()
			return nil
		},
	}
}

func run(serverApp *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "server.listening").
				Str("address", ln.Addr().String()).
				Msg("serving activity directory")

			go func() {
				if err := serverApp.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if conf.DevMode {
				return nil
			}
			return serverApp.ShutdownWithContext(ctx)
		},
	})
}
