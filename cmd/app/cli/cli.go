package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app"
	"mergington.dev/backend/internal/app/appcontext"
	"mergington.dev/backend/internal/service"
)

// Start boots the application graph as a CLI run with module appended.
func Start(module fx.Option) *fx.App {
	a := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := a.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start app")
	}
	return a
}

func SeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "insert the default activity catalog when the store is empty, then exit",
		Action: func(c *cli.Context) error {
			var activityService *service.Activity
			a := Start(fx.Populate(&activityService))
			defer func() {
				if err := a.Stop(context.Background()); err != nil {
					log.Error().Err(err).Msg("failed to stop app")
				}
			}()

			inserted, err := activityService.Seed(c.Context)
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "cli.seed.done").
				Int("inserted", inserted).
				Msg("seed finished")
			return nil
		},
	}
}
