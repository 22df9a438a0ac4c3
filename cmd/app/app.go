package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	appcli "mergington.dev/backend/cmd/app/cli"
	"mergington.dev/backend/cmd/app/server"
	"mergington.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "mergington",
		Description: "Mergington High School extracurricular activity directory. Built with Go, fiber, MongoDB or PostgreSQL and go.uber.org/fx. Publishes roster changes to NATS JetStream.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			appcli.SeedCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
