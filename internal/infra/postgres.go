package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"github.com/uptrace/bun/extra/bunotel"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
)

func Postgres(conf *appconfig.Config, lc fx.Lifecycle) (*bun.DB, error) {
	// Open a PostgreSQL database.
	pgdb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(conf.PostgresDSN),
		pgdriver.WithApplicationName("mergington-backend"),
	))
	pgdb.SetMaxOpenConns(conf.PostgresMaxOpenConns)
	pgdb.SetMaxIdleConns(conf.PostgresMaxIdleConns)
	pgdb.SetConnMaxLifetime(conf.PostgresConnMaxLifeTime)
	pgdb.SetConnMaxIdleTime(conf.PostgresConnMaxIdleTime)

	// Create a Bun db on top of it.
	db := bun.NewDB(pgdb, pgdialect.New())
	db.AddQueryHook(bunotel.NewQueryHook(bunotel.WithDBName("mergington_high")))
	if conf.DevMode {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(conf.BunDebugVerbose)))
	}

	err := connectWithRetry(context.Background(), conf, "postgres", func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		return db.PingContext(ctx)
	})
	if err != nil {
		log.Error().Err(err).Msg("infra: postgres: failed to ping database")
		_ = db.Close()
		return nil, errors.Wrap(err, "infra: postgres: ping")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	log.Info().
		Str("evt.name", "infra.postgres.connected").
		Msg("connected to postgres")

	return db, nil
}
