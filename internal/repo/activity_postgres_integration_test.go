//go:build integration

package repo

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/fx/fxtest"
)

func TestPostgresActivity(t *testing.T) {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("mergington_high"),
		postgrescontainer.WithUsername("mergington"),
		postgrescontainer.WithPassword("mergington"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, container)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn))), pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })

	lc := fxtest.NewLifecycle(t)
	store := NewPostgresActivity(db, lc)
	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	testActivityStore(t, store)
}
