// Package testentry boots the application graph for tests, backed by the
// in-memory activity store.
package testentry

import (
	"path/filepath"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"mergington.dev/backend/internal/app"
	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/app/appcontext"
	"mergington.dev/backend/internal/pkg/projectpath"
)

// Config returns the configuration defaults with the memory store selected and
// every optional infrastructure component disabled.
func Config(t testing.TB) *appconfig.Config {
	t.Helper()

	var spec appconfig.ConfigSpec
	if err := envconfig.Process("mergington_test", &spec); err != nil {
		t.Fatalf("testentry: parse default config: %v", err)
	}

	spec.StoreDriver = appconfig.StoreMemory
	spec.StaticDir = filepath.Join(projectpath.Root, "static")
	spec.LogFile = ""
	spec.NatsURL = ""
	spec.SentryDSN = ""
	spec.TracingEnabled = false
	spec.DatadogProfilerEnabled = false

	return &appconfig.Config{
		ConfigSpec: spec,
		AppContext: appcontext.Declare(appcontext.EnvServer),
	}
}

// Populate starts the application graph with conf and fills targets. The graph
// is stopped when the test finishes.
func Populate(t testing.TB, conf *appconfig.Config, targets ...any) {
	t.Helper()

	opts := app.ProvideOptions(conf,
		fx.Populate(targets...),
		fx.Invoke(func() {
			log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
		}),
	)
	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts = append(opts, fx.NopLogger)

	a := fxtest.New(t, opts...)
	a.RequireStart()
	t.Cleanup(func() { a.RequireStop() })
}
