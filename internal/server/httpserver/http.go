package httpserver

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/felixge/fgprof"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/constant"
	"mergington.dev/backend/internal/pkg/bininfo"
	"mergington.dev/backend/internal/pkg/middlewares"
	"mergington.dev/backend/internal/pkg/observability"
)

var registerPromOnce sync.Once

func Create(conf *appconfig.Config, tp trace.TracerProvider) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Mergington High Activities",
		ServerHeader: fmt.Sprintf("Mergington/%s", bininfo.Version),
		ReadTimeout:  time.Second * 20,
		WriteTimeout: time.Second * 20,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		// activity names are path segments and may contain encoded spaces
		UnescapePath: true,
		ErrorHandler: ErrorHandler,
		Immutable:    true,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	app.Use(favicon.New())
	app.Use(fibersentry.New(fibersentry.Config{
		Repanic: true,
		Timeout: time.Second * 5,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET, POST, DELETE, OPTIONS",
		AllowHeaders:  "Content-Type, X-Requested-With, sentry-trace",
		ExposeHeaders: "Content-Type, " + constant.RequestIDHeader,
	}))
	middlewares.Logger(app)
	// the logger middleware injects RequestID into the context,
	// and we need an extra middleware to extract it and repopulate it into ctx.Locals
	app.Use(middlewares.RequestID())

	app.Use(helmet.New(helmet.Config{
		HSTSMaxAge:         31356000,
		HSTSPreloadEnabled: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		PermissionPolicy:   "interest-cohort=()",
	}))
	app.Use(middlewares.InjectI18n())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}))
	// fiberprometheus registers its collectors globally, so tests creating
	// more than one app only get /metrics on the first
	registerPromOnce.Do(func() {
		fiberprom := fiberprometheus.New(observability.ServiceName)
		fiberprom.RegisterAt(app, "/metrics")
		app.Use(fiberprom.Middleware)
	})

	if conf.TracingEnabled {
		app.Use(otelfiber.Middleware(
			otelfiber.WithTracerProvider(tp),
			otelfiber.WithServerName(observability.ServiceName),
		))
	}

	if conf.DevMode {
		log.Info().Msg("Running in DEV mode")
		app.Use(pprof.New())
		app.Get("/debug/fgprof", adaptor.HTTPHandler(fgprof.Handler()))
	} else {
		app.Use(middlewares.EnrichSentry())
	}

	// render handler errors here so the access log and fiberprometheus above
	// observe the final status code
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return c.App().ErrorHandler(c, err)
		}
		return nil
	})

	return app
}
