package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"mergington.dev/backend/internal/constant"
	"mergington.dev/backend/internal/pkg/flog"
)

// Logger installs the per-request logger chain, ending with the access log.
func Logger(app *fiber.App) {
	for _, handler := range []fiber.Handler{
		flog.NewHandlerMiddleware(log.With().Logger()),
		flog.RequestIDHandler("request_id", constant.RequestIDHeader),
		flog.RequestFieldsHandler(),
		accessLogger(),
	} {
		app.Use(handler)
	}
}

func accessLogger() fiber.Handler {
	return flog.AccessHandler(func(ctx *fiber.Ctx, duration time.Duration) {
		status := ctx.Response().StatusCode()
		flog.FromFiberCtx(ctx).WithLevel(flog.LevelFrom(status)).
			Str("evt.name", "http.access").
			Int("status", status).
			Int("size", len(ctx.Response().Body())).
			Dur("duration", duration).
			Msg("received request")
	})
}
