package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"mergington.dev/backend/internal/pkg/apierr"
)

func handleCustomError(ctx *fiber.Ctx, e *apierr.Error) error {
	evt := log.Warn()
	if e.StatusCode >= fiber.StatusInternalServerError {
		evt = log.Error()
	}
	evt.
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", e.StatusCode).
		Msg(e.Detail)

	return ctx.Status(e.StatusCode).JSON(e.Body())
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var e *apierr.Error
	if errors.As(err, &e) {
		return handleCustomError(ctx, e)
	}

	// Default 500 statuscode
	re := apierr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// routing and body errors keep their own status and message
		re = apierr.New(fe.Code, "UNKNOWN_ERROR", fe.Message)
		if fe.Code < fiber.StatusInternalServerError {
			return ctx.Status(re.StatusCode).JSON(re.Body())
		}
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		hub.CaptureException(err)
	}

	return ctx.Status(re.StatusCode).JSON(re.Body())
}
