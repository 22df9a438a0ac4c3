// Package flog provides a set of fiber.Ctx helpers for zerolog.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FromFiberCtx gets the logger in the request's context.
// This is a shortcut for log.Ctx(r.UserContext())
func FromFiberCtx(r *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(r.UserContext())
}

// NewHandlerMiddleware injects log into requests context.
func NewHandlerMiddleware(log zerolog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// Create a copy of the logger (including internal context slice)
		// to prevent data race when using UpdateContext.
		l := log.With().Logger()
		ctx.SetUserContext(l.WithContext(ctx.UserContext()))
		return ctx.Next()
	}
}

// RequestFieldsHandler adds the client address, method, URL and user agent
// of the request as fields to the context's logger.
func RequestFieldsHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ip, method, url, ua := ctx.IP(), ctx.Method(), ctx.OriginalURL(), ctx.Get(fiber.HeaderUserAgent)
		FromFiberCtx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.
				Str("ip", ip).
				Str("method", method).
				Str("url", url).
				Str("user_agent", ua)
		})
		return ctx.Next()
	}
}

type idKey struct{}

// IDFromFiberCtx returns the unique id associated to the *fiber.Ctx if any.
func IDFromFiberCtx(r *fiber.Ctx) (id xid.ID, ok bool) {
	if r == nil {
		return
	}
	return IDFromCtx(r.UserContext())
}

// IDFromCtx returns the unique id associated to the context if any.
func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

// CtxWithID adds the given xid.ID to the context
func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// RequestIDHandler assigns an id to the request, reusing the one in headerName
// when the client sent a valid xid. The id is logged under fieldKey and echoed
// back in headerName.
func RequestIDHandler(fieldKey, headerName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(ctx)
		if !ok {
			if parsed, err := xid.FromString(ctx.Get(headerName)); err == nil {
				id = parsed
			} else {
				id = xid.New()
			}
			ctx.SetUserContext(CtxWithID(ctx.UserContext(), id))
		}
		FromFiberCtx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(fieldKey, id.String())
		})
		ctx.Set(headerName, id.String())
		return ctx.Next()
	}
}

// AccessHandler returns a handler that call f after each request.
func AccessHandler(f func(ctx *fiber.Ctx, duration time.Duration)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		f(ctx, time.Since(start))
		return err
	}
}

// LevelFrom picks the access log level for a response status.
func LevelFrom(status int) zerolog.Level {
	switch {
	case status >= fiber.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= fiber.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
