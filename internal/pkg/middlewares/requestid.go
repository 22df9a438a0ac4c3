package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"mergington.dev/backend/internal/constant"
	"mergington.dev/backend/internal/pkg/flog"
)

// RequestID copies the request id generated by the logger chain into ctx.Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := flog.IDFromFiberCtx(c)
		if ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
