// Package meta serves operational endpoints under /api/_.
package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/pkg/apierr"
	"mergington.dev/backend/internal/pkg/bininfo"
	"mergington.dev/backend/internal/pkg/cachectrl"
	"mergington.dev/backend/internal/server/svr"
	"mergington.dev/backend/internal/service"
)

type Meta struct {
	fx.In

	Config        *appconfig.Config
	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	cachectrl.MaxAge(ctx, time.Hour)
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return apierr.ErrUnavailable.Msg("%s", err)
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
		"store":  c.Config.StoreDriver,
	})
}
