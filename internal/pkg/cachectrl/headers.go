// Package cachectrl sets HTTP caching headers on fiber responses.
package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// OptOut marks the response as uncacheable. Rosters change on every sign up,
// so clients and proxies must always ask the store again.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}

// MaxAge lets clients reuse the response for d.
func MaxAge(ctx *fiber.Ctx, d time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(d.Seconds())))
}
