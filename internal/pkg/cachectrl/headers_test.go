package cachectrl

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	app := fiber.New()
	app.Get("/out", func(c *fiber.Ctx) error {
		OptOut(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/max-age", func(c *fiber.Ctx) error {
		MaxAge(c, time.Minute)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/out", nil))
	require.NoError(t, err)
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, "0", resp.Header.Get(fiber.HeaderExpires))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/max-age", nil))
	require.NoError(t, err)
	assert.Equal(t, "public, max-age=60", resp.Header.Get(fiber.HeaderCacheControl))
}
