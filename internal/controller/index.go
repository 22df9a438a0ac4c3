package controller

import (
	"github.com/gofiber/fiber/v2"

	"mergington.dev/backend/internal/app/appconfig"
)

const indexPage = "/static/index.html"

func RegisterIndex(app *fiber.App, conf *appconfig.Config) {
	app.Static("/static", conf.StaticDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(indexPage, fiber.StatusTemporaryRedirect)
	})
}
