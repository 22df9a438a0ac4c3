package svr

import (
	"github.com/gofiber/fiber/v2"
)

type Activities struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Activities, *Meta) {
	activities := app.Group("/activities")
	meta := app.Group("/api/_")

	return &Activities{Router: activities}, &Meta{Router: meta}
}
