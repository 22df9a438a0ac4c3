package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/pkg/cachectrl"
	"mergington.dev/backend/internal/server/svr"
	"mergington.dev/backend/internal/service"
	"mergington.dev/backend/internal/util/rekuest"
)

type Activity struct {
	fx.In

	ActivityService *service.Activity
}

func RegisterActivity(activities *svr.Activities, c Activity) {
	activities.Get("/", c.GetActivities)
	activities.Post("/:activityName/signup", c.SignUp)
	activities.Delete("/:activityName/unregister", c.Unregister)
}

type emailQuery struct {
	Email string `query:"email" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *Activity) GetActivities(ctx *fiber.Ctx) error {
	directory, err := c.ActivityService.GetActivities(ctx.UserContext())
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(directory)
}

func (c *Activity) SignUp(ctx *fiber.Ctx) error {
	var query emailQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	message, err := c.ActivityService.SignUp(ctx.UserContext(), ctx.Params("activityName"), query.Email)
	if err != nil {
		return err
	}

	return ctx.JSON(messageResponse{Message: message})
}

func (c *Activity) Unregister(ctx *fiber.Ctx) error {
	var query emailQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	message, err := c.ActivityService.Unregister(ctx.UserContext(), ctx.Params("activityName"), query.Email)
	if err != nil {
		return err
	}

	return ctx.JSON(messageResponse{Message: message})
}
