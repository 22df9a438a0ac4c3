package controller

import (
	"go.uber.org/fx"

	controllermeta "mergington.dev/backend/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		fx.Invoke(
			RegisterIndex,
			RegisterActivity,
			controllermeta.RegisterMeta,
		),
	)
}
