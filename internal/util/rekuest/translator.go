package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"

	"mergington.dev/backend/internal/constant"
	"mergington.dev/backend/internal/util/i18n"
)

// TranslatorFromCtx returns the translator chosen by the i18n middleware,
// falling back to English when the middleware did not run.
func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if t, ok := ctx.Locals(constant.ContextKeyTranslator).(ut.Translator); ok {
		return t
	}
	return i18n.UT.GetFallback()
}
