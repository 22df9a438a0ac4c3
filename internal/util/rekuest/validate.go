package rekuest

import (
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"mergington.dev/backend/internal/pkg/apierr"
	"mergington.dev/backend/internal/util/i18n"
)

var Validate = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New()
	// report fields by their query parameter name instead of the Go field name
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return validate
}

func init() {
	entr, _ := i18n.UT.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	zhtr, _ := i18n.UT.GetTranslator("zh")
	if err := zhTranslations.RegisterDefaultTranslations(Validate, zhtr); err != nil {
		log.Warn().Err(err).Str("locale", "zh").Msg("could not register translation")
	}
}

// translate translates errors into violations located in the given request part
func translate(utt ut.Translator, location string, ve validator.ValidationErrors) []apierr.Violation {
	violations := make([]apierr.Violation, 0, len(ve))
	for _, fe := range ve {
		violations = append(violations, apierr.Violation{
			Loc:  []string{location, fe.Field()},
			Msg:  fe.Translate(utt),
			Type: fe.Tag(),
		})
	}
	return violations
}

func validateStruct(ctx *fiber.Ctx, location string, s any) []apierr.Violation {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		panic(err)
	}
	return translate(TranslatorFromCtx(ctx), location, errs)
}

// ValidQuery will parse the query string from *fiber.Ctx using fiber#QueryParser(),
// and validate it using the validator singleton. If the validation passed it will write the parsed
// query to dest and return a nil, otherwise it will return an error. Notice that dest shall
// always be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return apierr.ErrUnprocessable.Msg("invalid query: %s", err)
	}

	if violations := validateStruct(ctx, "query", dest); violations != nil {
		return apierr.NewViolations(violations)
	}

	return nil
}
