package httpserver

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"mergington.dev/backend/internal/pkg/apierr"
)

func errorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error {
		return err
	})
	return app
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"api error", apierr.ErrNotFound.Msg("Activity not found"), 404, "Activity not found"},
		{"wrapped api error", errors.Wrap(apierr.ErrConflict.Msg("Already signed up"), "signup"), 400, "Already signed up"},
		{"fiber error", fiber.ErrMethodNotAllowed, 405, "Method Not Allowed"},
		{"unknown error", errors.New("connection reset by peer"), 500, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := errorApp(tt.err).Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.detail, gjson.GetBytes(body, "detail").String())
		})
	}
}

func TestErrorHandlerViolations(t *testing.T) {
	err := apierr.NewViolations([]apierr.Violation{{
		Loc:  []string{"query", "email"},
		Msg:  "email is a required field",
		Type: "required",
	}})

	resp, terr := errorApp(err).Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, terr)
	assert.Equal(t, 422, resp.StatusCode)

	body, rerr := io.ReadAll(resp.Body)
	require.NoError(t, rerr)
	assert.Equal(t, "email", gjson.GetBytes(body, "detail.0.loc.1").String())
	assert.Equal(t, "required", gjson.GetBytes(body, "detail.0.type").String())
}
