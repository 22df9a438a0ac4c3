package meta

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"mergington.dev/backend/internal/repo"
	"mergington.dev/backend/internal/server/httpserver"
	"mergington.dev/backend/internal/service"
)

type unreachableStore struct {
	repo.ActivityStore
}

func (unreachableStore) Ping(context.Context) error {
	return errors.New("dial tcp db%2Finternal:27017: connection refused")
}

func TestHealthUnavailable(t *testing.T) {
	c := Meta{HealthService: service.NewHealth(unreachableStore{}, nil)}
	app := fiber.New(fiber.Config{ErrorHandler: httpserver.ErrorHandler})
	app.Get("/health", c.Health)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	detail := gjson.GetBytes(body, "detail").String()
	assert.Contains(t, detail, "db%2Finternal:27017")
	assert.Contains(t, detail, "activity store not reachable")
	assert.NotContains(t, detail, "%!")
}
