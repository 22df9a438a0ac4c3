package httpserver

import (
	"bufio"
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/trace"

	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/pkg/apierr"
)

func accessLogs(buf *bytes.Buffer) []gjson.Result {
	var entries []gjson.Result
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		entry := gjson.ParseBytes(scanner.Bytes())
		if entry.Get("evt\\.name").String() == "http.access" {
			entries = append(entries, entry)
		}
	}
	return entries
}

func TestCreateReportsRenderedStatus(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		HTTPServerShutdownTimeout: time.Second,
	}}
	app := Create(conf, trace.NewNoopTracerProvider())
	app.Post("/activities/:activityName/signup", func(c *fiber.Ctx) error {
		return apierr.ErrNotFound.Msg("Activity not found")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/activities/Nope/signup?email=a@mergington.edu", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Activity not found", gjson.GetBytes(body, "detail").String())

	entries := accessLogs(&buf)
	require.Len(t, entries, 1)
	assert.EqualValues(t, fiber.StatusNotFound, entries[0].Get("status").Int())
	assert.Equal(t, "warn", entries[0].Get("level").String())

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	metrics, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `path="/activities/:activityName/signup"`)
	assert.Contains(t, string(metrics), `status_code="404"`)
	assert.NotContains(t, string(metrics), `status_code="500"`)
}
