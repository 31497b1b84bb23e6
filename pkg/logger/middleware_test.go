package logger_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

func TestMiddleware_RegistraStatusFinal(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusTeapot).SendString(err.Error())
		},
	})
	app.Use(logger.Middleware(l))
	app.Get("/ok", func(c *fiber.Ctx) error {
		c.Locals("user_id", "u-1")
		return c.SendString("ok")
	})
	app.Get("/fail", func(c *fiber.Ctx) error { return fiber.ErrBadRequest })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/ok", line["path"])
	assert.EqualValues(t, 200, line["status"])
	assert.Equal(t, "u-1", line["user_id"])
	assert.Equal(t, "info", line["level"])

	buf.Reset()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.Equal(t, "warn", line["level"])
}
