package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/pedidos-api/internal/interfaces/http"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestRequestLogger_RegistraPeticionYSubject(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Post("/customers", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/all_customers", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := do(t, app, http.MethodPost, "/customers", nil, "Authorization", bearer(t, "admin"), apphttp.HeaderRequestID, "req-1")
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "req-1", resp.header.Get(apphttp.HeaderRequestID))

	entry := lastLogLine(t, &buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/customers", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.Equal(t, testSubject, entry["subject"])
	assert.Equal(t, "admin", entry["role"])

	resp = do(t, app, http.MethodGet, "/all_customers", nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.NotEmpty(t, resp.header.Get(apphttp.HeaderRequestID), "sin header se genera un request id")

	entry = lastLogLine(t, &buf)
	assert.NotContains(t, entry, "subject", "las lecturas no pasan por auth")
}
