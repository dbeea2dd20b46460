package http_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/domain"
	apphttp "github.com/jhoicas/pedidos-api/internal/interfaces/http"
	"github.com/jhoicas/pedidos-api/internal/testutil"
)

func TestSession_UnCierrePorPeticionEnTodosLosCaminos(t *testing.T) {
	app, provider := newTestApp(t)

	create(t, app, "/customers", map[string]any{"name": "A", "phone": "1"})              // éxito
	do(t, app, http.MethodPost, "/customers", map[string]any{"name": "A", "phone": "1"}) // duplicado
	do(t, app, http.MethodGet, "/customers/999", nil)                                    // 404
	do(t, app, http.MethodPost, "/customers", `{`)                                       // cuerpo inválido

	assert.EqualValues(t, 4, provider.acquired.Load())
	assert.EqualValues(t, 4, provider.closed.Load(), "cada conexión adquirida se cierra exactamente una vez")
}

func TestSession_LocalsNoExponeClose(t *testing.T) {
	provider := &countingProvider{inner: testutil.NewSQLiteProvider(t)}
	app := fiber.New()
	app.Get("/store", apphttp.SessionMiddleware(provider), func(c *fiber.Ctx) error {
		_, isCloser := c.Locals(apphttp.LocalStore).(io.Closer)
		assert.False(t, isCloser, "fasthttp cerraría la conexión al liberar el contexto")
		require.NotNil(t, apphttp.StoreFrom(c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		resp := do(t, app, http.MethodGet, "/store", nil)
		require.Equal(t, http.StatusNoContent, resp.status)
	}
	assert.EqualValues(t, 3, provider.acquired.Load())
	assert.EqualValues(t, 3, provider.closed.Load())
}

func TestSession_SeCierraAunqueElHandlerEntreEnPanico(t *testing.T) {
	provider := &countingProvider{inner: testutil.NewSQLiteProvider(t)}
	app := fiber.New()
	app.Use(recover.New())
	app.Get("/boom", apphttp.SessionMiddleware(provider), func(c *fiber.Ctx) error {
		require.NotNil(t, apphttp.StoreFrom(c))
		panic("boom")
	})

	resp := do(t, app, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.status)
	assert.EqualValues(t, 1, provider.closed.Load())
}

func TestSession_FallaAlAdquirir(t *testing.T) {
	for _, tc := range []struct {
		err  error
		code string
	}{
		{domain.ErrStorageBusy, "DB_BUSY"},
		{errors.New("too many connections"), "INTERNAL"},
	} {
		t.Run(tc.code, func(t *testing.T) {
			app, provider := newTestApp(t)
			provider.err = fmt.Errorf("acquire: %w", tc.err)

			resp := do(t, app, http.MethodGet, "/all_customers", nil)
			assert.Equal(t, http.StatusInternalServerError, resp.status)
			assert.Equal(t, tc.code, resp.errorCode(t))
			assert.Zero(t, provider.closed.Load())
		})
	}
}
