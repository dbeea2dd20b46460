package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/pedidos-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/pedidos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testSubject   = "operador-1"
	testIssuer    = "pedidos-api-test"
	testExpMin    = 60
)

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testSubject, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func withAuth(d *apphttp.RouterDeps) { d.JWTSecret = testJWTSecret }

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware aislado
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"subject": apphttp.GetSubject(c), "role": apphttp.GetRole(c)})
	})

	resp := do(t, app, http.MethodGet, "/me", nil, "Authorization", bearer(t, "admin"))
	require.Equal(t, http.StatusOK, resp.status)
	var body map[string]string
	resp.decode(t, &body)
	assert.Equal(t, testSubject, body["subject"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthMiddleware_Rechazos(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	otherTok, err := pkgjwt.Generate("otro-secret", testSubject, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"sin esquema Bearer", "Token abc", "INVALID_TOKEN"},
		{"token malformado", "Bearer token.invalido.aqui", "INVALID_TOKEN"},
		{"firmado con otro secret", "Bearer " + otherTok, "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var headers []string
			if tc.header != "" {
				headers = []string{"Authorization", tc.header}
			}
			resp := do(t, app, http.MethodGet, "/me", nil, headers...)
			assert.Equal(t, http.StatusUnauthorized, resp.status)
			assert.Equal(t, tc.code, resp.errorCode(t))
		})
	}
}

func TestAuthMiddleware_SinSecretNoExigeToken(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(""), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	assert.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/me", nil).status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Router con JWT_SECRET configurado
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_EscriturasExigenTokenYLecturasNo(t *testing.T) {
	app, provider := newTestApp(t, withAuth)

	resp := do(t, app, http.MethodPost, "/customers", map[string]any{"name": "A", "phone": "1"})
	assert.Equal(t, http.StatusUnauthorized, resp.status)
	assert.Zero(t, provider.acquired.Load(), "sin token no se abre conexión")

	create(t, app, "/customers", map[string]any{"name": "A", "phone": "1"}, "Authorization", bearer(t, "admin"))

	list := do(t, app, http.MethodGet, "/all_customers", nil)
	assert.Equal(t, http.StatusOK, list.status)

	del := do(t, app, http.MethodDelete, "/customers/1", nil)
	assert.Equal(t, http.StatusUnauthorized, del.status)
}
