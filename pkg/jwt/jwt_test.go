package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(secret, "caja-1", "operador", "pedidos-api", 5)
	require.NoError(t, err)

	sub, role, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "caja-1", sub)
	assert.Equal(t, "operador", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "caja-1", "operador", "pedidos-api", 5)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "caja-1", "operador", "pedidos-api", 5)
	assert.Error(t, err)

	_, _, err = jwt.Parse("", "x.y.z")
	assert.Error(t, err)
}

func TestGenerate_ExpiracionInvalida(t *testing.T) {
	_, err := jwt.Generate(secret, "caja-1", "operador", "pedidos-api", 0)
	assert.Error(t, err)
}
