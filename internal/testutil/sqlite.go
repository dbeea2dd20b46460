// Package testutil arma bases SQLite temporarias para los tests de repositorios, casos de uso y HTTP.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/pedidos-api/pkg/config"
)

// NewSQLiteProvider abre una base en un archivo temporal con el esquema creado.
func NewSQLiteProvider(t testing.TB) *sqlstore.Provider {
	return NewSQLiteProviderWithTimeout(t, 5*time.Second)
}

// NewSQLiteProviderWithTimeout igual que NewSQLiteProvider con una espera por lock propia.
func NewSQLiteProviderWithTimeout(t testing.TB, lockTimeout time.Duration) *sqlstore.Provider {
	t.Helper()
	cfg := config.DBConfig{
		Driver:      config.DriverSQLite,
		Path:        filepath.Join(t.TempDir(), "test.sqlite"),
		LockTimeout: lockTimeout,
	}
	p, err := sqlstore.Open(context.Background(), cfg)
	require.NoError(t, err, "abrir sqlite temporal")
	t.Cleanup(func() { _ = p.Close() })

	require.NoError(t, p.Migrate(context.Background()), "migrar esquema")
	return p
}

// NewSession adquiere una sesión que se cierra al terminar el test.
func NewSession(t testing.TB, p *sqlstore.Provider) *sqlstore.Session {
	t.Helper()
	s, err := p.Session(context.Background())
	require.NoError(t, err, "adquirir sesión")
	t.Cleanup(func() { _ = s.Close() })
	return s
}
