package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "db.sqlite", cfg.DB.Path)
	assert.Equal(t, 30*time.Second, cfg.DB.LockTimeout, "la espera por bloqueo por defecto es de 30s")
	assert.True(t, cfg.DB.AutoMigrate)
	assert.True(t, cfg.API.EmptyListNotFound, "por defecto se conserva el 404 en listados vacíos")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.JWT.Secret)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.AMQP.URL)
	assert.Equal(t, 2*time.Second, cfg.AMQP.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_LOCK_TIMEOUT", "5s")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("API_EMPTY_LIST_NOT_FOUND", "false")
	t.Setenv("CACHE_TTL", "2m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5*time.Second, cfg.DB.LockTimeout)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.API.EmptyListNotFound)
	assert.Equal(t, 2*time.Minute, cfg.Redis.CacheTTL)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{
		Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "pedidos", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/pedidos?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString(), "DATABASE_URL tiene prioridad")
}
