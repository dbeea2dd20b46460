package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/pedidos-api/internal/interfaces/http"
)

func withCache(t *testing.T) (func(*apphttp.RouterDeps), *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return func(d *apphttp.RouterDeps) {
		d.Cache = apphttp.NewResponseCache(rdb, time.Minute, "test")
	}, mr
}

func TestCache_HitNoAbreConexion(t *testing.T) {
	mod, _ := withCache(t)
	app, provider := newTestApp(t, mod)
	create(t, app, "/customers", map[string]any{"name": "A", "phone": "1"})

	first := do(t, app, http.MethodGet, "/all_customers", nil)
	require.Equal(t, http.StatusOK, first.status)
	assert.Equal(t, "MISS", first.header.Get("X-Cache"))
	acquired := provider.acquired.Load()

	second := do(t, app, http.MethodGet, "/all_customers", nil)
	require.Equal(t, http.StatusOK, second.status)
	assert.Equal(t, "HIT", second.header.Get("X-Cache"))
	assert.JSONEq(t, string(first.body), string(second.body))
	assert.Equal(t, "application/json", second.header.Get("Content-Type"))
	assert.Equal(t, acquired, provider.acquired.Load(), "un HIT no debe tomar conexión")
}

func TestCache_EscrituraExitosaInvalida(t *testing.T) {
	mod, _ := withCache(t)
	app, _ := newTestApp(t, mod)
	create(t, app, "/customers", map[string]any{"name": "A", "phone": "1"})

	do(t, app, http.MethodGet, "/all_customers", nil)
	create(t, app, "/customers", map[string]any{"name": "B", "phone": "2"})

	resp := do(t, app, http.MethodGet, "/all_customers", nil)
	assert.Equal(t, "MISS", resp.header.Get("X-Cache"))
	var all map[string]any
	resp.decode(t, &all)
	assert.Len(t, all, 2)
}

func TestCache_EscrituraFallidaNoInvalida(t *testing.T) {
	mod, _ := withCache(t)
	app, _ := newTestApp(t, mod)
	create(t, app, "/customers", map[string]any{"name": "A", "phone": "1"})
	do(t, app, http.MethodGet, "/all_customers", nil)

	dup := do(t, app, http.MethodPost, "/customers", map[string]any{"name": "A", "phone": "1"})
	require.Equal(t, http.StatusBadRequest, dup.status)

	resp := do(t, app, http.MethodGet, "/all_customers", nil)
	assert.Equal(t, "HIT", resp.header.Get("X-Cache"))
}

func TestCache_No200NoSeGuarda(t *testing.T) {
	mod, _ := withCache(t)
	app, _ := newTestApp(t, mod)

	first := do(t, app, http.MethodGet, "/customers/7", nil)
	require.Equal(t, http.StatusNotFound, first.status)
	second := do(t, app, http.MethodGet, "/customers/7", nil)
	assert.Equal(t, "MISS", second.header.Get("X-Cache"))
}

func TestCache_RedisCaidoSigueSinCache(t *testing.T) {
	mod, mr := withCache(t)
	app, _ := newTestApp(t, mod)
	create(t, app, "/customers", map[string]any{"name": "A", "phone": "1"})
	mr.Close()

	resp := do(t, app, http.MethodGet, "/all_customers", nil)
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Empty(t, resp.header.Get("X-Cache"))
}

func TestNewResponseCache_NilSinCliente(t *testing.T) {
	assert.Nil(t, apphttp.NewResponseCache(nil, time.Minute, ""))
}
