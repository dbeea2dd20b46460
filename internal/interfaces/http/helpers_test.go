package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/events"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/pedidos-api/internal/interfaces/http"
	"github.com/jhoicas/pedidos-api/internal/testutil"
)

// countingProvider cuenta cuántas conexiones se adquieren y se cierran.
type countingProvider struct {
	inner    repository.StoreProvider
	err      error
	acquired atomic.Int32
	closed   atomic.Int32
}

func (p *countingProvider) Acquire(ctx context.Context) (repository.ScopedStore, error) {
	if p.err != nil {
		return nil, p.err
	}
	s, err := p.inner.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	p.acquired.Add(1)
	return &countingStore{ScopedStore: s, closed: &p.closed}, nil
}

type countingStore struct {
	repository.ScopedStore
	closed *atomic.Int32
}

func (s *countingStore) Close() error {
	s.closed.Add(1)
	return s.ScopedStore.Close()
}

// newTestApp arma la app como cmd/api sobre una SQLite temporal. mod permite
// ajustar las dependencias antes de registrar las rutas.
func newTestApp(t *testing.T, mod ...func(*apphttp.RouterDeps)) (*fiber.App, *countingProvider) {
	t.Helper()
	provider := &countingProvider{inner: testutil.NewSQLiteProvider(t)}
	deps := apphttp.RouterDeps{
		Stores:     provider,
		Events:     events.NopPublisher{},
		Receipts:   pdf.NewMarotoReceiptGenerator("Pedidos Test"),
		ListPolicy: usecase.DefaultListPolicy,
	}
	for _, m := range mod {
		m(&deps)
	}

	app := fiber.New()
	app.Use(recover.New())
	apphttp.Router(app, deps)
	return app, provider
}

type testResponse struct {
	status int
	header http.Header
	body   []byte
}

func (r testResponse) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.body, v), "body: %s", r.body)
}

func (r testResponse) errorCode(t *testing.T) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	r.decode(t, &body)
	return body.Code
}

// do envía la petición; body nil no manda cuerpo, string se manda tal cual.
func do(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) testResponse {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		bs, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(bs)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return testResponse{status: resp.StatusCode, header: resp.Header, body: raw}
}

// create hace POST y devuelve el id informado.
func create(t *testing.T, app *fiber.App, path string, body any, headers ...string) int64 {
	t.Helper()
	resp := do(t, app, http.MethodPost, path, body, headers...)
	require.Equal(t, http.StatusOK, resp.status, "POST %s: %s", path, resp.body)
	var out struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	resp.decode(t, &out)
	require.Positive(t, out.ID)
	return out.ID
}
