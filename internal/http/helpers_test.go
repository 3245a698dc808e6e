package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"coffeeshop/internal/config"
	"coffeeshop/internal/domain"
	"coffeeshop/internal/http/handlers"
	applog "coffeeshop/internal/log"
	"coffeeshop/internal/repos"
	"coffeeshop/internal/services"
)

type testEnv struct {
	app  *fiber.App
	db   *sqlx.DB
	deps *handlers.Deps
}

// newTestEnv loads every store synchronously so requests see a settled state.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		DBDSN:                 ":memory:",
		DeliveryFee:           decimal.RequireFromString("2.00"),
		DeliveryFeeDiscounted: decimal.RequireFromString("1.00"),
	}
	deps := handlers.NewDeps(db, cfg)
	ctx := context.Background()
	require.NoError(t, deps.Catalog.Refresh(ctx))
	deps.Favorites.Load(ctx)
	deps.Locations.Load(ctx)

	app, err := handlers.NewApp(deps, handlers.Options{})
	require.NoError(t, err)
	t.Cleanup(deps.Writer.Wait)
	return &testEnv{app: app, db: db, deps: deps}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

type cartResp struct {
	Cart    domain.CartState     `json:"cart"`
	Summary services.CartSummary `json:"summary"`
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

func captureLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	applog.SetLogger(zap.New(core))
	t.Cleanup(func() { applog.SetLogger(nil) })
	return logs
}

var (
	mochaID = repos.ProductID("caffe-mocha")
	flatID  = repos.ProductID("flat-white")
)
