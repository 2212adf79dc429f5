package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrops-br/inventory-dashboard-api/internal/app/dto"
	"github.com/mrops-br/inventory-dashboard-api/internal/app/service"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/config"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/identity"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/repository/memory"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/telemetry"
	"github.com/mrops-br/inventory-dashboard-api/internal/pkg/clock"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "admin123"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	telem := telemetry.NewNoOpTelemetry(&config.OTLPConfig{
		ServiceName: "inventory-api-test",
		Environment: "test",
	})
	tracer := telem.TracerProvider.Tracer("test")
	meter := telem.MeterProvider.Meter("test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	clk := clock.NewFake(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	repo := memory.NewCatalogRepository(clk, tracer, logger)
	require.NoError(t, repo.Seed(context.Background()))

	provider := identity.NewStaticProvider(testEmail, testPassword, "", logger)
	gate := service.NewAuthGate(provider, clk, tracer, meter, logger)
	gate.Restore(context.Background())

	handlers := Handlers{
		Product:   handler.NewProductHandler(service.NewProductService(repo, clk, tracer, meter, logger), logger),
		Analytics: handler.NewAnalyticsHandler(service.NewAnalyticsService(repo, tracer, meter, logger), logger),
		Auth:      handler.NewAuthHandler(gate, logger),
	}

	srv := NewServer(&config.ServerConfig{Host: "127.0.0.1", Port: "0"}, handlers, gate, logger, telem)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

func signIn(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	resp, body := doJSON(t, ts, http.MethodPost, "/auth/signin", "", map[string]string{
		"email":    testEmail,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(body, &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func TestHealthEndpointIsOpen(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, ts, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestCatalogRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/products", "/dashboard", "/analytics"} {
		resp, _ := doJSON(t, ts, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}

	resp, _ := doJSON(t, ts, http.MethodGet, "/products", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignInWrongPasswordLeavesCatalogUntouched(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, ts, http.MethodPost, "/auth/signin", "", map[string]string{
		"email":    testEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The gate stayed anonymous.
	resp, body := doJSON(t, ts, http.MethodGet, "/auth/session", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(body, &session))
	assert.Equal(t, "anonymous", session.State)

	// And the seed catalog is intact.
	token := signIn(t, ts)
	resp, body = doJSON(t, ts, http.MethodGet, "/products", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var products []dto.ProductResponse
	require.NoError(t, json.Unmarshal(body, &products))
	assert.Len(t, products, 3)
}

func TestSignInValidation(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, ts, http.MethodPost, "/auth/signin", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var ve struct {
		Error  string          `json:"error"`
		Fields dto.FieldErrors `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &ve))
	assert.Equal(t, "validation_error", ve.Error)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "password")
}

func TestSignOutRevokesSession(t *testing.T) {
	ts := newTestServer(t)
	token := signIn(t, ts)

	resp, _ := doJSON(t, ts, http.MethodPost, "/auth/signout", "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodGet, "/products", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductCRUDFlow(t *testing.T) {
	ts := newTestServer(t)
	token := signIn(t, ts)

	// Create
	resp, body := doJSON(t, ts, http.MethodPost, "/products", token, map[string]any{
		"name":        "Standing Desk",
		"description": "Height-adjustable desk",
		"category":    "Furniture",
		"price":       499.99,
		"stock":       4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.MutationResponse
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotNil(t, created.Product)
	assert.Contains(t, created.Message, "Standing Desk")
	assert.Equal(t, "low_stock", created.Product.StockStatus)

	id := created.Product.ID

	// Read back
	resp, body = doJSON(t, ts, http.MethodGet, "/products/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Standing Desk", got.Name)

	// Partial update: only stock changes
	resp, body = doJSON(t, ts, http.MethodPatch, "/products/"+id, token, map[string]any{
		"stock": 25,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.MutationResponse
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, 25, updated.Product.Stock)
	assert.Equal(t, 499.99, updated.Product.Price)
	assert.Equal(t, "well_stocked", updated.Product.StockStatus)

	// Delete
	resp, body = doJSON(t, ts, http.MethodDelete, "/products/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var deleted dto.MutationResponse
	require.NoError(t, json.Unmarshal(body, &deleted))
	assert.Contains(t, deleted.Message, "Standing Desk")

	resp, _ = doJSON(t, ts, http.MethodGet, "/products/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProductValidationAnnotatesFields(t *testing.T) {
	ts := newTestServer(t)
	token := signIn(t, ts)

	resp, body := doJSON(t, ts, http.MethodPost, "/products", token, map[string]any{
		"name":  "",
		"price": -10,
		"stock": -1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var ve struct {
		Error  string          `json:"error"`
		Fields dto.FieldErrors `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &ve))
	assert.Equal(t, "validation_error", ve.Error)
	assert.Equal(t, "Product name is required", ve.Fields["name"])
	assert.Equal(t, "Please enter a valid price greater than 0", ve.Fields["price"])
	assert.Equal(t, "Please enter a valid stock quantity (0 or greater)", ve.Fields["stock"])

	// The invalid submission never reached the catalog.
	resp, body = doJSON(t, ts, http.MethodGet, "/products", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var products []dto.ProductResponse
	require.NoError(t, json.Unmarshal(body, &products))
	assert.Len(t, products, 3)
}

func TestEditMissingProductDegradesToNotFound(t *testing.T) {
	ts := newTestServer(t)
	token := signIn(t, ts)

	resp, body := doJSON(t, ts, http.MethodPatch, "/products/stale-link-id", token, map[string]any{
		"name": "Renamed",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var er struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &er))
	assert.Equal(t, "not_found", er.Error)

	resp, _ = doJSON(t, ts, http.MethodDelete, "/products/stale-link-id", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboardAndAnalyticsViews(t *testing.T) {
	ts := newTestServer(t)
	token := signIn(t, ts)

	resp, body := doJSON(t, ts, http.MethodGet, "/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dashboard dto.DashboardResponse
	require.NoError(t, json.Unmarshal(body, &dashboard))
	assert.Equal(t, 3, dashboard.TotalProducts)
	// 1299.99*15 + 199.99*32 + 349.99*8
	assert.InDelta(t, 1299.99*15+199.99*32+349.99*8, dashboard.InventoryValue, 1e-6)
	assert.Equal(t, 1, dashboard.LowStockItems) // Office Chair at 8
	assert.Equal(t, 2, dashboard.Categories)
	require.Len(t, dashboard.RecentProducts, 3)
	assert.Equal(t, "Premium Laptop", dashboard.RecentProducts[0].Name)

	resp, body = doJSON(t, ts, http.MethodGet, "/analytics", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var analytics dto.AnalyticsResponse
	require.NoError(t, json.Unmarshal(body, &analytics))
	assert.Equal(t, 15+32+8, analytics.TotalStock)
	assert.Equal(t, 2, analytics.CategoryCount)
	require.NotEmpty(t, analytics.TopCategories)
	assert.Equal(t, "Electronics", analytics.TopCategories[0].Category)
	require.NotEmpty(t, analytics.MostValuable)
	assert.Equal(t, "Premium Laptop", analytics.MostValuable[0].Product.Name)
	assert.Equal(t, 0, analytics.StockBuckets.OutOfStock)
	assert.Equal(t, 1, analytics.StockBuckets.LowStock)
	assert.Equal(t, 2, analytics.StockBuckets.WellStocked)
}
