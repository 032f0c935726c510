//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mohamm188/Trend-phone/internal/config"
	"github.com/mohamm188/Trend-phone/internal/infra"
	"github.com/mohamm188/Trend-phone/internal/model"
	"github.com/mohamm188/Trend-phone/internal/repository"
	"github.com/mohamm188/Trend-phone/internal/router"
	"github.com/mohamm188/Trend-phone/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("trendphone_test"),
		tcPostgres.WithUsername("trendphone"),
		tcPostgres.WithPassword("trendphone"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		StockPolicy:        config.StockPolicyAllow,
		CostingPolicy:      config.CostingLastCost,
		WorkerPoolSize:     1,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.CloseDatabase(db) })

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed the admin account.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.MinCost)
	require.NoError(t, err)
	users := repository.NewUserRepository(db)
	require.NoError(t, users.Create(ctx, &model.User{
		Username: "admin", Name: "Admin", PasswordHash: string(hash), Role: "admin", Active: true,
	}))

	mailer := infra.NewMailer(cfg, infra.NewCircuitBreaker(infra.DefaultCBConfig()))
	dispatcher := worker.NewDispatcher(rdb)

	engine := router.New(cfg, db, rdb, mailer, dispatcher)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	env := &testEnv{server: srv}

	resp := do(t, srv, http.MethodPost, "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "admin1234"}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &login)
	require.NotEmpty(t, login.AccessToken)
	env.token = login.AccessToken

	return env
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CreditSaleCycle(t *testing.T) {
	env := setupTestEnv(t)

	// Create a product.
	resp := do(t, env.server, http.MethodPost, "/v1/products", jsonBody(t, map[string]any{
		"sku": "IPH-15-128", "name": "iPhone 15 128GB", "category": "phone",
		"sale_price": "850.00", "unit_cost": "700.00", "opening_stock": 10,
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product struct {
		ID            string `json:"id"`
		StockQuantity int    `json:"stock_quantity"`
	}
	decodeJSON(t, resp, &product)
	require.Equal(t, 10, product.StockQuantity)

	// Create a customer.
	resp = do(t, env.server, http.MethodPost, "/v1/customers", jsonBody(t, map[string]any{
		"name": "Ali",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var customer struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &customer)

	// Unpaid credit sale: 2 × 850 = 1700.
	resp = do(t, env.server, http.MethodPost, "/v1/sales", jsonBody(t, map[string]any{
		"customer_id": customer.ID,
		"items": []map[string]any{
			{"product_id": product.ID, "quantity": 2, "unit_price": "850.00"},
		},
		"total_amount":   "1700.00",
		"payment_status": "unpaid",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sale struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &sale)

	// Stock dropped.
	resp = do(t, env.server, http.MethodGet, "/v1/products/"+product.ID, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &product)
	assert.Equal(t, 8, product.StockQuantity)

	// Balance equals the debt.
	var stmt struct {
		Balance      json.Number `json:"balance"`
		Transactions []struct {
			Kind string `json:"kind"`
		} `json:"transactions"`
	}
	resp = do(t, env.server, http.MethodGet, "/v1/customers/"+customer.ID+"/statement", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &stmt)
	assert.Equal(t, "1700", stmt.Balance.String())
	require.Len(t, stmt.Transactions, 1)
	assert.Equal(t, "sale", stmt.Transactions[0].Kind)

	// Partial payment settles half.
	resp = do(t, env.server, http.MethodPost, "/v1/customers/"+customer.ID+"/payments", jsonBody(t, map[string]any{
		"amount": "850.00",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, http.MethodGet, "/v1/customers/"+customer.ID+"/statement", nil, env.token)
	decodeJSON(t, resp, &stmt)
	assert.Equal(t, "850", stmt.Balance.String())
	assert.Len(t, stmt.Transactions, 2)
}

func TestE2E_PurchaseUpdatesCostAndSupplierBalance(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodPost, "/v1/products", jsonBody(t, map[string]any{
		"sku": "CASE-01", "name": "Clear Case", "category": "accessory",
		"sale_price": "15.00", "unit_cost": "8.00", "opening_stock": 2,
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product struct {
		ID       string      `json:"id"`
		UnitCost json.Number `json:"unit_cost"`
	}
	decodeJSON(t, resp, &product)

	resp = do(t, env.server, http.MethodPost, "/v1/suppliers", jsonBody(t, map[string]any{
		"name": "Acme Wholesale",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var supplier struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &supplier)

	resp = do(t, env.server, http.MethodPost, "/v1/purchases", jsonBody(t, map[string]any{
		"supplier_id": supplier.ID,
		"items": []map[string]any{
			{"product_id": product.ID, "quantity": 5, "unit_cost": "9.00"},
		},
		"total_amount":   "45.00",
		"payment_status": "unpaid",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var got struct {
		StockQuantity int         `json:"stock_quantity"`
		UnitCost      json.Number `json:"unit_cost"`
	}
	resp = do(t, env.server, http.MethodGet, "/v1/products/"+product.ID, nil, env.token)
	decodeJSON(t, resp, &got)
	assert.Equal(t, 7, got.StockQuantity)
	assert.Equal(t, "9", got.UnitCost.String())

	var stmt struct {
		Balance json.Number `json:"balance"`
	}
	resp = do(t, env.server, http.MethodGet, "/v1/suppliers/"+supplier.ID+"/statement", nil, env.token)
	decodeJSON(t, resp, &stmt)
	assert.Equal(t, "45", stmt.Balance.String())
}

func TestE2E_SaleTotalMismatchRejected(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodPost, "/v1/products", jsonBody(t, map[string]any{
		"sku": "CBL-01", "name": "USB-C Cable", "category": "accessory",
		"sale_price": "5.00", "opening_stock": 10,
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &product)

	resp = do(t, env.server, http.MethodPost, "/v1/sales", jsonBody(t, map[string]any{
		"items": []map[string]any{
			{"product_id": product.ID, "quantity": 2, "unit_price": "5.00"},
		},
		"total_amount":   "11.00",
		"payment_status": "paid",
	}), env.token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Stock untouched.
	var got struct {
		StockQuantity int `json:"stock_quantity"`
	}
	resp = do(t, env.server, http.MethodGet, "/v1/products/"+product.ID, nil, env.token)
	decodeJSON(t, resp, &got)
	assert.Equal(t, 10, got.StockQuantity)
}

func TestE2E_BackupRoundTrip(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodPost, "/v1/products", jsonBody(t, map[string]any{
		"sku": "IPH-15-128", "name": "iPhone 15 128GB", "category": "phone",
		"sale_price": "850.00", "opening_stock": 10,
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, http.MethodPost, "/v1/customers", jsonBody(t, map[string]any{
		"name": "Ali", "opening_balance": "120.00",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var customer struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &customer)

	// Export the snapshot.
	resp = do(t, env.server, http.MethodGet, "/v1/backup/export", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap map[string]any
	decodeJSON(t, resp, &snap)

	// Mutate, then restore the snapshot.
	resp = do(t, env.server, http.MethodPost, "/v1/customers/"+customer.ID+"/payments", jsonBody(t, map[string]any{
		"amount": "120.00",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, http.MethodPost, "/v1/backup/import", jsonBody(t, snap), env.token)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// The payment is gone; the balance is re-derived from the restored log.
	var stmt struct {
		Balance      json.Number `json:"balance"`
		Transactions []any       `json:"transactions"`
	}
	resp = do(t, env.server, http.MethodGet, "/v1/customers/"+customer.ID+"/statement", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &stmt)
	assert.Equal(t, "120", stmt.Balance.String())
	assert.Len(t, stmt.Transactions, 1)
}

func TestE2E_StaffCannotImportBackup(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodPost, "/v1/auth/users", jsonBody(t, map[string]any{
		"username": "cashier", "name": "Cashier One", "password": "longenough1", "role": "staff",
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, http.MethodPost, "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "cashier", "password": "longenough1"}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &login)

	resp = do(t, env.server, http.MethodPost, "/v1/backup/import", jsonBody(t, map[string]any{}), login.AccessToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_HealthReportsBreakerState(t *testing.T) {
	env := setupTestEnv(t)

	resp, err := env.server.Client().Get(env.server.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]any
	decodeJSON(t, resp, &health)
	assert.Equal(t, true, health["ok"])
	assert.Equal(t, "connected", health["db"])
	assert.Equal(t, "connected", health["redis"])
	assert.Equal(t, "closed", health["smtp_breaker"])
	assert.Equal(t, float64(0), health["dlq_depth"], "fresh deployment has no parked alert jobs")
}
