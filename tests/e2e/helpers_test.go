//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/sitebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitebook-backend/internal/adapter/postgres/store"
	"github.com/heartmarshall/sitebook-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/sitebook-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/sitebook-backend/internal/auth"
	"github.com/heartmarshall/sitebook-backend/internal/config"
	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/internal/schema"
	authsvc "github.com/heartmarshall/sitebook-backend/internal/service/auth"
	"github.com/heartmarshall/sitebook-backend/internal/service/records"
	"github.com/heartmarshall/sitebook-backend/internal/transport/middleware"
	"github.com/heartmarshall/sitebook-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// Response helpers.
// ---------------------------------------------------------------------------

// errorCode extracts extensions.code from the first error.
func errorCode(t *testing.T, result map[string]any) string {
	t.Helper()
	errs, ok := result["errors"].([]any)
	require.True(t, ok, "expected errors array, got %v", result)
	require.NotEmpty(t, errs)

	first, ok := errs[0].(map[string]any)
	require.True(t, ok)
	extensions, ok := first["extensions"].(map[string]any)
	require.True(t, ok, "expected extensions in error")

	code, ok := extensions["code"].(string)
	require.True(t, ok, "expected code string in extensions")
	return code
}

// dataMap extracts "data" as an object.
func dataMap(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object, got %v", result)
	return data
}

// dataList extracts "data" as an array of objects.
func dataList(t *testing.T, result map[string]any) []map[string]any {
	t.Helper()
	raw, ok := result["data"].([]any)
	require.True(t, ok, "expected data array, got %v", result)

	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		require.True(t, ok)
		out = append(out, m)
	}
	return out
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	engines := records.WithPasswordHashing(store.NewEngines(pool, txm), bcrypt.MinCost)
	recordsService := records.NewService(logger, schema.NewRegistry(), engines)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)
	authService := authsvc.NewService(logger, userrepo.New(pool), jwtMgr)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(
		rest.Handlers{
			Records: rest.NewRecordsHandler(recordsService, logger, 1<<20),
			Auth:    rest.NewAuthHandler(authService, logger),
			Health:  rest.NewHealthHandler(pool, nil, "test-version"),
		},
		logger,
		config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type,X-Request-Id",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		middleware.Auth(authService),
		limiter.Limit(100),
	)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// post sends a JSON POST request and returns status + decoded body.
func (ts *testServer) post(t *testing.T, path, body, token string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// op runs model.operation as an authenticated caller.
func (ts *testServer) op(t *testing.T, token, model, operation, body string) (int, map[string]any) {
	t.Helper()
	return ts.post(t, "/api/"+model+"/"+operation, body, token)
}

// createTestUserAndGetToken seeds a user and signs an access token for it.
func createTestUserAndGetToken(t *testing.T, ts *testServer) (string, domain.User) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool)
	tok, _, err := ts.jwt.GenerateAccessToken(user.ID, user.Email)
	require.NoError(t, err)

	return tok, user
}
