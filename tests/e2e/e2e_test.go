//go:build e2e

package e2e_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2E_LiveEndpoint verifies the /live liveness probe returns 200 OK.
func TestE2E_LiveEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.Client.Get(ts.URL + "/live")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

// TestE2E_ReadyEndpoint verifies /ready returns 200 when the database is reachable.
func TestE2E_ReadyEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.Client.Get(ts.URL + "/ready")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestE2E_HealthEndpoint verifies /health reports the version and the database.
func TestE2E_HealthEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.Client.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "test-version", body["version"])

	components, ok := body["components"].(map[string]any)
	require.True(t, ok)
	db, ok := components["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", db["status"])
}

// TestE2E_RequestIDEchoed verifies the request ID header round-trips.
func TestE2E_RequestIDEchoed(t *testing.T) {
	ts := setupTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/live", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "e2e-req-1")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "e2e-req-1", resp.Header.Get("X-Request-Id"))
}
