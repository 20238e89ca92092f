package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaVersioner reports the applied migration version.
type schemaVersioner interface {
	GetDBVersion(ctx context.Context) (int64, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	schema  schemaVersioner
	version string
}

// NewHealthHandler creates a HealthHandler. schema may be nil, in which case
// /health does not report the migration version.
func NewHealthHandler(db dbPinger, schema schemaVersioner, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status, body := http.StatusOK, "ok"
	if err := h.db.Ping(ctx); err != nil {
		status, body = http.StatusServiceUnavailable, "down"
	}

	writeJSON(w, status, HealthResponse{
		Status:    body,
		Timestamp: time.Now(),
	})
}

// Health is the full health check: database latency, applied migration
// version and build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["database"] = CompStatus{
			Status:  "ok",
			Latency: time.Since(start).String(),
		}
	}

	if h.schema != nil {
		if v, err := h.schema.GetDBVersion(ctx); err != nil {
			components["schema"] = CompStatus{Status: "down"}
			overallStatus = "down"
		} else {
			components["schema"] = CompStatus{Status: "ok", Detail: "migration " + strconv.FormatInt(v, 10)}
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
