package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

// recordsService defines the minimal interface needed by RecordsHandler.
type recordsService interface {
	Validate(model, op string, body []byte) (*schema.Operation, error)
	Execute(ctx context.Context, model, op string, body []byte) (any, error)
}

// RecordsHandler serves model operations.
type RecordsHandler struct {
	svc          recordsService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewRecordsHandler creates a RecordsHandler. Request bodies larger than
// maxBodyBytes are rejected.
func NewRecordsHandler(svc recordsService, logger *slog.Logger, maxBodyBytes int64) *RecordsHandler {
	return &RecordsHandler{
		svc:          svc,
		log:          logger.With("handler", "records"),
		maxBodyBytes: maxBodyBytes,
	}
}

// dataResponse wraps a successful result.
type dataResponse struct {
	Data any `json:"data"`
}

// Execute handles POST /api/{model}/{operation}.
func (h *RecordsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out, err := h.svc.Execute(r.Context(), r.PathValue("model"), r.PathValue("operation"), body)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Data: out})
}

// Validate handles POST /api/validate/{model}/{operation}. It answers with
// the normalized arguments, or 422 and the field errors.
func (h *RecordsHandler) Validate(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	o, err := h.svc.Validate(r.PathValue("model"), r.PathValue("operation"), body)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dataResponse{Data: o.Args})
}

func (h *RecordsHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
}
