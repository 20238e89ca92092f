package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

func newRecordsRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// serveRecords routes through a mux so path values are populated.
func serveRecords(h *RecordsHandler, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/validate/{model}/{operation}", h.Validate)
	mux.HandleFunc("POST /api/{model}/{operation}", h.Execute)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Errors []struct {
		Message    string         `json:"message"`
		Path       []any          `json:"path"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

// ---------------------------------------------------------------------------
// Execute
// ---------------------------------------------------------------------------

func TestRecordsHandler_Execute_Success(t *testing.T) {
	t.Parallel()

	svc := &recordsServiceMock{
		ExecuteFunc: func(_ context.Context, _, _ string, _ []byte) (any, error) {
			return map[string]any{"_count": int64(2)}, nil
		},
	}
	h := NewRecordsHandler(svc, slog.New(slog.DiscardHandler), 1<<20)

	rec := serveRecords(h, newRecordsRequest(http.MethodPost, "/api/project/aggregate", `{"_count":true}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"_count":2}}`, rec.Body.String())

	calls := svc.ExecuteCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "project", calls[0].Model)
	assert.Equal(t, "aggregate", calls[0].Op)
	assert.JSONEq(t, `{"_count":true}`, string(calls[0].Body))
}

func TestRecordsHandler_Execute_NullResult(t *testing.T) {
	t.Parallel()

	svc := &recordsServiceMock{
		ExecuteFunc: func(_ context.Context, _, _ string, _ []byte) (any, error) {
			return nil, nil
		},
	}
	h := NewRecordsHandler(svc, slog.New(slog.DiscardHandler), 1<<20)

	rec := serveRecords(h, newRecordsRequest(http.MethodPost, "/api/team/findFirst", `{}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":null}`, rec.Body.String())
}

func TestRecordsHandler_Execute_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantExt  string
	}{
		{name: "validation", err: domain.NewValidationError("where", "required"), wantCode: http.StatusUnprocessableEntity, wantExt: CodeValidation},
		{name: "not found", err: fmt.Errorf("project: %w", domain.ErrNotFound), wantCode: http.StatusNotFound, wantExt: CodeNotFound},
		{name: "already exists", err: fmt.Errorf("user: %w", domain.ErrAlreadyExists), wantCode: http.StatusConflict, wantExt: CodeAlreadyExists},
		{name: "internal", err: errors.New("connection reset"), wantCode: http.StatusInternalServerError, wantExt: CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &recordsServiceMock{
				ExecuteFunc: func(_ context.Context, _, _ string, _ []byte) (any, error) {
					return nil, tt.err
				},
			}
			h := NewRecordsHandler(svc, slog.New(slog.DiscardHandler), 1<<20)

			rec := serveRecords(h, newRecordsRequest(http.MethodPost, "/api/project/findUnique", `{}`))

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeErrors(t, rec)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, tt.wantExt, body.Errors[0].Extensions["code"])
		})
	}
}

func TestRecordsHandler_Execute_InternalErrorHidesDetail(t *testing.T) {
	t.Parallel()

	svc := &recordsServiceMock{
		ExecuteFunc: func(_ context.Context, _, _ string, _ []byte) (any, error) {
			return nil, errors.New("pq: password authentication failed")
		},
	}
	h := NewRecordsHandler(svc, slog.New(slog.DiscardHandler), 1<<20)

	rec := serveRecords(h, newRecordsRequest(http.MethodPost, "/api/user/findMany", `{}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRecordsHandler_Execute_BodyTooLarge(t *testing.T) {
	t.Parallel()

	svc := &recordsServiceMock{}
	h := NewRecordsHandler(svc, slog.New(slog.DiscardHandler), 16)

	rec := serveRecords(h, newRecordsRequest(http.MethodPost, "/api/project/findMany", `{"where":{"name":{"contains":"tower"}}}`))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	body := decodeErrors(t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, CodeTooLarge, body.Errors[0].Extensions["code"])
	assert.Empty(t, svc.ExecuteCalls())
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestRecordsHandler_Validate_Success(t *testing.T) {
	t.Parallel()

	take := 5
	svc := &recordsServiceMock{
		ValidateFunc: func(model, op string, _ []byte) (*schema.Operation, error) {
			return &schema.Operation{Model: model, Name: op, Args: map[string]any{"take": take}}, nil
		},
	}
	h := NewRecordsHandler(svc, slog.New(slog.DiscardHandler), 1<<20)

	rec := serveRecords(h, newRecordsRequest(http.MethodPost, "/api/validate/budget/findMany", `{"take":5}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"take":5}}`, rec.Body.String())

	calls := svc.ValidateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "budget", calls[0].Model)
	assert.Equal(t, "findMany", calls[0].Op)
	assert.Empty(t, svc.ExecuteCalls())
}

func TestRecordsHandler_Validate_FieldErrors(t *testing.T) {
	t.Parallel()

	svc := &recordsServiceMock{
		ValidateFunc: func(_, _ string, _ []byte) (*schema.Operation, error) {
			return nil, &domain.ValidationError{Errors: []domain.FieldError{
				{Field: "where.AND[0].status", Message: "invalid value"},
				{Field: "take", Message: "must be an integer"},
			}}
		},
	}
	h := NewRecordsHandler(svc, slog.New(slog.DiscardHandler), 1<<20)

	rec := serveRecords(h, newRecordsRequest(http.MethodPost, "/api/validate/project/findMany", `{}`))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeErrors(t, rec)
	require.Len(t, body.Errors, 2)

	assert.Equal(t, "invalid value", body.Errors[0].Message)
	assert.Equal(t, []any{"where", "AND", float64(0), "status"}, body.Errors[0].Path)
	assert.Equal(t, "where.AND[0].status", body.Errors[0].Extensions["field"])
	assert.Equal(t, CodeValidation, body.Errors[0].Extensions["code"])

	assert.Equal(t, []any{"take"}, body.Errors[1].Path)
}
