package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitebook-backend/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go -pkg middleware . tokenValidator

func TestAuth_ValidToken(t *testing.T) {
	caller := ctxutil.Caller{UserID: uuid.New(), Email: "pm@example.com"}
	validator := &tokenValidatorMock{
		ValidateTokenFunc: func(ctx context.Context, token string) (ctxutil.Caller, error) {
			if token == "valid-token" {
				return caller, nil
			}
			return ctxutil.Caller{}, errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := ctxutil.CallerFromCtx(r.Context())
		if !ok {
			t.Error("expected caller in context")
			return
		}
		if got != caller {
			t.Errorf("expected caller %+v, got %+v", caller, got)
		}
		w.WriteHeader(http.StatusOK)
	})

	wrappedHandler := Auth(validator)(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/project/findMany", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := &tokenValidatorMock{
		ValidateTokenFunc: func(ctx context.Context, token string) (ctxutil.Caller, error) {
			return ctxutil.Caller{}, errors.New("invalid token")
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for invalid token")
	})

	wrappedHandler := Auth(validator)(handler)

	req := httptest.NewRequest(http.MethodPost, "/api/project/findMany", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"UNAUTHENTICATED"`) {
		t.Errorf("expected UNAUTHENTICATED code in body, got %s", rec.Body.String())
	}
}

func TestAuth_MissingToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			validator := &tokenValidatorMock{
				ValidateTokenFunc: func(ctx context.Context, token string) (ctxutil.Caller, error) {
					t.Error("ValidateToken should not be called without a bearer token")
					return ctxutil.Caller{}, errors.New("should not be called")
				},
			}

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler should not be called without a bearer token")
			})

			req := httptest.NewRequest(http.MethodPost, "/api/project/findMany", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			Auth(validator)(handler).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
			}
			if len(validator.ValidateTokenCalls()) > 0 {
				t.Error("ValidateToken should not be called")
			}
		})
	}
}

func TestAuth_ReportsCallerToLogger(t *testing.T) {
	userID := uuid.New()
	validator := &tokenValidatorMock{
		ValidateTokenFunc: func(ctx context.Context, token string) (ctxutil.Caller, error) {
			return ctxutil.Caller{UserID: userID}, nil
		},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Chain(Logger(logger), Auth(validator))(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/project/findMany", nil)
	req.Header.Set("Authorization", "Bearer token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(buf.String(), userID.String()) {
		t.Errorf("expected log to contain user_id %s, got %q", userID, buf.String())
	}
}

func TestExtractBearerToken_Cases(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer with token", "Bearer valid-token", "valid-token"},
		{"bearer lowercase", "bearer valid-token", "valid-token"},
		{"bearer mixed case", "BEARER valid-token", "valid-token"},
		{"basic auth", "Basic dXNlcjpwYXNz", ""},
		{"bearer no space", "Bearertoken", ""},
		{"bearer empty token", "Bearer ", ""},
		{"just bearer", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			got := extractBearerToken(req)
			if got != tc.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}
