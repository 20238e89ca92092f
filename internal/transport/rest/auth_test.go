package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/internal/service/auth"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	expiresAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &authServiceMock{
		LoginFunc: func(_ context.Context, _ auth.LoginInput) (*auth.AuthResult, error) {
			return &auth.AuthResult{
				AccessToken: "token-123",
				ExpiresAt:   expiresAt,
				User: &domain.User{
					ID:           userID,
					Name:         "Ana",
					Email:        "ana@example.com",
					PasswordHash: "$2a$10$secret",
				},
			}, nil
		},
	}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$10$secret")

	var resp struct {
		AccessToken string    `json:"accessToken"`
		TokenType   string    `json:"tokenType"`
		ExpiresAt   time.Time `json:"expiresAt"`
		User        struct {
			ID    uuid.UUID `json:"id"`
			Email string    `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "token-123", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.True(t, expiresAt.Equal(resp.ExpiresAt))
	assert.Equal(t, userID, resp.User.ID)

	calls := svc.LoginCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, auth.LoginInput{Email: "ana@example.com", Password: "hunter22"}, calls[0].Input)
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeErrors(t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, CodeValidation, body.Errors[0].Extensions["code"])
	assert.Empty(t, svc.LoginCalls())
}

func TestAuthHandler_Login_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(_ context.Context, _ auth.LoginInput) (*auth.AuthResult, error) {
			return nil, fmt.Errorf("login: %w", domain.ErrUnauthorized)
		},
	}
	h := NewAuthHandler(svc, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ana@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrors(t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, CodeUnauthenticated, body.Errors[0].Extensions["code"])
}
