package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/pkg/ctxutil"
)

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, expires, err := s.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   expires,
		User:        user,
	}, nil
}

// ValidateToken checks an access token and returns the caller it was issued
// to. Any token problem is reported as ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (ctxutil.Caller, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", slog.String("error", err.Error()))
		return ctxutil.Caller{}, domain.ErrUnauthorized
	}
	return ctxutil.Caller{UserID: claims.UserID, Email: claims.Email}, nil
}
