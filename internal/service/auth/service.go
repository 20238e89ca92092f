package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitebook-backend/internal/auth"
	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
	}
}
