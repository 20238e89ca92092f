package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the API.
// PasswordHash never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"        db:"id"`
	Name         string    `json:"name"      db:"name"`
	Email        string    `json:"email"     db:"email"`
	PasswordHash string    `json:"-"         db:"password"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
