package records

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

const passwordColumn = "password"

// PasswordHasher wraps the user engine so that plain-text passwords in
// creates and updates are stored as bcrypt hashes.
type PasswordHasher struct {
	schema.Engine
	cost int
}

var _ schema.Engine = (*PasswordHasher)(nil)

// NewPasswordHasher wraps e. cost is the bcrypt cost; out-of-range values
// fall back to bcrypt.DefaultCost.
func NewPasswordHasher(e schema.Engine, cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{Engine: e, cost: cost}
}

// WithPasswordHashing returns engines with the user engine wrapped.
func WithPasswordHashing(engines map[string]schema.Engine, cost int) map[string]schema.Engine {
	out := make(map[string]schema.Engine, len(engines))
	for name, e := range engines {
		if name == schema.ModelUser {
			e = NewPasswordHasher(e, cost)
		}
		out[name] = e
	}
	return out
}

func (h *PasswordHasher) Create(ctx context.Context, w schema.Write) (any, error) {
	w, err := h.hash(w, "data")
	if err != nil {
		return nil, err
	}
	return h.Engine.Create(ctx, w)
}

func (h *PasswordHasher) CreateMany(ctx context.Context, rows []schema.Write, skipDuplicates bool) (int64, error) {
	hashed := make([]schema.Write, len(rows))
	for i, w := range rows {
		var err error
		if hashed[i], err = h.hash(w, fmt.Sprintf("data[%d]", i)); err != nil {
			return 0, err
		}
	}
	return h.Engine.CreateMany(ctx, hashed, skipDuplicates)
}

func (h *PasswordHasher) Update(ctx context.Context, where sq.Sqlizer, w schema.Write) (any, error) {
	w, err := h.hash(w, "data")
	if err != nil {
		return nil, err
	}
	return h.Engine.Update(ctx, where, w)
}

func (h *PasswordHasher) UpdateMany(ctx context.Context, where sq.Sqlizer, w schema.Write) (int64, error) {
	w, err := h.hash(w, "data")
	if err != nil {
		return 0, err
	}
	return h.Engine.UpdateMany(ctx, where, w)
}

func (h *PasswordHasher) Upsert(ctx context.Context, where sq.Sqlizer, create, update schema.Write) (any, error) {
	create, err := h.hash(create, "create")
	if err != nil {
		return nil, err
	}
	if update, err = h.hash(update, "update"); err != nil {
		return nil, err
	}
	return h.Engine.Upsert(ctx, where, create, update)
}

// hash returns w with its password value replaced by a bcrypt hash. The
// caller's map is left untouched. arg is the argument path used in errors.
func (h *PasswordHasher) hash(w schema.Write, arg string) (schema.Write, error) {
	plain, ok := w.Values[passwordColumn].(string)
	if !ok {
		return w, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return w, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: arg + ".password", Message: "must be at most 72 bytes"},
		}}
	}
	if err != nil {
		return w, fmt.Errorf("hash password: %w", err)
	}

	values := make(map[string]any, len(w.Values))
	for k, v := range w.Values {
		values[k] = v
	}
	values[passwordColumn] = string(hashed)
	w.Values = values
	return w, nil
}
