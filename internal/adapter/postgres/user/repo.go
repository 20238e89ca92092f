// Package user looks up accounts for sign-in.
package user

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

// Repo reads users from PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.get(ctx, sq.Expr("id = ?", id))
}

// GetByEmail returns a user by email address. The match is exact.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, sq.Expr("email = ?", email))
}

func (r *Repo) get(ctx context.Context, where sq.Sqlizer) (*domain.User, error) {
	query, args, err := r.sb.Select("*").From("users").Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	u, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.User])
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}
	return u, nil
}
