package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", entity, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %s: %w", entity, pgErr.ConstraintName, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %s: %w", entity, pgErr.ConstraintName, domain.ErrNotFound)
		case "23514", "23502": // check_violation, not_null_violation
			return fmt.Errorf("%s: %s: %w", entity, pgErr.Message, domain.ErrValidation)
		case "42883", "22012", "22P02": // undefined_function, division_by_zero, invalid_text_representation
			return fmt.Errorf("%s: %s: %w", entity, pgErr.Message, domain.ErrValidation)
		case "42803", "22003": // grouping_error, numeric_value_out_of_range
			return fmt.Errorf("%s: %s: %w", entity, pgErr.Message, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", entity, err)
}
