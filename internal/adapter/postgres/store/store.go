// Package store runs compiled schema operations against PostgreSQL. One
// generic Store serves every model; rows scan into the domain structs by
// their db tags.
package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

var _ schema.Engine = (*Store[domain.Project])(nil)

// Store executes operations on one table. E is the domain struct of a row.
type Store[E any] struct {
	pool  *pgxpool.Pool
	tx    *postgres.TxManager
	model string
	table string
	sb    sq.StatementBuilderType
}

// New creates a store for model backed by table.
func New[E any](pool *pgxpool.Pool, tx *postgres.TxManager, model, table string) *Store[E] {
	return &Store[E]{
		pool:  pool,
		tx:    tx,
		model: model,
		table: table,
		sb:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// NewEngines returns a store for every registered model, keyed by model name.
func NewEngines(pool *pgxpool.Pool, tx *postgres.TxManager) map[string]schema.Engine {
	return map[string]schema.Engine{
		schema.ModelUser:           New[domain.User](pool, tx, schema.ModelUser, "users"),
		schema.ModelProject:        New[domain.Project](pool, tx, schema.ModelProject, "projects"),
		schema.ModelBudget:         New[domain.Budget](pool, tx, schema.ModelBudget, "budgets"),
		schema.ModelTeam:           New[domain.Team](pool, tx, schema.ModelTeam, "teams"),
		schema.ModelMilestone:      New[domain.Milestone](pool, tx, schema.ModelMilestone, "milestones"),
		schema.ModelChecklistItem:  New[domain.ChecklistItem](pool, tx, schema.ModelChecklistItem, "checklist_items"),
		schema.ModelDocument:       New[domain.Document](pool, tx, schema.ModelDocument, "documents"),
		schema.ModelSiteImage:      New[domain.SiteImage](pool, tx, schema.ModelSiteImage, "site_images"),
		schema.ModelOutgoingLetter: New[domain.OutgoingLetter](pool, tx, schema.ModelOutgoingLetter, "outgoing_letters"),
		schema.ModelIncomingLetter: New[domain.IncomingLetter](pool, tx, schema.ModelIncomingLetter, "incoming_letters"),
		schema.ModelReport:         New[domain.Report](pool, tx, schema.ModelReport, "reports"),
	}
}

func (s *Store[E]) querier(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, s.pool)
}

func (s *Store[E]) col(name string) string {
	return s.table + "." + name
}

func (s *Store[E]) idEquals(id uuid.UUID) sq.Sqlizer {
	return sq.Expr(s.col("id")+" = ?", id)
}

// ---------------------------------------------------------------------------
// Row helpers
// ---------------------------------------------------------------------------

func (s *Store[E]) build(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build %s query: %w", s.model, err)
	}
	return query, args, nil
}

// one returns the single row of b, or domain.ErrNotFound.
func (s *Store[E]) one(ctx context.Context, b sq.Sqlizer) (*E, error) {
	query, args, err := s.build(b)
	if err != nil {
		return nil, err
	}

	rows, err := s.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, s.model)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[E])
	if err != nil {
		return nil, postgres.MapError(err, s.model)
	}
	return row, nil
}

func (s *Store[E]) many(ctx context.Context, b sq.Sqlizer) ([]*E, error) {
	query, args, err := s.build(b)
	if err != nil {
		return nil, err
	}

	rows, err := s.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, s.model)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[E])
	if err != nil {
		return nil, postgres.MapError(err, s.model)
	}
	return out, nil
}

func (s *Store[E]) maps(ctx context.Context, b sq.Sqlizer) ([]map[string]any, error) {
	query, args, err := s.build(b)
	if err != nil {
		return nil, err
	}

	rows, err := s.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, s.model)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, postgres.MapError(err, s.model)
	}
	return out, nil
}

// id scans the id returned by b. found is false when b returned no row.
func (s *Store[E]) id(ctx context.Context, b sq.Sqlizer) (id uuid.UUID, found bool, err error) {
	query, args, err := s.build(b)
	if err != nil {
		return uuid.Nil, false, err
	}

	err = s.querier(ctx).QueryRow(ctx, query, args...).Scan(&id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return uuid.Nil, false, nil
	case err != nil:
		return uuid.Nil, false, postgres.MapError(err, s.model)
	}
	return id, true, nil
}

func (s *Store[E]) byID(ctx context.Context, id uuid.UUID) (*E, error) {
	return s.one(ctx, s.sb.Select(s.col("*")).From(s.table).Where(s.idEquals(id)))
}
