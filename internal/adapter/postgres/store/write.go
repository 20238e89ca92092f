package store

import (
	"context"
	"fmt"
	"maps"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/sitebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

// Create inserts one row with its nested children and returns it.
func (s *Store[E]) Create(ctx context.Context, w schema.Write) (any, error) {
	if err := unsupported("data", w); err != nil {
		return nil, err
	}

	var out *E
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		id, err := s.insert(ctx, w)
		if err != nil {
			return err
		}
		out, err = s.byID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMany inserts rows in one transaction. With skipDuplicates, rows that
// hit a unique constraint are skipped and not counted.
func (s *Store[E]) CreateMany(ctx context.Context, rows []schema.Write, skipDuplicates bool) (int64, error) {
	batch := &pgx.Batch{}
	for i, w := range rows {
		arg := fmt.Sprintf("data[%d]", i)
		if err := unsupported(arg, w); err != nil {
			return 0, err
		}
		if len(w.Children) > 0 {
			return 0, domain.NewValidationError(arg, "nested creates are not supported in createMany")
		}

		ins := s.sb.Insert(s.table).SetMap(w.Values)
		if skipDuplicates {
			ins = ins.Suffix("ON CONFLICT DO NOTHING")
		}
		query, args, err := s.build(ins)
		if err != nil {
			return 0, err
		}
		batch.Queue(query, args...)
	}

	var n int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		n, err = s.send(ctx, batch, s.model)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Update changes the row matched by where and returns it.
func (s *Store[E]) Update(ctx context.Context, where sq.Sqlizer, w schema.Write) (any, error) {
	if err := unsupported("data", w); err != nil {
		return nil, err
	}

	var out *E
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		id, err := s.update(ctx, where, w)
		if err != nil {
			return err
		}
		out, err = s.byID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateMany applies w to every row matched by where.
func (s *Store[E]) UpdateMany(ctx context.Context, where sq.Sqlizer, w schema.Write) (int64, error) {
	if err := unsupported("data", w); err != nil {
		return 0, err
	}
	if len(w.Values) == 0 {
		return s.Count(ctx, schema.Query{Where: where})
	}

	b := s.sb.Update(s.table).SetMap(w.Values)
	if where != nil {
		b = b.Where(where)
	}
	return s.exec(ctx, b)
}

// Upsert updates the row matched by where, or creates it when none matches.
// The lookup locks the row so a concurrent upsert waits for this one.
func (s *Store[E]) Upsert(ctx context.Context, where sq.Sqlizer, create, update schema.Write) (any, error) {
	if err := unsupported("create", create); err != nil {
		return nil, err
	}
	if err := unsupported("update", update); err != nil {
		return nil, err
	}

	var out *E
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		lookup := s.sb.Select(s.col("id")).From(s.table).Where(where).Limit(1).Suffix("FOR UPDATE")
		id, found, err := s.id(ctx, lookup)
		if err != nil {
			return err
		}

		if found {
			id, err = s.update(ctx, s.idEquals(id), update)
		} else {
			id, err = s.insert(ctx, create)
		}
		if err != nil {
			return err
		}
		out, err = s.byID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the row matched by where and returns it.
func (s *Store[E]) Delete(ctx context.Context, where sq.Sqlizer) (any, error) {
	row, err := s.one(ctx, s.sb.Delete(s.table).Where(where).Suffix("RETURNING *"))
	if err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteMany removes every row matched by where.
func (s *Store[E]) DeleteMany(ctx context.Context, where sq.Sqlizer) (int64, error) {
	b := s.sb.Delete(s.table)
	if where != nil {
		b = b.Where(where)
	}
	return s.exec(ctx, b)
}

// ---------------------------------------------------------------------------
// Write helpers
// ---------------------------------------------------------------------------

func (s *Store[E]) insert(ctx context.Context, w schema.Write) (uuid.UUID, error) {
	var b sq.Sqlizer = s.sb.Insert(s.table).SetMap(w.Values).Suffix("RETURNING id")
	if len(w.Values) == 0 {
		b = sq.Expr("INSERT INTO " + s.table + " DEFAULT VALUES RETURNING id")
	}

	id, _, err := s.id(ctx, b)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.insertChildren(ctx, id, w.Children); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// update returns the id of the updated row, or domain.ErrNotFound.
func (s *Store[E]) update(ctx context.Context, where sq.Sqlizer, w schema.Write) (uuid.UUID, error) {
	var b sq.Sqlizer = s.sb.Update(s.table).SetMap(w.Values).Where(where).Suffix("RETURNING " + s.col("id"))
	if len(w.Values) == 0 {
		b = s.sb.Select(s.col("id")).From(s.table).Where(where).Limit(1)
	}

	id, found, err := s.id(ctx, b)
	if err != nil {
		return uuid.Nil, err
	}
	if !found {
		return uuid.Nil, fmt.Errorf("%s: %w", s.model, domain.ErrNotFound)
	}
	if err := s.insertChildren(ctx, id, w.Children); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *Store[E]) insertChildren(ctx context.Context, parent uuid.UUID, children []schema.ChildWrite) error {
	for _, c := range children {
		batch := &pgx.Batch{}
		for _, row := range c.Rows {
			values := maps.Clone(row)
			values[c.ForeignKey] = parent

			ins := s.sb.Insert(c.Table).SetMap(values)
			if c.SkipDuplicates {
				ins = ins.Suffix("ON CONFLICT DO NOTHING")
			}
			query, args, err := s.build(ins)
			if err != nil {
				return err
			}
			batch.Queue(query, args...)
		}
		if _, err := s.send(ctx, batch, c.Table); err != nil {
			return err
		}
	}
	return nil
}

// send runs a batch and sums the affected rows.
func (s *Store[E]) send(ctx context.Context, batch *pgx.Batch, entity string) (int64, error) {
	if batch.Len() == 0 {
		return 0, nil
	}

	br := s.querier(ctx).SendBatch(ctx, batch)
	var n int64
	for range batch.Len() {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return 0, postgres.MapError(err, entity)
		}
		n += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return 0, postgres.MapError(err, entity)
	}
	return n, nil
}

func (s *Store[E]) exec(ctx context.Context, b sq.Sqlizer) (int64, error) {
	query, args, err := s.build(b)
	if err != nil {
		return 0, err
	}
	tag, err := s.querier(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, s.model)
	}
	return tag.RowsAffected(), nil
}

// unsupported rejects the nested relation operations recorded on w. They are
// valid input but have no SQL form here.
func unsupported(arg string, w schema.Write) error {
	if len(w.Nested) == 0 {
		return nil
	}
	errs := make([]domain.FieldError, 0, len(w.Nested))
	for _, n := range w.Nested {
		field, op, _ := strings.Cut(n, ".")
		errs = append(errs, domain.FieldError{
			Field:   arg + "." + field,
			Message: "nested " + op + " is not supported",
		})
	}
	return domain.NewValidationErrors(errs)
}
