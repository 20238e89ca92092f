package store

import (
	"context"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/sitebook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

// window is a Query resolved against the table: ordering defaulted, the cursor
// turned into an id bound and a negative take into a reversed scan.
type window struct {
	where    sq.Sqlizer
	order    []string
	distinct []string
	limit    *uint64
	offset   uint64
	reversed bool
}

// resolve plans q. ok is false when the cursor row does not exist, in which
// case the window is empty.
func (s *Store[E]) resolve(ctx context.Context, q schema.Query, defaultOrder []string) (w window, ok bool, err error) {
	w = window{where: q.Where, order: q.OrderBy, distinct: q.Distinct}
	if len(w.order) == 0 {
		w.order = defaultOrder
	}
	if q.Skip != nil {
		w.offset = uint64(*q.Skip)
	}
	if q.Take != nil {
		n := *q.Take
		if n < 0 {
			w.reversed, n = true, -n
		}
		limit := uint64(n)
		w.limit = &limit
	}

	if q.Cursor != nil {
		bound, found, err := s.cursorBound(ctx, q.Cursor, w.order, w.reversed)
		if err != nil || !found {
			return w, false, err
		}
		w.where = and(w.where, bound)
	}

	if w.reversed {
		w.order = reverseTerms(w.order)
	}
	return w, true, nil
}

// cursorBound turns the cursor row into a bound on id. Only an id ordering
// is supported: the bound is inclusive and follows the scan direction.
func (s *Store[E]) cursorBound(ctx context.Context, cursor sq.Sqlizer, order []string, reversed bool) (sq.Sqlizer, bool, error) {
	var desc bool
	switch {
	case slices.Equal(order, []string{s.col("id") + " ASC"}):
	case slices.Equal(order, []string{s.col("id") + " DESC"}):
		desc = true
	default:
		return nil, false, domain.NewValidationError("cursor", "cursor pagination requires ordering by id alone")
	}

	id, found, err := s.id(ctx, s.sb.Select(s.col("id")).From(s.table).Where(cursor).Limit(1))
	if err != nil || !found {
		return nil, false, err
	}

	op := " >= ?"
	if desc != reversed {
		op = " <= ?"
	}
	return sq.Expr(s.col("id")+op, id), true, nil
}

func and(a, b sq.Sqlizer) sq.Sqlizer {
	if a == nil {
		return b
	}
	return sq.And{a, b}
}

// rows selects the window's rows. DISTINCT ON keeps the first row of each
// distinct combination in the requested order, then the page is cut from
// what is left.
func (s *Store[E]) rows(w window) sq.SelectBuilder {
	b := s.sb.Select(s.col("*")).From(s.table)
	if w.where != nil {
		b = b.Where(w.where)
	}
	if len(w.distinct) > 0 {
		b = b.Options("DISTINCT ON (" + strings.Join(w.distinct, ", ") + ")").
			OrderBy(append(slices.Clone(w.distinct), w.order...)...)
		b = s.sb.Select("*").FromSelect(b, s.table)
	}
	return paginate(b.OrderBy(w.order...), w)
}

func paginate(b sq.SelectBuilder, w window) sq.SelectBuilder {
	if w.limit != nil {
		b = b.Limit(*w.limit)
	}
	if w.offset > 0 {
		b = b.Offset(w.offset)
	}
	return b
}

func (s *Store[E]) defaultOrder() []string {
	return []string{s.col("id") + " ASC"}
}

// FindUnique returns the row matched by a unique key or domain.ErrNotFound.
func (s *Store[E]) FindUnique(ctx context.Context, where sq.Sqlizer) (any, error) {
	row, err := s.one(ctx, s.sb.Select(s.col("*")).From(s.table).Where(where).Limit(1))
	if err != nil {
		return nil, err
	}
	return row, nil
}

// FindFirst returns the first row of the window, or nil when it is empty.
func (s *Store[E]) FindFirst(ctx context.Context, q schema.Query) (any, error) {
	take := 1
	if q.Take != nil {
		switch {
		case *q.Take == 0:
			return nil, nil
		case *q.Take < 0:
			take = -1
		}
	}
	q.Take = &take

	rows, err := s.findMany(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// FindMany returns the rows of the window in the requested order.
func (s *Store[E]) FindMany(ctx context.Context, q schema.Query) (any, error) {
	rows, err := s.findMany(ctx, q)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store[E]) findMany(ctx context.Context, q schema.Query) ([]*E, error) {
	w, ok, err := s.resolve(ctx, q, s.defaultOrder())
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*E{}, nil
	}

	rows, err := s.many(ctx, s.rows(w))
	if err != nil {
		return nil, err
	}
	if w.reversed {
		slices.Reverse(rows)
	}
	return rows, nil
}

// Count returns the number of rows in the window.
func (s *Store[E]) Count(ctx context.Context, q schema.Query) (int64, error) {
	w, ok, err := s.resolve(ctx, q, s.defaultOrder())
	if err != nil || !ok {
		return 0, err
	}

	query, args, err := s.build(s.sb.Select("COUNT(*)").FromSelect(s.rows(w), "counted"))
	if err != nil {
		return 0, err
	}
	var n int64
	if err := s.querier(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, s.model)
	}
	return n, nil
}

func reverseTerms(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = reverseTerm(t)
	}
	return out
}

// reverseTerm flips an ORDER BY term, NULLS placement included, so a
// backwards scan visits rows in exactly the opposite order.
func reverseTerm(term string) string {
	expr, nulls := term, ""
	if i := strings.LastIndex(term, " NULLS "); i >= 0 {
		expr, nulls = term[:i], term[i+len(" NULLS "):]
	}

	if strings.HasSuffix(expr, " DESC") {
		expr = strings.TrimSuffix(expr, " DESC") + " ASC"
	} else {
		expr = strings.TrimSuffix(expr, " ASC") + " DESC"
	}

	switch nulls {
	case "FIRST":
		expr += " NULLS LAST"
	case "LAST":
		expr += " NULLS FIRST"
	}
	return expr
}
