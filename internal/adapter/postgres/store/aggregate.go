package store

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

// Aggregate computes the requested aggregates over the window. The result is
// keyed by function, then by field: {"_avg": {"total": 12.5}}.
func (s *Store[E]) Aggregate(ctx context.Context, q schema.Query, a schema.Aggregation) (map[string]any, error) {
	if a.Empty() {
		return map[string]any{}, nil
	}

	w, ok, err := s.resolve(ctx, q, s.defaultOrder())
	if err != nil {
		return nil, err
	}
	source := s.rows(w)
	if !ok {
		source = source.Where("FALSE")
	}

	rows, err := s.maps(ctx, s.sb.Select(aggregateColumns(a)...).FromSelect(source, s.table))
	if err != nil {
		return nil, err
	}
	return reshape(rows[0]), nil
}

// GroupBy returns one entry per group with the grouped fields and the
// requested aggregates. Groups are ordered by the grouped fields unless an
// ordering is given.
func (s *Store[E]) GroupBy(ctx context.Context, q schema.Query, g schema.Grouping) ([]map[string]any, error) {
	columns := make([]string, 0, len(g.By))
	exprs := make([]string, 0, len(g.By))
	defaultOrder := make([]string, 0, len(g.By))
	for _, by := range g.By {
		columns = append(columns, by.Expr+" AS "+alias(by.Field))
		exprs = append(exprs, by.Expr)
		defaultOrder = append(defaultOrder, by.Expr+" ASC")
	}
	columns = append(columns, aggregateColumns(g.Aggregation)...)

	w, _, err := s.resolve(ctx, schema.Query{Where: q.Where, OrderBy: q.OrderBy, Take: q.Take, Skip: q.Skip}, defaultOrder)
	if err != nil {
		return nil, err
	}

	b := s.sb.Select(columns...).From(s.table)
	if w.where != nil {
		b = b.Where(w.where)
	}
	b = b.GroupBy(exprs...)
	if g.Having != nil {
		b = b.Having(g.Having)
	}
	rows, err := s.maps(ctx, paginate(b.OrderBy(w.order...), w))
	if err != nil {
		return nil, err
	}

	if w.reversed {
		slices.Reverse(rows)
	}
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, reshape(row))
	}
	return out, nil
}

// aggregateColumns selects every aggregate under a "function.field" alias.
func aggregateColumns(a schema.Aggregation) []string {
	var out []string
	add := func(fn string, sel []schema.Selected) {
		for _, f := range sel {
			out = append(out, f.Expr+" AS "+alias(fn, f.Field))
		}
	}
	add("_count", a.Count)
	add("_avg", a.Avg)
	add("_sum", a.Sum)
	add("_min", a.Min)
	add("_max", a.Max)
	return out
}

func alias(parts ...string) string {
	return `"` + strings.Join(parts, ".") + `"`
}

// reshape nests "function.field" columns under their function.
func reshape(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for key, v := range row {
		fn, field, ok := strings.Cut(key, ".")
		if !ok {
			out[key] = normalize(v)
			continue
		}
		group, _ := out[fn].(map[string]any)
		if group == nil {
			group = make(map[string]any)
			out[fn] = group
		}
		group[field] = normalize(v)
	}
	return out
}

// normalize gives uuid columns, which pgx returns as raw bytes, their
// string form.
func normalize(v any) any {
	if b, ok := v.([16]byte); ok {
		return uuid.UUID(b)
	}
	return v
}
