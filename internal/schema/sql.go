package schema

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// conds accumulates predicates joined with AND. Nil predicates are skipped.
type conds struct {
	table string
	parts sq.And
}

func newConds(table string) *conds {
	return &conds{table: table}
}

func (c *conds) add(parts ...sq.Sqlizer) {
	for _, p := range parts {
		if p != nil {
			c.parts = append(c.parts, p)
		}
	}
}

// col qualifies a column with the table name.
func (c *conds) col(name string) string {
	return c.table + "." + name
}

// and returns nil when no predicate was added.
func (c *conds) and() sq.Sqlizer {
	switch len(c.parts) {
	case 0:
		return nil
	case 1:
		return c.parts[0]
	}
	return c.parts
}

func (c *conds) ToSql() (string, []any, error) {
	if len(c.parts) == 0 {
		return "TRUE", nil, nil
	}
	return c.parts.ToSql()
}

func eqValue[T any](c *conds, col string, v *T) {
	if v != nil {
		c.add(sq.Expr(c.col(col)+" = ?", *v))
	}
}

func negate(s sq.Sqlizer) sq.Sqlizer {
	if s == nil {
		return nil
	}
	return sq.Expr("NOT (?)", s)
}

// inList renders col IN (...). An empty list matches nothing, or everything
// when negated.
func inList(col string, vals []any, not bool) sq.Sqlizer {
	if len(vals) == 0 {
		if not {
			return sq.Expr("TRUE")
		}
		return sq.Expr("FALSE")
	}

	op := " IN ("
	if not {
		op = " NOT IN ("
	}
	return sq.Expr(col+op+sq.Placeholders(len(vals))+")", vals...)
}

func anySlice[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// logical compiles the AND / OR / NOT members of a where input. An empty OR
// list matches nothing; every NOT member is negated separately.
func logical[W sq.Sqlizer](and, or, not []W) []sq.Sqlizer {
	var out []sq.Sqlizer
	if len(and) > 0 {
		all := make(sq.And, 0, len(and))
		for _, w := range and {
			all = append(all, w)
		}
		out = append(out, all)
	}
	if or != nil {
		if len(or) == 0 {
			out = append(out, sq.Expr("FALSE"))
		} else {
			alts := make(sq.Or, 0, len(or))
			for _, w := range or {
				alts = append(alts, w)
			}
			out = append(out, alts)
		}
	}
	for _, w := range not {
		out = append(out, sq.Expr("NOT (?)", w))
	}
	return out
}

// link joins a related table to the table being filtered.
type link struct {
	table string
	on    string
}

// parentOf links a child table to its owning row.
func parentOf(child, parent, fk string) link {
	return link{table: parent, on: parent + ".id = " + child + "." + fk}
}

// childrenOf links a parent table to the rows that reference it.
func childrenOf(parent, child, fk string) link {
	return link{table: child, on: child + "." + fk + " = " + parent + ".id"}
}

func exists(l link, where sq.Sqlizer) sq.Sqlizer {
	sub := sq.Select("1").From(l.table).Where(l.on)
	if where != nil {
		sub = sub.Where(where)
	}
	return sq.Expr("EXISTS (?)", sub)
}

// RelationFilter filters on a to-one relation.
type RelationFilter[W any] struct {
	Is    *W `json:"is,omitempty"`
	IsNot *W `json:"isNot,omitempty"`
}

func toOne[W sq.Sqlizer](f *RelationFilter[W], l link) []sq.Sqlizer {
	if f == nil {
		return nil
	}
	var out []sq.Sqlizer
	if f.Is != nil {
		out = append(out, exists(l, *f.Is))
	}
	if f.IsNot != nil {
		out = append(out, negate(exists(l, *f.IsNot)))
	}
	return out
}

// ListRelationFilter filters on a to-many relation.
type ListRelationFilter[W any] struct {
	Every *W `json:"every,omitempty"`
	Some  *W `json:"some,omitempty"`
	None  *W `json:"none,omitempty"`
}

func toMany[W sq.Sqlizer](f *ListRelationFilter[W], l link) []sq.Sqlizer {
	if f == nil {
		return nil
	}
	var out []sq.Sqlizer
	if f.Every != nil {
		out = append(out, negate(exists(l, negate(*f.Every))))
	}
	if f.Some != nil {
		out = append(out, exists(l, *f.Some))
	}
	if f.None != nil {
		out = append(out, negate(exists(l, *f.None)))
	}
	return out
}

// terms accumulates ORDER BY terms. wrap maps a qualified column to the
// expression that reaches it from the queried table.
type terms struct {
	table string
	wrap  func(string) string
	out   []string
}

func newTerms(table string, wrap func(string) string) *terms {
	if wrap == nil {
		wrap = func(s string) string { return s }
	}
	return &terms{table: table, wrap: wrap}
}

func (t *terms) add(col string, s *Sort) {
	if s != nil {
		t.out = append(t.out, s.term(t.wrap(t.table+"."+col)))
	}
}

// via returns the wrap used to order by a column of a to-one relation.
func (t *terms) via(l link) func(string) string {
	return func(col string) string {
		return t.wrap("(SELECT " + col + " FROM " + l.table + " WHERE " + l.on + ")")
	}
}

// count orders by the number of rows of a to-many relation.
func (t *terms) count(l link, o *CountOrder) {
	if o == nil || o.Count == nil {
		return
	}
	t.out = append(t.out, o.Count.term(t.wrap("(SELECT COUNT(*) FROM "+l.table+" WHERE "+l.on+")")))
}

// uniqueKeyNames lists the keys reported when none is given.
func uniqueKeyNames(keys ...string) string {
	return strings.Join(keys, ", ")
}
