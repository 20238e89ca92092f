package schema

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// Engine executes compiled operations against one model's table.
type Engine interface {
	FindUnique(ctx context.Context, where sq.Sqlizer) (any, error)
	FindFirst(ctx context.Context, q Query) (any, error)
	FindMany(ctx context.Context, q Query) (any, error)
	Create(ctx context.Context, w Write) (any, error)
	CreateMany(ctx context.Context, rows []Write, skipDuplicates bool) (int64, error)
	Update(ctx context.Context, where sq.Sqlizer, w Write) (any, error)
	UpdateMany(ctx context.Context, where sq.Sqlizer, w Write) (int64, error)
	Upsert(ctx context.Context, where sq.Sqlizer, create, update Write) (any, error)
	Delete(ctx context.Context, where sq.Sqlizer) (any, error)
	DeleteMany(ctx context.Context, where sq.Sqlizer) (int64, error)
	Count(ctx context.Context, q Query) (int64, error)
	Aggregate(ctx context.Context, q Query, a Aggregation) (map[string]any, error)
	GroupBy(ctx context.Context, q Query, g Grouping) ([]map[string]any, error)
}

// Query is a compiled read: filter, ordering and window.
type Query struct {
	Where    sq.Sqlizer
	OrderBy  []string
	Cursor   sq.Sqlizer
	Take     *int
	Skip     *int
	Distinct []string
}

// Write is a compiled create or update of one row.
type Write struct {
	// Values maps a column to a value or to an sq.Sqlizer expression.
	Values   map[string]any
	Children []ChildWrite
	// Nested lists relation operations (as "field.operation") that were
	// accepted but have no compiled form.
	Nested []string
}

// ChildWrite inserts rows referencing the written row through ForeignKey.
type ChildWrite struct {
	Table          string
	ForeignKey     string
	Rows           []map[string]any
	SkipDuplicates bool
}

func (w *Write) nested(field, op string) {
	w.Nested = append(w.Nested, field+"."+op)
}

// Selected is a selected SQL expression and the key it is reported under.
type Selected struct {
	Field string
	Expr  string
}

// Aggregation lists the aggregate functions to compute.
type Aggregation struct {
	Count []Selected
	Avg   []Selected
	Sum   []Selected
	Min   []Selected
	Max   []Selected
}

// Empty reports whether no aggregate was requested.
func (a Aggregation) Empty() bool {
	return len(a.Count)+len(a.Avg)+len(a.Sum)+len(a.Min)+len(a.Max) == 0
}

// Grouping is a compiled groupBy. Query.OrderBy holds its ORDER BY terms.
type Grouping struct {
	By     []Selected
	Having sq.Sqlizer
	Aggregation
}

// Operation is a decoded, validated request ready to run on an Engine.
type Operation struct {
	Model string
	Name  string
	// Args is the validated argument value; it marshals back to normalized JSON.
	Args any

	run func(ctx context.Context, e Engine) (any, error)
}

// Execute runs the operation.
func (o *Operation) Execute(ctx context.Context, e Engine) (any, error) {
	return o.run(ctx, e)
}
