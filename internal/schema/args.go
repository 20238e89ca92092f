package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

type (
	whereInput interface {
		sq.Sqlizer
	}
	uniqueInput interface {
		sq.Sqlizer
		uniqueKeys() (string, bool)
	}
	orderInput interface {
		orderTerms(wrap func(string) string) []string
	}
	scalarField interface {
		~string
		Column() string
	}
	writeInput interface {
		write() Write
	}
)

// FindUniqueArgs looks up one row by a unique key.
type FindUniqueArgs[WU uniqueInput] struct {
	Where *WU `json:"where" validate:"required"`
}

func (a *FindUniqueArgs[WU]) run(ctx context.Context, e Engine) (any, error) {
	return e.FindUnique(ctx, *a.Where)
}

// FindManyArgs reads a page of rows. A negative take reads backwards from the
// end of the ordering (or from the cursor).
type FindManyArgs[W whereInput, O orderInput, WU uniqueInput, F scalarField] struct {
	Where    *W           `json:"where,omitempty"`
	OrderBy  OneOrMany[O] `json:"orderBy,omitempty" validate:"omitempty,dive"`
	Cursor   *WU          `json:"cursor,omitempty"`
	Take     *int         `json:"take,omitempty"`
	Skip     *int         `json:"skip,omitempty" validate:"omitempty,min=0"`
	Distinct OneOrMany[F] `json:"distinct,omitempty" validate:"omitempty,dive,enum"`
}

func (a *FindManyArgs[W, O, WU, F]) query() Query {
	q := window(a.Where, a.OrderBy, a.Cursor, a.Take, a.Skip)
	for _, f := range a.Distinct {
		q.Distinct = append(q.Distinct, f.Column())
	}
	return q
}

func (a *FindManyArgs[W, O, WU, F]) run(ctx context.Context, e Engine) (any, error) {
	return e.FindMany(ctx, a.query())
}

// FindFirstArgs reads the first row of a FindManyArgs page.
type FindFirstArgs[W whereInput, O orderInput, WU uniqueInput, F scalarField] struct {
	FindManyArgs[W, O, WU, F]
}

func (a *FindFirstArgs[W, O, WU, F]) run(ctx context.Context, e Engine) (any, error) {
	return e.FindFirst(ctx, a.query())
}

func window[W whereInput, O orderInput, WU uniqueInput](where *W, orderBy []O, cursor *WU, take, skip *int) Query {
	q := Query{Take: take, Skip: skip}
	if where != nil {
		q.Where = *where
	}
	for _, o := range orderBy {
		q.OrderBy = append(q.OrderBy, o.orderTerms(nil)...)
	}
	if cursor != nil {
		q.Cursor = *cursor
	}
	return q
}

type CreateArgs[C writeInput] struct {
	Data *C `json:"data" validate:"required"`
}

func (a *CreateArgs[C]) run(ctx context.Context, e Engine) (any, error) {
	return e.Create(ctx, (*a.Data).write())
}

// BatchResult is the number of rows touched by a bulk write.
type BatchResult struct {
	Count int64 `json:"count"`
}

type CreateManyArgs[C writeInput] struct {
	Data           OneOrMany[C] `json:"data" validate:"required,dive"`
	SkipDuplicates *bool        `json:"skipDuplicates,omitempty"`
}

func (a *CreateManyArgs[C]) run(ctx context.Context, e Engine) (any, error) {
	rows := make([]Write, 0, len(a.Data))
	for _, d := range a.Data {
		rows = append(rows, d.write())
	}
	n, err := e.CreateMany(ctx, rows, boolValue(a.SkipDuplicates))
	if err != nil {
		return nil, err
	}
	return BatchResult{Count: n}, nil
}

type UpdateArgs[U writeInput, WU uniqueInput] struct {
	Data  *U  `json:"data" validate:"required"`
	Where *WU `json:"where" validate:"required"`
}

func (a *UpdateArgs[U, WU]) run(ctx context.Context, e Engine) (any, error) {
	return e.Update(ctx, *a.Where, (*a.Data).write())
}

type UpdateManyArgs[U writeInput, W whereInput] struct {
	Data  *U `json:"data" validate:"required"`
	Where *W `json:"where,omitempty"`
}

func (a *UpdateManyArgs[U, W]) run(ctx context.Context, e Engine) (any, error) {
	n, err := e.UpdateMany(ctx, optional(a.Where), (*a.Data).write())
	if err != nil {
		return nil, err
	}
	return BatchResult{Count: n}, nil
}

type UpsertArgs[C, U writeInput, WU uniqueInput] struct {
	Where  *WU `json:"where" validate:"required"`
	Create *C  `json:"create" validate:"required"`
	Update *U  `json:"update" validate:"required"`
}

func (a *UpsertArgs[C, U, WU]) run(ctx context.Context, e Engine) (any, error) {
	return e.Upsert(ctx, *a.Where, (*a.Create).write(), (*a.Update).write())
}

type DeleteArgs[WU uniqueInput] struct {
	Where *WU `json:"where" validate:"required"`
}

func (a *DeleteArgs[WU]) run(ctx context.Context, e Engine) (any, error) {
	return e.Delete(ctx, *a.Where)
}

type DeleteManyArgs[W whereInput] struct {
	Where *W `json:"where,omitempty"`
}

func (a *DeleteManyArgs[W]) run(ctx context.Context, e Engine) (any, error) {
	n, err := e.DeleteMany(ctx, optional(a.Where))
	if err != nil {
		return nil, err
	}
	return BatchResult{Count: n}, nil
}

func optional[W whereInput](w *W) sq.Sqlizer {
	if w == nil {
		return nil
	}
	return *w
}

type CountArgs[W whereInput, O orderInput, WU uniqueInput] struct {
	Where   *W           `json:"where,omitempty"`
	OrderBy OneOrMany[O] `json:"orderBy,omitempty" validate:"omitempty,dive"`
	Cursor  *WU          `json:"cursor,omitempty"`
	Take    *int         `json:"take,omitempty"`
	Skip    *int         `json:"skip,omitempty" validate:"omitempty,min=0"`
}

func (a *CountArgs[W, O, WU]) run(ctx context.Context, e Engine) (any, error) {
	return e.Count(ctx, window(a.Where, a.OrderBy, a.Cursor, a.Take, a.Skip))
}

const countAll = "_all"

// Selection picks fields for an aggregate function.
type Selection[F scalarField] map[F]bool

func (s Selection[F]) selected(fn string) []Selected {
	out := make([]Selected, 0, len(s))
	for f, on := range s {
		if !on {
			continue
		}
		expr := "COUNT(*)"
		if string(f) != countAll {
			expr = aggregateExpr(fn, f.Column())
		}
		out = append(out, Selected{Field: string(f), Expr: expr})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// CountSelection is a Selection for _count, which also accepts _all and the
// shorthand true.
type CountSelection[F scalarField] struct {
	Selection[F] `validate:"omitempty,dive,keys,countkey,endkeys"`
}

func (s *CountSelection[F]) UnmarshalJSON(data []byte) error {
	var all bool
	if err := json.Unmarshal(data, &all); err == nil {
		s.Selection = Selection[F]{F(countAll): all}
		return nil
	}
	return decodeStrict(data, &s.Selection)
}

func (s CountSelection[F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Selection)
}

func aggregateExpr(fn, col string) string {
	switch fn {
	case "_count":
		return "COUNT(" + col + ")"
	case "_avg":
		return "AVG(" + col + ")::float8"
	case "_sum":
		return "SUM(" + col + ")"
	case "_min":
		return "MIN(" + col + ")"
	default:
		return "MAX(" + col + ")"
	}
}

// aggregates is the aggregate selection shared by aggregate and groupBy.
type aggregates[F, N scalarField] struct {
	Count *CountSelection[F] `json:"_count,omitempty"`
	Avg   Selection[N]       `json:"_avg,omitempty" validate:"omitempty,dive,keys,enum,endkeys"`
	Sum   Selection[N]       `json:"_sum,omitempty" validate:"omitempty,dive,keys,enum,endkeys"`
	Min   Selection[F]       `json:"_min,omitempty" validate:"omitempty,dive,keys,enum,endkeys"`
	Max   Selection[F]       `json:"_max,omitempty" validate:"omitempty,dive,keys,enum,endkeys"`
}

func (a *aggregates[F, N]) compile() Aggregation {
	out := Aggregation{
		Avg: a.Avg.selected("_avg"),
		Sum: a.Sum.selected("_sum"),
		Min: a.Min.selected("_min"),
		Max: a.Max.selected("_max"),
	}
	if a.Count != nil {
		out.Count = a.Count.selected("_count")
	}
	return out
}

// AggregateArgs computes aggregates over a window of rows. _avg and _sum only
// take numeric fields.
type AggregateArgs[W whereInput, O orderInput, WU uniqueInput, F, N scalarField] struct {
	Where   *W           `json:"where,omitempty"`
	OrderBy OneOrMany[O] `json:"orderBy,omitempty" validate:"omitempty,dive"`
	Cursor  *WU          `json:"cursor,omitempty"`
	Take    *int         `json:"take,omitempty"`
	Skip    *int         `json:"skip,omitempty" validate:"omitempty,min=0"`
	aggregates[F, N]
}

func (a *AggregateArgs[W, O, WU, F, N]) run(ctx context.Context, e Engine) (any, error) {
	return e.Aggregate(ctx, window(a.Where, a.OrderBy, a.Cursor, a.Take, a.Skip), a.compile())
}

// GroupByArgs groups rows by one or more fields.
type GroupByArgs[W whereInput, F, N scalarField, H whereInput] struct {
	Where   *W                            `json:"where,omitempty"`
	OrderBy OneOrMany[GroupOrderBy[F, N]] `json:"orderBy,omitempty" validate:"omitempty,dive"`
	By      OneOrMany[F]                  `json:"by" validate:"required,min=1,dive,enum"`
	Having  *H                            `json:"having,omitempty"`
	Take    *int                          `json:"take,omitempty"`
	Skip    *int                          `json:"skip,omitempty" validate:"omitempty,min=0"`
	aggregates[F, N]
}

func (a *GroupByArgs[W, F, N, H]) run(ctx context.Context, e Engine) (any, error) {
	q := Query{Take: a.Take, Skip: a.Skip}
	if a.Where != nil {
		q.Where = *a.Where
	}
	for _, o := range a.OrderBy {
		q.OrderBy = append(q.OrderBy, o.orderTerms()...)
	}

	g := Grouping{Aggregation: a.compile()}
	for _, f := range a.By {
		g.By = append(g.By, Selected{Field: string(f), Expr: f.Column()})
	}
	if a.Having != nil {
		g.Having = *a.Having
	}
	return e.GroupBy(ctx, q, g)
}

// check rejects orderBy fields and bare having filters on columns that are
// not grouped. Aggregates over any column stay allowed.
func (a *GroupByArgs[W, F, N, H]) check() error {
	grouped := make(map[F]bool, len(a.By))
	for _, f := range a.By {
		grouped[f] = true
	}

	var errs []domain.FieldError
	for i, o := range a.OrderBy {
		for _, f := range sortedKeys(o.Fields) {
			if !grouped[f] {
				errs = append(errs, notGrouped(fmt.Sprintf("orderBy[%d].%s", i, f)))
			}
		}
	}
	if a.Having != nil {
		bareHavingFields(reflect.ValueOf(*a.Having), "having", func(path, field string) {
			if !grouped[F(field)] {
				errs = append(errs, notGrouped(path))
			}
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GroupOrderBy orders groups by a grouped field or by an aggregate.
type GroupOrderBy[F, N scalarField] struct {
	Fields map[F]*Sort            `json:"-" validate:"omitempty,dive,keys,enum,endkeys"`
	Count  map[F]domain.SortOrder `json:"_count,omitempty" validate:"omitempty,dive,keys,enum,endkeys,enum"`
	Avg    map[N]domain.SortOrder `json:"_avg,omitempty" validate:"omitempty,dive,keys,enum,endkeys,enum"`
	Sum    map[N]domain.SortOrder `json:"_sum,omitempty" validate:"omitempty,dive,keys,enum,endkeys,enum"`
	Min    map[F]domain.SortOrder `json:"_min,omitempty" validate:"omitempty,dive,keys,enum,endkeys,enum"`
	Max    map[F]domain.SortOrder `json:"_max,omitempty" validate:"omitempty,dive,keys,enum,endkeys,enum"`
}

type groupOrderByJSON[F, N scalarField] struct {
	Count map[F]domain.SortOrder `json:"_count,omitempty"`
	Avg   map[N]domain.SortOrder `json:"_avg,omitempty"`
	Sum   map[N]domain.SortOrder `json:"_sum,omitempty"`
	Min   map[F]domain.SortOrder `json:"_min,omitempty"`
	Max   map[F]domain.SortOrder `json:"_max,omitempty"`
}

func (o *GroupOrderBy[F, N]) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		return unionError("object", o)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	aggs := make(map[string]json.RawMessage)
	for k, v := range raw {
		if strings.HasPrefix(k, "_") {
			aggs[k] = v
			continue
		}
		s := new(Sort)
		if err := s.UnmarshalJSON(v); err != nil {
			return err
		}
		if o.Fields == nil {
			o.Fields = make(map[F]*Sort)
		}
		o.Fields[F(k)] = s
	}
	if len(aggs) == 0 {
		return nil
	}

	b, err := json.Marshal(aggs)
	if err != nil {
		return err
	}
	var j groupOrderByJSON[F, N]
	if err := decodeStrict(b, &j); err != nil {
		return err
	}
	o.Count, o.Avg, o.Sum, o.Min, o.Max = j.Count, j.Avg, j.Sum, j.Min, j.Max
	return nil
}

func (o GroupOrderBy[F, N]) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(o.Fields)+5)
	for f, s := range o.Fields {
		out[string(f)] = s
	}
	if len(o.Count) > 0 {
		out["_count"] = o.Count
	}
	if len(o.Avg) > 0 {
		out["_avg"] = o.Avg
	}
	if len(o.Sum) > 0 {
		out["_sum"] = o.Sum
	}
	if len(o.Min) > 0 {
		out["_min"] = o.Min
	}
	if len(o.Max) > 0 {
		out["_max"] = o.Max
	}
	return json.Marshal(out)
}

func (o GroupOrderBy[F, N]) orderTerms() []string {
	var out []string
	for _, f := range sortedKeys(o.Fields) {
		out = append(out, o.Fields[f].term(f.Column()))
	}
	out = append(out, aggregateTerms("_count", o.Count)...)
	out = append(out, aggregateTerms("_avg", o.Avg)...)
	out = append(out, aggregateTerms("_sum", o.Sum)...)
	out = append(out, aggregateTerms("_min", o.Min)...)
	out = append(out, aggregateTerms("_max", o.Max)...)
	return out
}

func aggregateTerms[F scalarField](fn string, m map[F]domain.SortOrder) []string {
	out := make([]string, 0, len(m))
	for _, f := range sortedKeys(m) {
		s := Sort{Order: m[f]}
		out = append(out, s.term(aggregateExpr(fn, f.Column())))
	}
	return out
}

func sortedKeys[F scalarField, V any](m map[F]V) []F {
	keys := make([]F, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
