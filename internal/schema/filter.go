package schema

import (
	"encoding/json"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

// StringFilter matches a text column. A bare string means equals.
type StringFilter struct {
	Equals     *string           `json:"equals,omitempty"`
	In         []string          `json:"in,omitempty"`
	NotIn      []string          `json:"notIn,omitempty"`
	Lt         *string           `json:"lt,omitempty"`
	Lte        *string           `json:"lte,omitempty"`
	Gt         *string           `json:"gt,omitempty"`
	Gte        *string           `json:"gte,omitempty"`
	Contains   *string           `json:"contains,omitempty"`
	StartsWith *string           `json:"startsWith,omitempty"`
	EndsWith   *string           `json:"endsWith,omitempty"`
	Mode       *domain.QueryMode `json:"mode,omitempty" validate:"omitempty,enum"`
	Not        *StringFilter     `json:"not,omitempty"`
}

type stringFilterJSON StringFilter

func (f *StringFilter) UnmarshalJSON(data []byte) error {
	if isObject(data) {
		return decodeStrict(data, (*stringFilterJSON)(f))
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return unionError("string or string filter", f)
	}
	f.Equals = &s
	return nil
}

func (f *StringFilter) sqlizer(col string) sq.Sqlizer {
	if f == nil {
		return nil
	}

	insensitive := f.Mode != nil && *f.Mode == domain.QueryModeInsensitive
	target := col
	fold := func(s string) string { return s }
	if insensitive {
		target = "LOWER(" + col + ")"
		fold = strings.ToLower
	}

	var c conds
	if f.Equals != nil {
		c.add(sq.Expr(target+" = ?", fold(*f.Equals)))
	}
	if f.In != nil {
		c.add(inList(target, foldAll(f.In, fold), false))
	}
	if f.NotIn != nil {
		c.add(inList(target, foldAll(f.NotIn, fold), true))
	}
	c.add(compare(target, "<", f.Lt, fold))
	c.add(compare(target, "<=", f.Lte, fold))
	c.add(compare(target, ">", f.Gt, fold))
	c.add(compare(target, ">=", f.Gte, fold))

	like := "LIKE"
	if insensitive {
		like = "ILIKE"
	}
	if f.Contains != nil {
		c.add(sq.Expr(col+" "+like+" ?", "%"+escapeLike(*f.Contains)+"%"))
	}
	if f.StartsWith != nil {
		c.add(sq.Expr(col+" "+like+" ?", escapeLike(*f.StartsWith)+"%"))
	}
	if f.EndsWith != nil {
		c.add(sq.Expr(col+" "+like+" ?", "%"+escapeLike(*f.EndsWith)))
	}
	if f.Not != nil {
		not := *f.Not
		if not.Mode == nil {
			not.Mode = f.Mode
		}
		c.add(negate(not.sqlizer(col)))
	}
	return c.and()
}

func foldAll(in []string, fold func(string) string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = fold(s)
	}
	return out
}

func compare(col, op string, v *string, fold func(string) string) sq.Sqlizer {
	if v == nil {
		return nil
	}
	return sq.Expr(col+" "+op+" ?", fold(*v))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes LIKE wildcards so user text matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// OrderedFilter matches a numeric or date-time column. A bare value means equals.
type OrderedFilter[T any] struct {
	Equals *T                `json:"equals,omitempty"`
	In     []T               `json:"in,omitempty"`
	NotIn  []T               `json:"notIn,omitempty"`
	Lt     *T                `json:"lt,omitempty"`
	Lte    *T                `json:"lte,omitempty"`
	Gt     *T                `json:"gt,omitempty"`
	Gte    *T                `json:"gte,omitempty"`
	Not    *OrderedFilter[T] `json:"not,omitempty"`
}

type (
	IntFilter      = OrderedFilter[int32]
	FloatFilter    = OrderedFilter[float64]
	DateTimeFilter = OrderedFilter[DateTime]
)

type orderedFilterJSON[T any] OrderedFilter[T]

func (f *OrderedFilter[T]) UnmarshalJSON(data []byte) error {
	if isObject(data) {
		return decodeStrict(data, (*orderedFilterJSON[T])(f))
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Equals = &v
	return nil
}

func (f *OrderedFilter[T]) sqlizer(col string) sq.Sqlizer {
	if f == nil {
		return nil
	}

	var c conds
	if f.Equals != nil {
		c.add(sq.Expr(col+" = ?", *f.Equals))
	}
	if f.In != nil {
		c.add(inList(col, anySlice(f.In), false))
	}
	if f.NotIn != nil {
		c.add(inList(col, anySlice(f.NotIn), true))
	}
	c.add(compareValue(col, "<", f.Lt))
	c.add(compareValue(col, "<=", f.Lte))
	c.add(compareValue(col, ">", f.Gt))
	c.add(compareValue(col, ">=", f.Gte))
	if f.Not != nil {
		c.add(negate(f.Not.sqlizer(col)))
	}
	return c.and()
}

func compareValue[T any](col, op string, v *T) sq.Sqlizer {
	if v == nil {
		return nil
	}
	return sq.Expr(col+" "+op+" ?", *v)
}

// EqualityFilter matches enum and identifier columns. A bare value means equals.
type EqualityFilter[T any] struct {
	Equals *T                 `json:"equals,omitempty" validate:"omitempty,enum"`
	In     []T                `json:"in,omitempty" validate:"omitempty,dive,enum"`
	NotIn  []T                `json:"notIn,omitempty" validate:"omitempty,dive,enum"`
	Not    *EqualityFilter[T] `json:"not,omitempty"`
}

type UUIDFilter = EqualityFilter[UUID]

type equalityFilterJSON[T any] EqualityFilter[T]

func (f *EqualityFilter[T]) UnmarshalJSON(data []byte) error {
	if isObject(data) {
		return decodeStrict(data, (*equalityFilterJSON[T])(f))
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Equals = &v
	return nil
}

func (f *EqualityFilter[T]) sqlizer(col string) sq.Sqlizer {
	if f == nil {
		return nil
	}

	var c conds
	if f.Equals != nil {
		c.add(sq.Expr(col+" = ?", *f.Equals))
	}
	if f.In != nil {
		c.add(inList(col, anySlice(f.In), false))
	}
	if f.NotIn != nil {
		c.add(inList(col, anySlice(f.NotIn), true))
	}
	if f.Not != nil {
		c.add(negate(f.Not.sqlizer(col)))
	}
	return c.and()
}

// Aggregate-aware filters used by groupBy having clauses. The embedded base
// filter applies to the grouped column, the underscore keys to aggregates over
// it.

type extremes[F any] struct {
	Count *IntFilter `json:"_count,omitempty"`
	Min   *F         `json:"_min,omitempty"`
	Max   *F         `json:"_max,omitempty"`
}

type numberAggregates[T any] struct {
	Count *IntFilter        `json:"_count,omitempty"`
	Avg   *FloatFilter      `json:"_avg,omitempty"`
	Sum   *OrderedFilter[T] `json:"_sum,omitempty"`
	Min   *OrderedFilter[T] `json:"_min,omitempty"`
	Max   *OrderedFilter[T] `json:"_max,omitempty"`
}

type StringAggFilter struct {
	StringFilter
	extremes[StringFilter]
}

func (f *StringAggFilter) UnmarshalJSON(data []byte) error {
	return decodeWithAggregates(data, &f.StringFilter, &f.extremes)
}

func (f *StringAggFilter) havingSqlizer(col string) sq.Sqlizer {
	if f == nil {
		return nil
	}
	var c conds
	c.add(f.StringFilter.sqlizer(col))
	c.add(f.Count.sqlizer("COUNT(" + col + ")"))
	c.add(f.Min.sqlizer("MIN(" + col + ")"))
	c.add(f.Max.sqlizer("MAX(" + col + ")"))
	return c.and()
}

type NumberAggFilter[T any] struct {
	OrderedFilter[T]
	numberAggregates[T]
}

func (f *NumberAggFilter[T]) UnmarshalJSON(data []byte) error {
	return decodeWithAggregates(data, &f.OrderedFilter, &f.numberAggregates)
}

func (f *NumberAggFilter[T]) havingSqlizer(col string) sq.Sqlizer {
	if f == nil {
		return nil
	}
	var c conds
	c.add(f.OrderedFilter.sqlizer(col))
	c.add(f.Count.sqlizer("COUNT(" + col + ")"))
	c.add(f.Avg.sqlizer("AVG(" + col + ")::float8"))
	c.add(f.Sum.sqlizer("SUM(" + col + ")"))
	c.add(f.Min.sqlizer("MIN(" + col + ")"))
	c.add(f.Max.sqlizer("MAX(" + col + ")"))
	return c.and()
}

type DateTimeAggFilter struct {
	OrderedFilter[DateTime]
	extremes[OrderedFilter[DateTime]]
}

func (f *DateTimeAggFilter) UnmarshalJSON(data []byte) error {
	return decodeWithAggregates(data, &f.OrderedFilter, &f.extremes)
}

func (f *DateTimeAggFilter) havingSqlizer(col string) sq.Sqlizer {
	if f == nil {
		return nil
	}
	var c conds
	c.add(f.OrderedFilter.sqlizer(col))
	c.add(f.Count.sqlizer("COUNT(" + col + ")"))
	c.add(f.Min.sqlizer("MIN(" + col + ")"))
	c.add(f.Max.sqlizer("MAX(" + col + ")"))
	return c.and()
}

type EqualityAggFilter[T any] struct {
	EqualityFilter[T]
	extremes[EqualityFilter[T]]
}

func (f *EqualityAggFilter[T]) UnmarshalJSON(data []byte) error {
	return decodeWithAggregates(data, &f.EqualityFilter, &f.extremes)
}

func (f *EqualityAggFilter[T]) havingSqlizer(col string) sq.Sqlizer {
	if f == nil {
		return nil
	}
	var c conds
	c.add(f.EqualityFilter.sqlizer(col))
	c.add(f.Count.sqlizer("COUNT(" + col + ")"))
	c.add(f.Min.sqlizer("MIN(" + col + ")"))
	c.add(f.Max.sqlizer("MAX(" + col + ")"))
	return c.and()
}

// decodeWithAggregates splits an object into underscore keys, decoded into
// aggs, and the remaining keys, decoded into base. Non-object values go to base.
func decodeWithAggregates(data []byte, base json.Unmarshaler, aggs any) error {
	if !isObject(data) {
		return base.UnmarshalJSON(data)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	plain := make(map[string]json.RawMessage, len(raw))
	agg := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		if strings.HasPrefix(k, "_") {
			agg[k] = v
		} else {
			plain[k] = v
		}
	}

	if len(agg) > 0 {
		b, err := json.Marshal(agg)
		if err != nil {
			return err
		}
		if err := decodeStrict(b, aggs); err != nil {
			return err
		}
	}
	b, err := json.Marshal(plain)
	if err != nil {
		return err
	}
	return base.UnmarshalJSON(b)
}
