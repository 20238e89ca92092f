package schema

import (
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
)

// Set replaces a column value. A bare value is shorthand for {set}.
type Set[T any] struct {
	Value *T `json:"set" validate:"required,enum"`
}

type setJSON[T any] Set[T]

func (s *Set[T]) UnmarshalJSON(data []byte) error {
	if isObject(data) {
		return decodeStrict(data, (*setJSON[T])(s))
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.Value = &v
	return nil
}

func assign[T any](values map[string]any, col string, s *Set[T]) {
	if s != nil && s.Value != nil {
		values[col] = *s.Value
	}
}

// Number is the set of numeric column types.
type Number interface {
	~int32 | ~float64
}

// NumberUpdate changes a numeric column. Exactly one operation is allowed; a
// bare number is shorthand for {set}.
type NumberUpdate[T Number] struct {
	Set       *T `json:"set,omitempty"`
	Increment *T `json:"increment,omitempty"`
	Decrement *T `json:"decrement,omitempty"`
	Multiply  *T `json:"multiply,omitempty"`
	Divide    *T `json:"divide,omitempty"`
}

type numberUpdateJSON[T Number] NumberUpdate[T]

func (u *NumberUpdate[T]) UnmarshalJSON(data []byte) error {
	if isObject(data) {
		return decodeStrict(data, (*numberUpdateJSON[T])(u))
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	u.Set = &v
	return nil
}

func (u NumberUpdate[T]) operations() int {
	n := 0
	for _, op := range []*T{u.Set, u.Increment, u.Decrement, u.Multiply, u.Divide} {
		if op != nil {
			n++
		}
	}
	return n
}

// expr is the new column value: a constant for set, otherwise an expression
// over the current value.
func (u *NumberUpdate[T]) expr(col string) any {
	switch {
	case u.Set != nil:
		return *u.Set
	case u.Increment != nil:
		return sq.Expr(col+" + ?", *u.Increment)
	case u.Decrement != nil:
		return sq.Expr(col+" - ?", *u.Decrement)
	case u.Multiply != nil:
		return sq.Expr(col+" * ?", *u.Multiply)
	case u.Divide != nil:
		return sq.Expr(col+" / ?", *u.Divide)
	}
	return nil
}

func assignNumber[T Number](values map[string]any, col string, u *NumberUpdate[T]) {
	if u == nil {
		return
	}
	if v := u.expr(col); v != nil {
		values[col] = v
	}
}

// setValue copies an optional create value into a column map.
func setValue[T any](values map[string]any, col string, v *T) {
	if v != nil {
		values[col] = *v
	}
}
