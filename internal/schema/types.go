package schema

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// DateTime is a timestamp accepted as an RFC 3339 date-time or a plain
// YYYY-MM-DD date, which is read as midnight UTC.
type DateTime time.Time

// Time returns the value as time.Time.
func (d DateTime) Time() time.Time { return time.Time(d) }

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(time.RFC3339Nano))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return unionError("date-time string", d)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*d = DateTime(t)
		return nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		*d = DateTime(t)
		return nil
	}
	return unionError("RFC 3339 date-time or YYYY-MM-DD date", d)
}

// Value lets pgx bind the timestamp directly.
func (d DateTime) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// UUID is an identifier written as a canonical UUID string.
type UUID uuid.UUID

// ParseUUID parses s in any form accepted by uuid.Parse.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	return UUID(id), err
}

func (u UUID) String() string { return uuid.UUID(u).String() }

func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *UUID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return unionError("uuid string", u)
	}
	id, err := ParseUUID(s)
	if err != nil {
		return unionError("uuid string", u)
	}
	*u = id
	return nil
}

func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// OneOrMany holds a list that may be written as a single element.
type OneOrMany[T any] []T

func (m *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	if isArray(data) {
		items := []T{}
		if err := decodeStrict(data, &items); err != nil {
			return err
		}
		*m = items
		return nil
	}

	var item T
	if err := decodeStrict(data, &item); err != nil {
		return err
	}
	*m = OneOrMany[T]{item}
	return nil
}

// Sort is one ORDER BY direction, written as "asc"/"desc" or {sort, nulls}.
type Sort struct {
	Order domain.SortOrder   `json:"sort" validate:"required,enum"`
	Nulls *domain.NullsOrder `json:"nulls,omitempty" validate:"omitempty,enum"`
}

type sortJSON Sort

func (s *Sort) UnmarshalJSON(data []byte) error {
	if isObject(data) {
		return decodeStrict(data, (*sortJSON)(s))
	}
	if err := json.Unmarshal(data, &s.Order); err != nil {
		return unionError(`"asc", "desc" or {sort, nulls}`, s)
	}
	return nil
}

func (s Sort) MarshalJSON() ([]byte, error) {
	if s.Nulls == nil {
		return json.Marshal(s.Order)
	}
	return json.Marshal(sortJSON(s))
}

// term renders expr with the direction and NULLS placement.
func (s *Sort) term(expr string) string {
	out := expr + " ASC"
	if s.Order == domain.SortOrderDesc {
		out = expr + " DESC"
	}
	if s.Nulls != nil {
		switch *s.Nulls {
		case domain.NullsOrderFirst:
			out += " NULLS FIRST"
		case domain.NullsOrderLast:
			out += " NULLS LAST"
		}
	}
	return out
}

// CountOrder orders by the number of related records.
type CountOrder struct {
	Count *Sort `json:"_count" validate:"required"`
}
