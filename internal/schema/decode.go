// Package schema holds the request shapes accepted for every model: where
// filters, unique lookups, ordering, create/update payloads with nested relation
// writes, pagination bundles and aggregation inputs.
//
// Shapes are decoded strictly (undeclared keys are rejected) and then checked
// with struct-tag rules. Every failure is reported as a *domain.ValidationError
// whose field paths follow the JSON document. Validated shapes compile
// themselves into the Engine contract (squirrel predicates, ORDER BY terms and
// Write sets) so a store never sees unvalidated input.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

// unknownKey marks an UnmarshalTypeError raised for an undeclared property.
const unknownKey = "unknown key"

// Decode strictly decodes data into a new T and validates the result.
// All failures are returned as *domain.ValidationError.
func Decode[T any](data []byte) (*T, error) {
	v := new(T)
	if err := decodeStrict(data, v); err != nil {
		return nil, decodeFailure(err)
	}
	if paths := nullPaths(data); len(paths) > 0 {
		errs := make([]domain.FieldError, 0, len(paths))
		for _, p := range paths {
			errs = append(errs, domain.FieldError{Field: p, Message: "must not be null"})
		}
		return nil, domain.NewValidationErrors(errs)
	}
	if err := Validate(v); err != nil {
		return nil, err
	}
	if c, ok := any(v).(checker); ok {
		if err := c.check(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// decodeStrict decodes exactly one JSON value into v, rejecting undeclared keys.
// Custom unmarshalers call it for their object forms so strictness reaches
// every nested shape.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if name, ok := unknownFieldName(err); ok {
			return &json.UnmarshalTypeError{Value: unknownKey, Type: reflect.TypeOf(v), Field: name}
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}

// nullPaths lists the paths of explicit nulls inside the document. No column
// is nullable, so a null never carries a value and is rejected instead of
// being read as an absent key.
func nullPaths(data []byte) []string {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	var out []string
	collectNulls(doc, "", &out)
	return out
}

func collectNulls(v any, path string, out *[]string) {
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := k
			if path != "" {
				p = path + "." + k
			}
			if v[k] == nil {
				*out = append(*out, p)
				continue
			}
			collectNulls(v[k], p, out)
		}
	case []any:
		for i, e := range v {
			p := fmt.Sprintf("%s[%d]", path, i)
			if e == nil {
				*out = append(*out, p)
				continue
			}
			collectNulls(e, p, out)
		}
	}
}

func unknownFieldName(err error) (string, bool) {
	const prefix = "json: unknown field "
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}

// unionError reports a value that matched none of the accepted forms.
func unionError(expected string, target any) error {
	return &json.UnmarshalTypeError{Value: "expected " + expected, Type: reflect.TypeOf(target)}
}

// isObject reports whether data holds a JSON object.
func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

// isArray reports whether data holds a JSON array.
func isArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}

// decodeFailure converts encoding/json errors into a ValidationError.
func decodeFailure(err error) error {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &typeErr):
		return domain.NewValidationError(jsonPath(typeErr.Field), typeMessage(typeErr))
	case errors.As(err, &syntaxErr):
		return domain.NewValidationError("input", fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("input", "required")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError("input", "malformed JSON: unexpected end of input")
	default:
		return domain.NewValidationError("input", err.Error())
	}
}

// unexportedEmbeds are the unexported embedded structs whose names can show
// up in decoder field paths.
var unexportedEmbeds = map[string]bool{
	"aggregates":       true,
	"extremes":         true,
	"numberAggregates": true,
}

// jsonPath removes the Go names of embedded structs from a decoder field path.
// JSON keys are lower camel case apart from the AND, OR and NOT combinators.
func jsonPath(field string) string {
	var kept []string
	for _, seg := range strings.Split(field, ".") {
		switch {
		case seg == "":
			continue
		case seg == "AND" || seg == "OR" || seg == "NOT":
		case unicode.IsUpper([]rune(seg)[0]) || unexportedEmbeds[seg]:
			continue
		}
		kept = append(kept, seg)
	}
	if len(kept) == 0 {
		return "input"
	}
	return strings.Join(kept, ".")
}

func typeMessage(err *json.UnmarshalTypeError) string {
	switch {
	case err.Value == unknownKey:
		return "unrecognized key"
	case strings.HasPrefix(err.Value, "expected "):
		return err.Value
	case err.Type == nil:
		return "invalid type"
	}

	switch err.Type.Kind() {
	case reflect.String:
		return "expected string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, ok := strings.CutPrefix(err.Value, "number "); ok {
			if _, perr := strconv.ParseInt(n, 10, 64); perr == nil || errors.Is(perr, strconv.ErrRange) {
				return "integer out of range"
			}
		}
		return "expected integer"
	case reflect.Float32, reflect.Float64:
		return "expected number"
	case reflect.Bool:
		return "expected boolean"
	case reflect.Slice, reflect.Array:
		return "expected array"
	case reflect.Struct, reflect.Map:
		return "expected object"
	default:
		return "invalid type"
	}
}
