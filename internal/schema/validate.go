package schema

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

// embeddedSegment stands in for the name of an embedded struct in validator
// namespaces. Such segments are dropped from reported paths because embedded
// fields are flattened in JSON.
const embeddedSegment = "~"

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func rules() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = newValidator()
	})
	return validatorInst
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if f.Anonymous || name == "-" {
			return embeddedSegment
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// Registration of these tags cannot fail: the names are non-empty and the
	// functions non-nil.
	_ = v.RegisterValidation("enum", validateEnum)
	_ = v.RegisterValidation("countkey", validateCountKey)

	registerStructRules(v)
	return v
}

// Validate runs the rule checks on an already decoded shape.
func Validate(v any) error {
	err := rules().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("input", err.Error())
	}

	top := reflect.Indirect(reflect.ValueOf(v)).Type().Name()
	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{
			Field:   fieldPath(fe.Namespace(), top),
			Message: ruleMessage(fe),
		})
	}
	return domain.NewValidationErrors(out)
}

// fieldPath turns a validator namespace into the dotted JSON path of the field.
func fieldPath(ns, top string) string {
	ns = strings.TrimPrefix(ns, top+".")

	parts := strings.Split(ns, ".")
	kept := parts[:0]
	for _, p := range parts {
		switch {
		case p == "" || p == embeddedSegment:
			continue
		case strings.HasPrefix(p, embeddedSegment+"["):
			// map key of a flattened field
			p = strings.TrimSuffix(strings.TrimPrefix(p, embeddedSegment+"["), "]")
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return "input"
	}
	return strings.Join(kept, ".")
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "enum", "countkey":
		return "invalid value"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "invalid email"
	case "unique":
		return "at least one unique key required: " + fe.Param()
	case "oneop":
		return "exactly one of " + fe.Param() + " required"
	case "link":
		return fe.Param()
	default:
		return "failed " + fe.Tag() + " rule"
	}
}

type enumValue interface {
	IsValid() bool
}

// validateEnum checks values of closed string sets. Types outside those sets
// always pass, so the tag can sit on generic fields.
func validateEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		// Values reached through unexported embedded structs are read-only;
		// enums are string kinds, so rebuild a usable copy.
		if field.Kind() != reflect.String {
			return true
		}
		cp := reflect.New(field.Type()).Elem()
		cp.SetString(field.String())
		field = cp
	}
	if e, ok := field.Interface().(enumValue); ok {
		return e.IsValid()
	}
	return true
}

// validateCountKey accepts a scalar field name or _all.
func validateCountKey(fl validator.FieldLevel) bool {
	if fl.Field().Kind() == reflect.String && fl.Field().String() == countAll {
		return true
	}
	return validateEnum(fl)
}
