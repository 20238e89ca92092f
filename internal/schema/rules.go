package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

// Cross-field rules that struct tags cannot express.

type uniqueLookup interface {
	uniqueKeys() (string, bool)
}

type parentLinked interface {
	links() int
}

type operationCounter interface {
	operations() int
}

func registerStructRules(v *validator.Validate) {
	v.RegisterStructValidation(uniqueRule,
		UserWhereUniqueInput{},
		ProjectWhereUniqueInput{},
		BudgetWhereUniqueInput{},
		TeamWhereUniqueInput{},
		MilestoneWhereUniqueInput{},
		ChecklistItemWhereUniqueInput{},
		DocumentWhereUniqueInput{},
		SiteImageWhereUniqueInput{},
		OutgoingLetterWhereUniqueInput{},
		IncomingLetterWhereUniqueInput{},
		ReportWhereUniqueInput{},
	)

	v.RegisterStructValidation(requiredLinkRule,
		BudgetCreateInput{},
		TeamCreateInput{},
		MilestoneCreateInput{},
		ChecklistItemCreateInput{},
		DocumentCreateInput{},
		SiteImageCreateInput{},
		OutgoingLetterCreateInput{},
		IncomingLetterCreateInput{},
		ReportCreateInput{},
	)

	v.RegisterStructValidation(optionalLinkRule,
		BudgetUpdateInput{},
		TeamUpdateInput{},
		MilestoneUpdateInput{},
		ChecklistItemUpdateInput{},
		DocumentUpdateInput{},
		SiteImageUpdateInput{},
		OutgoingLetterUpdateInput{},
		IncomingLetterUpdateInput{},
		ReportUpdateInput{},
	)

	v.RegisterStructValidation(userEmailRule, UserUpdateInput{})

	v.RegisterStructValidation(singleOperationRule,
		NumberUpdate[int32]{},
		NumberUpdate[float64]{},
	)
}

// uniqueRule requires at least one unique key in a where-unique lookup.
func uniqueRule(sl validator.StructLevel) {
	u, ok := sl.Current().Interface().(uniqueLookup)
	if !ok {
		return
	}
	if keys, present := u.uniqueKeys(); !present {
		sl.ReportError(sl.Current().Interface(), "", "", "unique", keys)
	}
}

// requiredLinkRule requires exactly one of the project relation and projectId.
func requiredLinkRule(sl validator.StructLevel) {
	p, ok := sl.Current().Interface().(parentLinked)
	if !ok {
		return
	}
	if p.links() != 1 {
		sl.ReportError(sl.Current().Interface(), "project", "Project", "link", "exactly one of project or projectId required")
	}
}

// optionalLinkRule rejects updates that give both the project relation and projectId.
func optionalLinkRule(sl validator.StructLevel) {
	p, ok := sl.Current().Interface().(parentLinked)
	if !ok {
		return
	}
	if p.links() > 1 {
		sl.ReportError(sl.Current().Interface(), "project", "Project", "link", "project and projectId are mutually exclusive")
	}
}

// emailRule holds an address to the same rules as a new user's email, so
// every stored address can sign in.
const emailRule = "email,max=254"

func userEmailRule(sl validator.StructLevel) {
	in, ok := sl.Current().Interface().(UserUpdateInput)
	if !ok || in.Email == nil || in.Email.Value == nil {
		return
	}
	if err := sl.Validator().Var(*in.Email.Value, emailRule); err != nil {
		sl.ReportError(*in.Email.Value, "email", "Email", "email", "")
	}
}

func singleOperationRule(sl validator.StructLevel) {
	u, ok := sl.Current().Interface().(operationCounter)
	if !ok {
		return
	}
	if u.operations() != 1 {
		sl.ReportError(sl.Current().Interface(), "", "", "oneop", "set, increment, decrement, multiply, divide")
	}
}

// checker is implemented by argument shapes whose rules span several fields
// of a generic type. Decode runs it after the tag rules pass.
type checker interface {
	check() error
}

// bareHavingFields calls visit for every having entry that filters the
// column itself rather than an aggregate over it. Such entries are only
// valid on grouped columns.
func bareHavingFields(v reflect.Value, path string, visit func(path, field string)) {
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		f := v.Field(i)
		switch name {
		case "AND", "OR", "NOT":
			for j := 0; j < f.Len(); j++ {
				bareHavingFields(f.Index(j), fmt.Sprintf("%s.%s[%d]", path, name, j), visit)
			}
		default:
			if f.Kind() != reflect.Pointer || f.IsNil() {
				continue
			}
			// The embedded base filter comes first in every aggregate filter.
			if base := f.Elem().Field(0); !base.IsZero() {
				visit(path+"."+name, name)
			}
		}
	}
}

// notGrouped builds the error for a groupBy field used outside by.
func notGrouped(path string) domain.FieldError {
	return domain.FieldError{Field: path, Message: "must be listed in by"}
}
