package schema

// UserScalarField names a User field in distinct, groupBy and aggregate
// selections. The password column is write-only and never one of them.
type UserScalarField string

const (
	UserFieldID        UserScalarField = "id"
	UserFieldName      UserScalarField = "name"
	UserFieldEmail     UserScalarField = "email"
	UserFieldCreatedAt UserScalarField = "createdAt"
	UserFieldUpdatedAt UserScalarField = "updatedAt"
)

var userColumns = map[UserScalarField]string{
	UserFieldID:        "users.id",
	UserFieldName:      "users.name",
	UserFieldEmail:     "users.email",
	UserFieldCreatedAt: "users.created_at",
	UserFieldUpdatedAt: "users.updated_at",
}

func (f UserScalarField) IsValid() bool {
	_, ok := userColumns[f]
	return ok
}

func (f UserScalarField) Column() string { return userColumns[f] }

// UserWhereInput filters user rows. AND, OR and NOT nest to any depth.
type UserWhereInput struct {
	AND       OneOrMany[UserWhereInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        OneOrMany[UserWhereInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       OneOrMany[UserWhereInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        *UUIDFilter               `json:"id,omitempty"`
	Name      *StringFilter             `json:"name,omitempty"`
	Email     *StringFilter             `json:"email,omitempty"`
	CreatedAt *DateTimeFilter           `json:"createdAt,omitempty"`
	UpdatedAt *DateTimeFilter           `json:"updatedAt,omitempty"`
}

func (w UserWhereInput) filter() *conds {
	c := newConds(usersTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.Name.sqlizer(c.col("name")))
	c.add(w.Email.sqlizer(c.col("email")))
	c.add(w.CreatedAt.sqlizer(c.col("created_at")))
	c.add(w.UpdatedAt.sqlizer(c.col("updated_at")))
	return c
}

func (w UserWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// UserWhereUniqueInput selects one user by id or email. The other filters
// narrow the match further.
type UserWhereUniqueInput struct {
	ID    *UUID   `json:"id,omitempty"`
	Email *string `json:"email,omitempty"`
	UserWhereInput
}

func (w UserWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id, email", w.ID != nil || w.Email != nil
}

func (w UserWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.UserWhereInput.filter()
	eqValue(c, "id", w.ID)
	eqValue(c, "email", w.Email)
	return c.ToSql()
}

type UserOrderByInput struct {
	ID        *Sort `json:"id,omitempty"`
	Name      *Sort `json:"name,omitempty"`
	Email     *Sort `json:"email,omitempty"`
	CreatedAt *Sort `json:"createdAt,omitempty"`
	UpdatedAt *Sort `json:"updatedAt,omitempty"`
}

func (o UserOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(usersTable, wrap)
	t.add("id", o.ID)
	t.add("name", o.Name)
	t.add("email", o.Email)
	t.add("created_at", o.CreatedAt)
	t.add("updated_at", o.UpdatedAt)
	return t.out
}

type UserCreateInput struct {
	ID        *UUID     `json:"id,omitempty"`
	Name      *string   `json:"name" validate:"required"`
	Email     *string   `json:"email" validate:"required,email,max=254"`
	Password  *string   `json:"password" validate:"required"`
	CreatedAt *DateTime `json:"createdAt,omitempty"`
	UpdatedAt *DateTime `json:"updatedAt,omitempty"`
}

func (in UserCreateInput) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", in.ID)
	setValue(v, "name", in.Name)
	setValue(v, "email", in.Email)
	setValue(v, "password", in.Password)
	setValue(v, "created_at", in.CreatedAt)
	setValue(v, "updated_at", in.UpdatedAt)
	return v
}

func (in UserCreateInput) write() Write { return Write{Values: in.values()} }

type UserUpdateInput struct {
	ID        *Set[UUID]     `json:"id,omitempty"`
	Name      *Set[string]   `json:"name,omitempty"`
	Email     *Set[string]   `json:"email,omitempty"`
	Password  *Set[string]   `json:"password,omitempty"`
	CreatedAt *Set[DateTime] `json:"createdAt,omitempty"`
	UpdatedAt *Set[DateTime] `json:"updatedAt,omitempty"`
}

func (d UserUpdateInput) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assign(v, "name", d.Name)
	assign(v, "email", d.Email)
	assign(v, "password", d.Password)
	assign(v, "created_at", d.CreatedAt)
	assign(v, "updated_at", d.UpdatedAt)
	touch(v)
	return v
}

func (d UserUpdateInput) write() Write { return Write{Values: d.values()} }

// UserScalarWhereWithAggregatesInput is the having clause of user groupBy.
type UserScalarWhereWithAggregatesInput struct {
	AND       OneOrMany[UserScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        OneOrMany[UserScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       OneOrMany[UserScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        *EqualityAggFilter[UUID]                      `json:"id,omitempty"`
	Name      *StringAggFilter                              `json:"name,omitempty"`
	Email     *StringAggFilter                              `json:"email,omitempty"`
	CreatedAt *DateTimeAggFilter                            `json:"createdAt,omitempty"`
	UpdatedAt *DateTimeAggFilter                            `json:"updatedAt,omitempty"`
}

func (w UserScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(usersTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.Name.havingSqlizer(c.col("name")))
	c.add(w.Email.havingSqlizer(c.col("email")))
	c.add(w.CreatedAt.havingSqlizer(c.col("created_at")))
	c.add(w.UpdatedAt.havingSqlizer(c.col("updated_at")))
	return c.ToSql()
}
