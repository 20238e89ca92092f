package schema

// BudgetScalarField names a Budget field in distinct, groupBy and aggregate
// selections.
type BudgetScalarField string

const (
	BudgetFieldID        BudgetScalarField = "id"
	BudgetFieldTotal     BudgetScalarField = "total"
	BudgetFieldSpent     BudgetScalarField = "spent"
	BudgetFieldProjectID BudgetScalarField = "projectId"
)

var budgetColumns = map[BudgetScalarField]string{
	BudgetFieldID:        "budgets.id",
	BudgetFieldTotal:     "budgets.total",
	BudgetFieldSpent:     "budgets.spent",
	BudgetFieldProjectID: "budgets.project_id",
}

func (f BudgetScalarField) IsValid() bool {
	_, ok := budgetColumns[f]
	return ok
}

func (f BudgetScalarField) Column() string { return budgetColumns[f] }

// BudgetNumericField is the part of BudgetScalarField accepted by _avg and _sum.
type BudgetNumericField string

const (
	BudgetNumericTotal BudgetNumericField = "total"
	BudgetNumericSpent BudgetNumericField = "spent"
)

func (f BudgetNumericField) IsValid() bool {
	switch f {
	case BudgetNumericTotal, BudgetNumericSpent:
		return true
	}
	return false
}

func (f BudgetNumericField) Column() string { return BudgetScalarField(f).Column() }

// BudgetWhereInput filters budget rows. AND, OR and NOT nest to any depth.
type BudgetWhereInput struct {
	AND       OneOrMany[BudgetWhereInput]        `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        OneOrMany[BudgetWhereInput]        `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       OneOrMany[BudgetWhereInput]        `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        *UUIDFilter                        `json:"id,omitempty"`
	Total     *FloatFilter                       `json:"total,omitempty"`
	Spent     *FloatFilter                       `json:"spent,omitempty"`
	ProjectID *UUIDFilter                        `json:"projectId,omitempty"`
	Project   *RelationFilter[ProjectWhereInput] `json:"project,omitempty"`
}

func (w BudgetWhereInput) filter() *conds {
	c := newConds(budgetsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.Total.sqlizer(c.col("total")))
	c.add(w.Spent.sqlizer(c.col("spent")))
	c.add(w.ProjectID.sqlizer(c.col("project_id")))
	c.add(toOne(w.Project, parentOf(budgetsTable, projectsTable, "project_id"))...)
	return c
}

func (w BudgetWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// BudgetWhereUniqueInput selects one budget by id or projectId. The other filters
// narrow the match further.
type BudgetWhereUniqueInput struct {
	ID        *UUID `json:"id,omitempty"`
	ProjectID *UUID `json:"projectId,omitempty"`
	BudgetWhereInput
}

func (w BudgetWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id, projectId", w.ID != nil || w.ProjectID != nil
}

func (w BudgetWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.BudgetWhereInput.filter()
	eqValue(c, "id", w.ID)
	eqValue(c, "project_id", w.ProjectID)
	return c.ToSql()
}

type BudgetOrderByInput struct {
	ID        *Sort                `json:"id,omitempty"`
	Total     *Sort                `json:"total,omitempty"`
	Spent     *Sort                `json:"spent,omitempty"`
	ProjectID *Sort                `json:"projectId,omitempty"`
	Project   *ProjectOrderByInput `json:"project,omitempty"`
}

func (o BudgetOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(budgetsTable, wrap)
	t.add("id", o.ID)
	t.add("total", o.Total)
	t.add("spent", o.Spent)
	t.add("project_id", o.ProjectID)
	if o.Project != nil {
		t.out = append(t.out, o.Project.orderTerms(t.via(parentOf(budgetsTable, projectsTable, "project_id")))...)
	}
	return t.out
}

// BudgetData holds the scalar fields of a new budget. It is the payload of
// nested creates under a project.
type BudgetData struct {
	ID    *UUID    `json:"id,omitempty"`
	Total *float64 `json:"total" validate:"required"`
	Spent *float64 `json:"spent" validate:"required"`
}

func (d BudgetData) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", d.ID)
	setValue(v, "total", d.Total)
	setValue(v, "spent", d.Spent)
	return v
}

// BudgetCreateInput is BudgetData linked to its project, either through the
// project relation or through projectId, never both.
type BudgetCreateInput struct {
	BudgetData
	ProjectID *UUID                                                         `json:"projectId,omitempty"`
	Project   *NestedCreateOne[ProjectCreateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in BudgetCreateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in BudgetCreateInput) write() Write {
	w := Write{Values: in.values()}
	connect, others := in.Project.parent()
	linkProject(&w, in.ProjectID, connect, others)
	return w
}

type BudgetUpdateData struct {
	ID    *Set[UUID]             `json:"id,omitempty"`
	Total *NumberUpdate[float64] `json:"total,omitempty"`
	Spent *NumberUpdate[float64] `json:"spent,omitempty"`
}

func (d BudgetUpdateData) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assignNumber(v, "total", d.Total)
	assignNumber(v, "spent", d.Spent)
	return v
}

func (d BudgetUpdateData) write() Write { return Write{Values: d.values()} }

type BudgetUpdateInput struct {
	BudgetUpdateData
	ProjectID *Set[UUID]                                                                        `json:"projectId,omitempty"`
	Project   *NestedUpdateOne[ProjectCreateInput, ProjectUpdateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in BudgetUpdateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in BudgetUpdateInput) write() Write {
	w := in.BudgetUpdateData.write()
	var id *UUID
	if in.ProjectID != nil {
		id = in.ProjectID.Value
	}
	connect, others := in.Project.parent()
	linkProject(&w, id, connect, others)
	return w
}

// BudgetScalarWhereWithAggregatesInput is the having clause of budget groupBy.
type BudgetScalarWhereWithAggregatesInput struct {
	AND       OneOrMany[BudgetScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        OneOrMany[BudgetScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       OneOrMany[BudgetScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        *EqualityAggFilter[UUID]                        `json:"id,omitempty"`
	Total     *NumberAggFilter[float64]                       `json:"total,omitempty"`
	Spent     *NumberAggFilter[float64]                       `json:"spent,omitempty"`
	ProjectID *EqualityAggFilter[UUID]                        `json:"projectId,omitempty"`
}

func (w BudgetScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(budgetsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.Total.havingSqlizer(c.col("total")))
	c.add(w.Spent.havingSqlizer(c.col("spent")))
	c.add(w.ProjectID.havingSqlizer(c.col("project_id")))
	return c.ToSql()
}
