package schema

import "github.com/heartmarshall/sitebook-backend/internal/domain"

// MilestoneScalarField names a Milestone field in distinct, groupBy and aggregate
// selections.
type MilestoneScalarField string

const (
	MilestoneFieldID        MilestoneScalarField = "id"
	MilestoneFieldName      MilestoneScalarField = "name"
	MilestoneFieldDate      MilestoneScalarField = "date"
	MilestoneFieldStatus    MilestoneScalarField = "status"
	MilestoneFieldProjectID MilestoneScalarField = "projectId"
)

var milestoneColumns = map[MilestoneScalarField]string{
	MilestoneFieldID:        "milestones.id",
	MilestoneFieldName:      "milestones.name",
	MilestoneFieldDate:      "milestones.date",
	MilestoneFieldStatus:    "milestones.status",
	MilestoneFieldProjectID: "milestones.project_id",
}

func (f MilestoneScalarField) IsValid() bool {
	_, ok := milestoneColumns[f]
	return ok
}

func (f MilestoneScalarField) Column() string { return milestoneColumns[f] }

// MilestoneWhereInput filters milestone rows. AND, OR and NOT nest to any depth.
type MilestoneWhereInput struct {
	AND       OneOrMany[MilestoneWhereInput]          `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        OneOrMany[MilestoneWhereInput]          `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       OneOrMany[MilestoneWhereInput]          `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        *UUIDFilter                             `json:"id,omitempty"`
	Name      *StringFilter                           `json:"name,omitempty"`
	Date      *DateTimeFilter                         `json:"date,omitempty"`
	Status    *EqualityFilter[domain.MilestoneStatus] `json:"status,omitempty"`
	ProjectID *UUIDFilter                             `json:"projectId,omitempty"`
	Project   *RelationFilter[ProjectWhereInput]      `json:"project,omitempty"`
}

func (w MilestoneWhereInput) filter() *conds {
	c := newConds(milestonesTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.Name.sqlizer(c.col("name")))
	c.add(w.Date.sqlizer(c.col("date")))
	c.add(w.Status.sqlizer(c.col("status")))
	c.add(w.ProjectID.sqlizer(c.col("project_id")))
	c.add(toOne(w.Project, parentOf(milestonesTable, projectsTable, "project_id"))...)
	return c
}

func (w MilestoneWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// MilestoneWhereUniqueInput selects one milestone by id. The other filters
// narrow the match further.
type MilestoneWhereUniqueInput struct {
	ID *UUID `json:"id,omitempty"`
	MilestoneWhereInput
}

func (w MilestoneWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id", w.ID != nil
}

func (w MilestoneWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.MilestoneWhereInput.filter()
	eqValue(c, "id", w.ID)
	return c.ToSql()
}

type MilestoneOrderByInput struct {
	ID        *Sort                `json:"id,omitempty"`
	Name      *Sort                `json:"name,omitempty"`
	Date      *Sort                `json:"date,omitempty"`
	Status    *Sort                `json:"status,omitempty"`
	ProjectID *Sort                `json:"projectId,omitempty"`
	Project   *ProjectOrderByInput `json:"project,omitempty"`
}

func (o MilestoneOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(milestonesTable, wrap)
	t.add("id", o.ID)
	t.add("name", o.Name)
	t.add("date", o.Date)
	t.add("status", o.Status)
	t.add("project_id", o.ProjectID)
	if o.Project != nil {
		t.out = append(t.out, o.Project.orderTerms(t.via(parentOf(milestonesTable, projectsTable, "project_id")))...)
	}
	return t.out
}

// MilestoneData holds the scalar fields of a new milestone. It is the payload of
// nested creates under a project.
type MilestoneData struct {
	ID     *UUID                   `json:"id,omitempty"`
	Name   *string                 `json:"name" validate:"required"`
	Date   *DateTime               `json:"date" validate:"required"`
	Status *domain.MilestoneStatus `json:"status" validate:"required,enum"`
}

func (d MilestoneData) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", d.ID)
	setValue(v, "name", d.Name)
	setValue(v, "date", d.Date)
	setValue(v, "status", d.Status)
	return v
}

// MilestoneCreateInput is MilestoneData linked to its project, either through the
// project relation or through projectId, never both.
type MilestoneCreateInput struct {
	MilestoneData
	ProjectID *UUID                                                         `json:"projectId,omitempty"`
	Project   *NestedCreateOne[ProjectCreateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in MilestoneCreateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in MilestoneCreateInput) write() Write {
	w := Write{Values: in.values()}
	connect, others := in.Project.parent()
	linkProject(&w, in.ProjectID, connect, others)
	return w
}

type MilestoneUpdateData struct {
	ID     *Set[UUID]                   `json:"id,omitempty"`
	Name   *Set[string]                 `json:"name,omitempty"`
	Date   *Set[DateTime]               `json:"date,omitempty"`
	Status *Set[domain.MilestoneStatus] `json:"status,omitempty"`
}

func (d MilestoneUpdateData) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assign(v, "name", d.Name)
	assign(v, "date", d.Date)
	assign(v, "status", d.Status)
	return v
}

func (d MilestoneUpdateData) write() Write { return Write{Values: d.values()} }

type MilestoneUpdateInput struct {
	MilestoneUpdateData
	ProjectID *Set[UUID]                                                                        `json:"projectId,omitempty"`
	Project   *NestedUpdateOne[ProjectCreateInput, ProjectUpdateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in MilestoneUpdateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in MilestoneUpdateInput) write() Write {
	w := in.MilestoneUpdateData.write()
	var id *UUID
	if in.ProjectID != nil {
		id = in.ProjectID.Value
	}
	connect, others := in.Project.parent()
	linkProject(&w, id, connect, others)
	return w
}

// MilestoneScalarWhereWithAggregatesInput is the having clause of milestone groupBy.
type MilestoneScalarWhereWithAggregatesInput struct {
	AND       OneOrMany[MilestoneScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        OneOrMany[MilestoneScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       OneOrMany[MilestoneScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        *EqualityAggFilter[UUID]                           `json:"id,omitempty"`
	Name      *StringAggFilter                                   `json:"name,omitempty"`
	Date      *DateTimeAggFilter                                 `json:"date,omitempty"`
	Status    *EqualityAggFilter[domain.MilestoneStatus]         `json:"status,omitempty"`
	ProjectID *EqualityAggFilter[UUID]                           `json:"projectId,omitempty"`
}

func (w MilestoneScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(milestonesTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.Name.havingSqlizer(c.col("name")))
	c.add(w.Date.havingSqlizer(c.col("date")))
	c.add(w.Status.havingSqlizer(c.col("status")))
	c.add(w.ProjectID.havingSqlizer(c.col("project_id")))
	return c.ToSql()
}
