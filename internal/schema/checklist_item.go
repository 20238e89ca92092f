package schema

import "github.com/heartmarshall/sitebook-backend/internal/domain"

// ChecklistItemScalarField names a ChecklistItem field in distinct, groupBy and aggregate
// selections.
type ChecklistItemScalarField string

const (
	ChecklistItemFieldID          ChecklistItemScalarField = "id"
	ChecklistItemFieldTask        ChecklistItemScalarField = "task"
	ChecklistItemFieldMilestoneID ChecklistItemScalarField = "milestoneId"
	ChecklistItemFieldStatus      ChecklistItemScalarField = "status"
	ChecklistItemFieldPriority    ChecklistItemScalarField = "priority"
	ChecklistItemFieldProjectID   ChecklistItemScalarField = "projectId"
)

var checklistItemColumns = map[ChecklistItemScalarField]string{
	ChecklistItemFieldID:          "checklist_items.id",
	ChecklistItemFieldTask:        "checklist_items.task",
	ChecklistItemFieldMilestoneID: "checklist_items.milestone_id",
	ChecklistItemFieldStatus:      "checklist_items.status",
	ChecklistItemFieldPriority:    "checklist_items.priority",
	ChecklistItemFieldProjectID:   "checklist_items.project_id",
}

func (f ChecklistItemScalarField) IsValid() bool {
	_, ok := checklistItemColumns[f]
	return ok
}

func (f ChecklistItemScalarField) Column() string { return checklistItemColumns[f] }

// ChecklistItemWhereInput filters checklist item rows. AND, OR and NOT nest to any depth.
type ChecklistItemWhereInput struct {
	AND         OneOrMany[ChecklistItemWhereInput]        `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          OneOrMany[ChecklistItemWhereInput]        `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         OneOrMany[ChecklistItemWhereInput]        `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID          *UUIDFilter                               `json:"id,omitempty"`
	Task        *StringFilter                             `json:"task,omitempty"`
	MilestoneID *UUIDFilter                               `json:"milestoneId,omitempty"`
	Status      *EqualityFilter[domain.ChecklistStatus]   `json:"status,omitempty"`
	Priority    *EqualityFilter[domain.ChecklistPriority] `json:"priority,omitempty"`
	ProjectID   *UUIDFilter                               `json:"projectId,omitempty"`
	Project     *RelationFilter[ProjectWhereInput]        `json:"project,omitempty"`
}

func (w ChecklistItemWhereInput) filter() *conds {
	c := newConds(checklistItemsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.Task.sqlizer(c.col("task")))
	c.add(w.MilestoneID.sqlizer(c.col("milestone_id")))
	c.add(w.Status.sqlizer(c.col("status")))
	c.add(w.Priority.sqlizer(c.col("priority")))
	c.add(w.ProjectID.sqlizer(c.col("project_id")))
	c.add(toOne(w.Project, parentOf(checklistItemsTable, projectsTable, "project_id"))...)
	return c
}

func (w ChecklistItemWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// ChecklistItemWhereUniqueInput selects one checklistItem by id. The other filters
// narrow the match further.
type ChecklistItemWhereUniqueInput struct {
	ID *UUID `json:"id,omitempty"`
	ChecklistItemWhereInput
}

func (w ChecklistItemWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id", w.ID != nil
}

func (w ChecklistItemWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.ChecklistItemWhereInput.filter()
	eqValue(c, "id", w.ID)
	return c.ToSql()
}

type ChecklistItemOrderByInput struct {
	ID          *Sort                `json:"id,omitempty"`
	Task        *Sort                `json:"task,omitempty"`
	MilestoneID *Sort                `json:"milestoneId,omitempty"`
	Status      *Sort                `json:"status,omitempty"`
	Priority    *Sort                `json:"priority,omitempty"`
	ProjectID   *Sort                `json:"projectId,omitempty"`
	Project     *ProjectOrderByInput `json:"project,omitempty"`
}

func (o ChecklistItemOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(checklistItemsTable, wrap)
	t.add("id", o.ID)
	t.add("task", o.Task)
	t.add("milestone_id", o.MilestoneID)
	t.add("status", o.Status)
	t.add("priority", o.Priority)
	t.add("project_id", o.ProjectID)
	if o.Project != nil {
		t.out = append(t.out, o.Project.orderTerms(t.via(parentOf(checklistItemsTable, projectsTable, "project_id")))...)
	}
	return t.out
}

// ChecklistItemData holds the scalar fields of a new checklistItem. It is the payload of
// nested creates under a project.
type ChecklistItemData struct {
	ID          *UUID                     `json:"id,omitempty"`
	Task        *string                   `json:"task" validate:"required"`
	MilestoneID *UUID                     `json:"milestoneId" validate:"required"`
	Status      *domain.ChecklistStatus   `json:"status" validate:"required,enum"`
	Priority    *domain.ChecklistPriority `json:"priority" validate:"required,enum"`
}

func (d ChecklistItemData) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", d.ID)
	setValue(v, "task", d.Task)
	setValue(v, "milestone_id", d.MilestoneID)
	setValue(v, "status", d.Status)
	setValue(v, "priority", d.Priority)
	return v
}

// ChecklistItemCreateInput is ChecklistItemData linked to its project, either through the
// project relation or through projectId, never both.
type ChecklistItemCreateInput struct {
	ChecklistItemData
	ProjectID *UUID                                                         `json:"projectId,omitempty"`
	Project   *NestedCreateOne[ProjectCreateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in ChecklistItemCreateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in ChecklistItemCreateInput) write() Write {
	w := Write{Values: in.values()}
	connect, others := in.Project.parent()
	linkProject(&w, in.ProjectID, connect, others)
	return w
}

type ChecklistItemUpdateData struct {
	ID          *Set[UUID]                     `json:"id,omitempty"`
	Task        *Set[string]                   `json:"task,omitempty"`
	MilestoneID *Set[UUID]                     `json:"milestoneId,omitempty"`
	Status      *Set[domain.ChecklistStatus]   `json:"status,omitempty"`
	Priority    *Set[domain.ChecklistPriority] `json:"priority,omitempty"`
}

func (d ChecklistItemUpdateData) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assign(v, "task", d.Task)
	assign(v, "milestone_id", d.MilestoneID)
	assign(v, "status", d.Status)
	assign(v, "priority", d.Priority)
	return v
}

func (d ChecklistItemUpdateData) write() Write { return Write{Values: d.values()} }

type ChecklistItemUpdateInput struct {
	ChecklistItemUpdateData
	ProjectID *Set[UUID]                                                                        `json:"projectId,omitempty"`
	Project   *NestedUpdateOne[ProjectCreateInput, ProjectUpdateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in ChecklistItemUpdateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in ChecklistItemUpdateInput) write() Write {
	w := in.ChecklistItemUpdateData.write()
	var id *UUID
	if in.ProjectID != nil {
		id = in.ProjectID.Value
	}
	connect, others := in.Project.parent()
	linkProject(&w, id, connect, others)
	return w
}

// ChecklistItemScalarWhereWithAggregatesInput is the having clause of checklistItem groupBy.
type ChecklistItemScalarWhereWithAggregatesInput struct {
	AND         OneOrMany[ChecklistItemScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          OneOrMany[ChecklistItemScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         OneOrMany[ChecklistItemScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID          *EqualityAggFilter[UUID]                               `json:"id,omitempty"`
	Task        *StringAggFilter                                       `json:"task,omitempty"`
	MilestoneID *EqualityAggFilter[UUID]                               `json:"milestoneId,omitempty"`
	Status      *EqualityAggFilter[domain.ChecklistStatus]             `json:"status,omitempty"`
	Priority    *EqualityAggFilter[domain.ChecklistPriority]           `json:"priority,omitempty"`
	ProjectID   *EqualityAggFilter[UUID]                               `json:"projectId,omitempty"`
}

func (w ChecklistItemScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(checklistItemsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.Task.havingSqlizer(c.col("task")))
	c.add(w.MilestoneID.havingSqlizer(c.col("milestone_id")))
	c.add(w.Status.havingSqlizer(c.col("status")))
	c.add(w.Priority.havingSqlizer(c.col("priority")))
	c.add(w.ProjectID.havingSqlizer(c.col("project_id")))
	return c.ToSql()
}
