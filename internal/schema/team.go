package schema

// TeamScalarField names a Team field in distinct, groupBy and aggregate
// selections.
type TeamScalarField string

const (
	TeamFieldID             TeamScalarField = "id"
	TeamFieldProjectManager TeamScalarField = "projectManager"
	TeamFieldSiteManager    TeamScalarField = "siteManager"
	TeamFieldTotalWorkers   TeamScalarField = "totalWorkers"
	TeamFieldProjectID      TeamScalarField = "projectId"
)

var teamColumns = map[TeamScalarField]string{
	TeamFieldID:             "teams.id",
	TeamFieldProjectManager: "teams.project_manager",
	TeamFieldSiteManager:    "teams.site_manager",
	TeamFieldTotalWorkers:   "teams.total_workers",
	TeamFieldProjectID:      "teams.project_id",
}

func (f TeamScalarField) IsValid() bool {
	_, ok := teamColumns[f]
	return ok
}

func (f TeamScalarField) Column() string { return teamColumns[f] }

// TeamNumericField is the part of TeamScalarField accepted by _avg and _sum.
type TeamNumericField string

const (
	TeamNumericTotalWorkers TeamNumericField = "totalWorkers"
)

func (f TeamNumericField) IsValid() bool {
	switch f {
	case TeamNumericTotalWorkers:
		return true
	}
	return false
}

func (f TeamNumericField) Column() string { return TeamScalarField(f).Column() }

// TeamWhereInput filters team rows. AND, OR and NOT nest to any depth.
type TeamWhereInput struct {
	AND            OneOrMany[TeamWhereInput]          `json:"AND,omitempty" validate:"omitempty,dive"`
	OR             OneOrMany[TeamWhereInput]          `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT            OneOrMany[TeamWhereInput]          `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID             *UUIDFilter                        `json:"id,omitempty"`
	ProjectManager *StringFilter                      `json:"projectManager,omitempty"`
	SiteManager    *StringFilter                      `json:"siteManager,omitempty"`
	TotalWorkers   *IntFilter                         `json:"totalWorkers,omitempty"`
	ProjectID      *UUIDFilter                        `json:"projectId,omitempty"`
	Project        *RelationFilter[ProjectWhereInput] `json:"project,omitempty"`
}

func (w TeamWhereInput) filter() *conds {
	c := newConds(teamsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.ProjectManager.sqlizer(c.col("project_manager")))
	c.add(w.SiteManager.sqlizer(c.col("site_manager")))
	c.add(w.TotalWorkers.sqlizer(c.col("total_workers")))
	c.add(w.ProjectID.sqlizer(c.col("project_id")))
	c.add(toOne(w.Project, parentOf(teamsTable, projectsTable, "project_id"))...)
	return c
}

func (w TeamWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// TeamWhereUniqueInput selects one team by id or projectId. The other filters
// narrow the match further.
type TeamWhereUniqueInput struct {
	ID        *UUID `json:"id,omitempty"`
	ProjectID *UUID `json:"projectId,omitempty"`
	TeamWhereInput
}

func (w TeamWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id, projectId", w.ID != nil || w.ProjectID != nil
}

func (w TeamWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.TeamWhereInput.filter()
	eqValue(c, "id", w.ID)
	eqValue(c, "project_id", w.ProjectID)
	return c.ToSql()
}

type TeamOrderByInput struct {
	ID             *Sort                `json:"id,omitempty"`
	ProjectManager *Sort                `json:"projectManager,omitempty"`
	SiteManager    *Sort                `json:"siteManager,omitempty"`
	TotalWorkers   *Sort                `json:"totalWorkers,omitempty"`
	ProjectID      *Sort                `json:"projectId,omitempty"`
	Project        *ProjectOrderByInput `json:"project,omitempty"`
}

func (o TeamOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(teamsTable, wrap)
	t.add("id", o.ID)
	t.add("project_manager", o.ProjectManager)
	t.add("site_manager", o.SiteManager)
	t.add("total_workers", o.TotalWorkers)
	t.add("project_id", o.ProjectID)
	if o.Project != nil {
		t.out = append(t.out, o.Project.orderTerms(t.via(parentOf(teamsTable, projectsTable, "project_id")))...)
	}
	return t.out
}

// TeamData holds the scalar fields of a new team. It is the payload of
// nested creates under a project.
type TeamData struct {
	ID             *UUID   `json:"id,omitempty"`
	ProjectManager *string `json:"projectManager" validate:"required"`
	SiteManager    *string `json:"siteManager" validate:"required"`
	TotalWorkers   *int32  `json:"totalWorkers" validate:"required"`
}

func (d TeamData) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", d.ID)
	setValue(v, "project_manager", d.ProjectManager)
	setValue(v, "site_manager", d.SiteManager)
	setValue(v, "total_workers", d.TotalWorkers)
	return v
}

// TeamCreateInput is TeamData linked to its project, either through the
// project relation or through projectId, never both.
type TeamCreateInput struct {
	TeamData
	ProjectID *UUID                                                         `json:"projectId,omitempty"`
	Project   *NestedCreateOne[ProjectCreateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in TeamCreateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in TeamCreateInput) write() Write {
	w := Write{Values: in.values()}
	connect, others := in.Project.parent()
	linkProject(&w, in.ProjectID, connect, others)
	return w
}

type TeamUpdateData struct {
	ID             *Set[UUID]           `json:"id,omitempty"`
	ProjectManager *Set[string]         `json:"projectManager,omitempty"`
	SiteManager    *Set[string]         `json:"siteManager,omitempty"`
	TotalWorkers   *NumberUpdate[int32] `json:"totalWorkers,omitempty"`
}

func (d TeamUpdateData) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assign(v, "project_manager", d.ProjectManager)
	assign(v, "site_manager", d.SiteManager)
	assignNumber(v, "total_workers", d.TotalWorkers)
	return v
}

func (d TeamUpdateData) write() Write { return Write{Values: d.values()} }

type TeamUpdateInput struct {
	TeamUpdateData
	ProjectID *Set[UUID]                                                                        `json:"projectId,omitempty"`
	Project   *NestedUpdateOne[ProjectCreateInput, ProjectUpdateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in TeamUpdateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in TeamUpdateInput) write() Write {
	w := in.TeamUpdateData.write()
	var id *UUID
	if in.ProjectID != nil {
		id = in.ProjectID.Value
	}
	connect, others := in.Project.parent()
	linkProject(&w, id, connect, others)
	return w
}

// TeamScalarWhereWithAggregatesInput is the having clause of team groupBy.
type TeamScalarWhereWithAggregatesInput struct {
	AND            OneOrMany[TeamScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR             OneOrMany[TeamScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT            OneOrMany[TeamScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID             *EqualityAggFilter[UUID]                      `json:"id,omitempty"`
	ProjectManager *StringAggFilter                              `json:"projectManager,omitempty"`
	SiteManager    *StringAggFilter                              `json:"siteManager,omitempty"`
	TotalWorkers   *NumberAggFilter[int32]                       `json:"totalWorkers,omitempty"`
	ProjectID      *EqualityAggFilter[UUID]                      `json:"projectId,omitempty"`
}

func (w TeamScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(teamsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.ProjectManager.havingSqlizer(c.col("project_manager")))
	c.add(w.SiteManager.havingSqlizer(c.col("site_manager")))
	c.add(w.TotalWorkers.havingSqlizer(c.col("total_workers")))
	c.add(w.ProjectID.havingSqlizer(c.col("project_id")))
	return c.ToSql()
}
