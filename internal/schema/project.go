package schema

// ProjectScalarField names a Project field in distinct, groupBy and aggregate
// selections.
type ProjectScalarField string

const (
	ProjectFieldID          ProjectScalarField = "id"
	ProjectFieldProjectName ProjectScalarField = "projectName"
	ProjectFieldClientName  ProjectScalarField = "clientName"
	ProjectFieldLocation    ProjectScalarField = "location"
	ProjectFieldStartDate   ProjectScalarField = "startDate"
	ProjectFieldEndDate     ProjectScalarField = "endDate"
	ProjectFieldCreatedAt   ProjectScalarField = "createdAt"
	ProjectFieldUpdatedAt   ProjectScalarField = "updatedAt"
)

var projectColumns = map[ProjectScalarField]string{
	ProjectFieldID:          "projects.id",
	ProjectFieldProjectName: "projects.project_name",
	ProjectFieldClientName:  "projects.client_name",
	ProjectFieldLocation:    "projects.location",
	ProjectFieldStartDate:   "projects.start_date",
	ProjectFieldEndDate:     "projects.end_date",
	ProjectFieldCreatedAt:   "projects.created_at",
	ProjectFieldUpdatedAt:   "projects.updated_at",
}

func (f ProjectScalarField) IsValid() bool {
	_, ok := projectColumns[f]
	return ok
}

func (f ProjectScalarField) Column() string { return projectColumns[f] }

// ProjectWhereInput filters project rows. AND, OR and NOT nest to any depth.
type ProjectWhereInput struct {
	AND             OneOrMany[ProjectWhereInput]                  `json:"AND,omitempty" validate:"omitempty,dive"`
	OR              OneOrMany[ProjectWhereInput]                  `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT             OneOrMany[ProjectWhereInput]                  `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID              *UUIDFilter                                   `json:"id,omitempty"`
	ProjectName     *StringFilter                                 `json:"projectName,omitempty"`
	ClientName      *StringFilter                                 `json:"clientName,omitempty"`
	Location        *StringFilter                                 `json:"location,omitempty"`
	StartDate       *DateTimeFilter                               `json:"startDate,omitempty"`
	EndDate         *DateTimeFilter                               `json:"endDate,omitempty"`
	CreatedAt       *DateTimeFilter                               `json:"createdAt,omitempty"`
	UpdatedAt       *DateTimeFilter                               `json:"updatedAt,omitempty"`
	Budget          *RelationFilter[BudgetWhereInput]             `json:"budget,omitempty"`
	Team            *RelationFilter[TeamWhereInput]               `json:"team,omitempty"`
	Milestones      *ListRelationFilter[MilestoneWhereInput]      `json:"milestones,omitempty"`
	ChecklistItems  *ListRelationFilter[ChecklistItemWhereInput]  `json:"checklistItems,omitempty"`
	Documents       *ListRelationFilter[DocumentWhereInput]       `json:"documents,omitempty"`
	OutgoingLetters *ListRelationFilter[OutgoingLetterWhereInput] `json:"outgoingLetters,omitempty"`
	IncomingLetters *ListRelationFilter[IncomingLetterWhereInput] `json:"incomingLetters,omitempty"`
	Reports         *ListRelationFilter[ReportWhereInput]         `json:"reports,omitempty"`
	SiteImages      *ListRelationFilter[SiteImageWhereInput]      `json:"siteImages,omitempty"`
}

func (w ProjectWhereInput) filter() *conds {
	c := newConds(projectsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.ProjectName.sqlizer(c.col("project_name")))
	c.add(w.ClientName.sqlizer(c.col("client_name")))
	c.add(w.Location.sqlizer(c.col("location")))
	c.add(w.StartDate.sqlizer(c.col("start_date")))
	c.add(w.EndDate.sqlizer(c.col("end_date")))
	c.add(w.CreatedAt.sqlizer(c.col("created_at")))
	c.add(w.UpdatedAt.sqlizer(c.col("updated_at")))
	c.add(toOne(w.Budget, childrenOf(projectsTable, budgetsTable, "project_id"))...)
	c.add(toOne(w.Team, childrenOf(projectsTable, teamsTable, "project_id"))...)
	c.add(toMany(w.Milestones, childrenOf(projectsTable, milestonesTable, "project_id"))...)
	c.add(toMany(w.ChecklistItems, childrenOf(projectsTable, checklistItemsTable, "project_id"))...)
	c.add(toMany(w.Documents, childrenOf(projectsTable, documentsTable, "project_id"))...)
	c.add(toMany(w.OutgoingLetters, childrenOf(projectsTable, outgoingLettersTable, "project_id"))...)
	c.add(toMany(w.IncomingLetters, childrenOf(projectsTable, incomingLettersTable, "project_id"))...)
	c.add(toMany(w.Reports, childrenOf(projectsTable, reportsTable, "project_id"))...)
	c.add(toMany(w.SiteImages, childrenOf(projectsTable, siteImagesTable, "project_id"))...)
	return c
}

func (w ProjectWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// ProjectWhereUniqueInput selects one project by id. The other filters
// narrow the match further.
type ProjectWhereUniqueInput struct {
	ID *UUID `json:"id,omitempty"`
	ProjectWhereInput
}

func (w ProjectWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id", w.ID != nil
}

func (w ProjectWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.ProjectWhereInput.filter()
	eqValue(c, "id", w.ID)
	return c.ToSql()
}

type ProjectOrderByInput struct {
	ID              *Sort               `json:"id,omitempty"`
	ProjectName     *Sort               `json:"projectName,omitempty"`
	ClientName      *Sort               `json:"clientName,omitempty"`
	Location        *Sort               `json:"location,omitempty"`
	StartDate       *Sort               `json:"startDate,omitempty"`
	EndDate         *Sort               `json:"endDate,omitempty"`
	CreatedAt       *Sort               `json:"createdAt,omitempty"`
	UpdatedAt       *Sort               `json:"updatedAt,omitempty"`
	Budget          *BudgetOrderByInput `json:"budget,omitempty"`
	Team            *TeamOrderByInput   `json:"team,omitempty"`
	Milestones      *CountOrder         `json:"milestones,omitempty"`
	ChecklistItems  *CountOrder         `json:"checklistItems,omitempty"`
	Documents       *CountOrder         `json:"documents,omitempty"`
	OutgoingLetters *CountOrder         `json:"outgoingLetters,omitempty"`
	IncomingLetters *CountOrder         `json:"incomingLetters,omitempty"`
	Reports         *CountOrder         `json:"reports,omitempty"`
	SiteImages      *CountOrder         `json:"siteImages,omitempty"`
}

func (o ProjectOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(projectsTable, wrap)
	t.add("id", o.ID)
	t.add("project_name", o.ProjectName)
	t.add("client_name", o.ClientName)
	t.add("location", o.Location)
	t.add("start_date", o.StartDate)
	t.add("end_date", o.EndDate)
	t.add("created_at", o.CreatedAt)
	t.add("updated_at", o.UpdatedAt)
	if o.Budget != nil {
		t.out = append(t.out, o.Budget.orderTerms(t.via(childrenOf(projectsTable, budgetsTable, "project_id")))...)
	}
	if o.Team != nil {
		t.out = append(t.out, o.Team.orderTerms(t.via(childrenOf(projectsTable, teamsTable, "project_id")))...)
	}
	t.count(childrenOf(projectsTable, milestonesTable, "project_id"), o.Milestones)
	t.count(childrenOf(projectsTable, checklistItemsTable, "project_id"), o.ChecklistItems)
	t.count(childrenOf(projectsTable, documentsTable, "project_id"), o.Documents)
	t.count(childrenOf(projectsTable, outgoingLettersTable, "project_id"), o.OutgoingLetters)
	t.count(childrenOf(projectsTable, incomingLettersTable, "project_id"), o.IncomingLetters)
	t.count(childrenOf(projectsTable, reportsTable, "project_id"), o.Reports)
	t.count(childrenOf(projectsTable, siteImagesTable, "project_id"), o.SiteImages)
	return t.out
}

type ProjectCreateInput struct {
	ID              *UUID                                                                 `json:"id,omitempty"`
	ProjectName     *string                                                               `json:"projectName" validate:"required"`
	ClientName      *string                                                               `json:"clientName" validate:"required"`
	Location        *string                                                               `json:"location" validate:"required"`
	StartDate       *DateTime                                                             `json:"startDate" validate:"required"`
	EndDate         *DateTime                                                             `json:"endDate" validate:"required"`
	CreatedAt       *DateTime                                                             `json:"createdAt,omitempty"`
	UpdatedAt       *DateTime                                                             `json:"updatedAt,omitempty"`
	Budget          *NestedCreateOne[BudgetData, BudgetWhereUniqueInput]                  `json:"budget,omitempty"`
	Team            *NestedCreateOne[TeamData, TeamWhereUniqueInput]                      `json:"team,omitempty"`
	Milestones      *NestedCreateMany[MilestoneData, MilestoneWhereUniqueInput]           `json:"milestones,omitempty"`
	ChecklistItems  *NestedCreateMany[ChecklistItemData, ChecklistItemWhereUniqueInput]   `json:"checklistItems,omitempty"`
	Documents       *NestedCreateMany[DocumentData, DocumentWhereUniqueInput]             `json:"documents,omitempty"`
	OutgoingLetters *NestedCreateMany[OutgoingLetterData, OutgoingLetterWhereUniqueInput] `json:"outgoingLetters,omitempty"`
	IncomingLetters *NestedCreateMany[IncomingLetterData, IncomingLetterWhereUniqueInput] `json:"incomingLetters,omitempty"`
	Reports         *NestedCreateMany[ReportData, ReportWhereUniqueInput]                 `json:"reports,omitempty"`
	SiteImages      *NestedCreateMany[SiteImageData, SiteImageWhereUniqueInput]           `json:"siteImages,omitempty"`
}

func (in ProjectCreateInput) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", in.ID)
	setValue(v, "project_name", in.ProjectName)
	setValue(v, "client_name", in.ClientName)
	setValue(v, "location", in.Location)
	setValue(v, "start_date", in.StartDate)
	setValue(v, "end_date", in.EndDate)
	setValue(v, "created_at", in.CreatedAt)
	setValue(v, "updated_at", in.UpdatedAt)
	return v
}

func (in ProjectCreateInput) write() Write {
	w := Write{Values: in.values()}
	createOne(&w, child{"budget", budgetsTable, "project_id"}, in.Budget)
	createOne(&w, child{"team", teamsTable, "project_id"}, in.Team)
	createMany(&w, child{"milestones", milestonesTable, "project_id"}, in.Milestones)
	createMany(&w, child{"checklistItems", checklistItemsTable, "project_id"}, in.ChecklistItems)
	createMany(&w, child{"documents", documentsTable, "project_id"}, in.Documents)
	createMany(&w, child{"outgoingLetters", outgoingLettersTable, "project_id"}, in.OutgoingLetters)
	createMany(&w, child{"incomingLetters", incomingLettersTable, "project_id"}, in.IncomingLetters)
	createMany(&w, child{"reports", reportsTable, "project_id"}, in.Reports)
	createMany(&w, child{"siteImages", siteImagesTable, "project_id"}, in.SiteImages)
	return w
}

// ProjectUpdateData holds the scalar updates of a project; updateMany takes it alone.
type ProjectUpdateData struct {
	ID          *Set[UUID]     `json:"id,omitempty"`
	ProjectName *Set[string]   `json:"projectName,omitempty"`
	ClientName  *Set[string]   `json:"clientName,omitempty"`
	Location    *Set[string]   `json:"location,omitempty"`
	StartDate   *Set[DateTime] `json:"startDate,omitempty"`
	EndDate     *Set[DateTime] `json:"endDate,omitempty"`
	CreatedAt   *Set[DateTime] `json:"createdAt,omitempty"`
	UpdatedAt   *Set[DateTime] `json:"updatedAt,omitempty"`
}

func (d ProjectUpdateData) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assign(v, "project_name", d.ProjectName)
	assign(v, "client_name", d.ClientName)
	assign(v, "location", d.Location)
	assign(v, "start_date", d.StartDate)
	assign(v, "end_date", d.EndDate)
	assign(v, "created_at", d.CreatedAt)
	assign(v, "updated_at", d.UpdatedAt)
	touch(v)
	return v
}

func (d ProjectUpdateData) write() Write { return Write{Values: d.values()} }

type ProjectUpdateInput struct {
	ProjectUpdateData
	Budget          *NestedOptionalOne[BudgetData, BudgetUpdateData, BudgetWhereUniqueInput]                                                  `json:"budget,omitempty"`
	Team            *NestedOptionalOne[TeamData, TeamUpdateData, TeamWhereUniqueInput]                                                        `json:"team,omitempty"`
	Milestones      *NestedUpdateMany[MilestoneData, MilestoneUpdateData, MilestoneWhereInput, MilestoneWhereUniqueInput]                     `json:"milestones,omitempty"`
	ChecklistItems  *NestedUpdateMany[ChecklistItemData, ChecklistItemUpdateData, ChecklistItemWhereInput, ChecklistItemWhereUniqueInput]     `json:"checklistItems,omitempty"`
	Documents       *NestedUpdateMany[DocumentData, DocumentUpdateData, DocumentWhereInput, DocumentWhereUniqueInput]                         `json:"documents,omitempty"`
	OutgoingLetters *NestedUpdateMany[OutgoingLetterData, OutgoingLetterUpdateData, OutgoingLetterWhereInput, OutgoingLetterWhereUniqueInput] `json:"outgoingLetters,omitempty"`
	IncomingLetters *NestedUpdateMany[IncomingLetterData, IncomingLetterUpdateData, IncomingLetterWhereInput, IncomingLetterWhereUniqueInput] `json:"incomingLetters,omitempty"`
	Reports         *NestedUpdateMany[ReportData, ReportUpdateData, ReportWhereInput, ReportWhereUniqueInput]                                 `json:"reports,omitempty"`
	SiteImages      *NestedUpdateMany[SiteImageData, SiteImageUpdateData, SiteImageWhereInput, SiteImageWhereUniqueInput]                     `json:"siteImages,omitempty"`
}

func (in ProjectUpdateInput) write() Write {
	w := in.ProjectUpdateData.write()
	updateOptionalOne(&w, child{"budget", budgetsTable, "project_id"}, in.Budget)
	updateOptionalOne(&w, child{"team", teamsTable, "project_id"}, in.Team)
	updateMany(&w, child{"milestones", milestonesTable, "project_id"}, in.Milestones)
	updateMany(&w, child{"checklistItems", checklistItemsTable, "project_id"}, in.ChecklistItems)
	updateMany(&w, child{"documents", documentsTable, "project_id"}, in.Documents)
	updateMany(&w, child{"outgoingLetters", outgoingLettersTable, "project_id"}, in.OutgoingLetters)
	updateMany(&w, child{"incomingLetters", incomingLettersTable, "project_id"}, in.IncomingLetters)
	updateMany(&w, child{"reports", reportsTable, "project_id"}, in.Reports)
	updateMany(&w, child{"siteImages", siteImagesTable, "project_id"}, in.SiteImages)
	return w
}

// ProjectScalarWhereWithAggregatesInput is the having clause of project groupBy.
type ProjectScalarWhereWithAggregatesInput struct {
	AND         OneOrMany[ProjectScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR          OneOrMany[ProjectScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT         OneOrMany[ProjectScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID          *EqualityAggFilter[UUID]                         `json:"id,omitempty"`
	ProjectName *StringAggFilter                                 `json:"projectName,omitempty"`
	ClientName  *StringAggFilter                                 `json:"clientName,omitempty"`
	Location    *StringAggFilter                                 `json:"location,omitempty"`
	StartDate   *DateTimeAggFilter                               `json:"startDate,omitempty"`
	EndDate     *DateTimeAggFilter                               `json:"endDate,omitempty"`
	CreatedAt   *DateTimeAggFilter                               `json:"createdAt,omitempty"`
	UpdatedAt   *DateTimeAggFilter                               `json:"updatedAt,omitempty"`
}

func (w ProjectScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(projectsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.ProjectName.havingSqlizer(c.col("project_name")))
	c.add(w.ClientName.havingSqlizer(c.col("client_name")))
	c.add(w.Location.havingSqlizer(c.col("location")))
	c.add(w.StartDate.havingSqlizer(c.col("start_date")))
	c.add(w.EndDate.havingSqlizer(c.col("end_date")))
	c.add(w.CreatedAt.havingSqlizer(c.col("created_at")))
	c.add(w.UpdatedAt.havingSqlizer(c.col("updated_at")))
	return c.ToSql()
}
