package schema

import "github.com/heartmarshall/sitebook-backend/internal/domain"

// ReportScalarField names a Report field in distinct, groupBy and aggregate
// selections.
type ReportScalarField string

const (
	ReportFieldID         ReportScalarField = "id"
	ReportFieldTitle      ReportScalarField = "title"
	ReportFieldReportType ReportScalarField = "reportType"
	ReportFieldStatus     ReportScalarField = "status"
	ReportFieldReportDate ReportScalarField = "reportDate"
	ReportFieldFileURL    ReportScalarField = "fileUrl"
	ReportFieldFileName   ReportScalarField = "fileName"
	ReportFieldProjectID  ReportScalarField = "projectId"
)

var reportColumns = map[ReportScalarField]string{
	ReportFieldID:         "reports.id",
	ReportFieldTitle:      "reports.title",
	ReportFieldReportType: "reports.report_type",
	ReportFieldStatus:     "reports.status",
	ReportFieldReportDate: "reports.report_date",
	ReportFieldFileURL:    "reports.file_url",
	ReportFieldFileName:   "reports.file_name",
	ReportFieldProjectID:  "reports.project_id",
}

func (f ReportScalarField) IsValid() bool {
	_, ok := reportColumns[f]
	return ok
}

func (f ReportScalarField) Column() string { return reportColumns[f] }

// ReportWhereInput filters report rows. AND, OR and NOT nest to any depth.
type ReportWhereInput struct {
	AND        OneOrMany[ReportWhereInput]          `json:"AND,omitempty" validate:"omitempty,dive"`
	OR         OneOrMany[ReportWhereInput]          `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT        OneOrMany[ReportWhereInput]          `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID         *UUIDFilter                          `json:"id,omitempty"`
	Title      *StringFilter                        `json:"title,omitempty"`
	ReportType *EqualityFilter[domain.ReportType]   `json:"reportType,omitempty"`
	Status     *EqualityFilter[domain.ReportStatus] `json:"status,omitempty"`
	ReportDate *DateTimeFilter                      `json:"reportDate,omitempty"`
	FileURL    *StringFilter                        `json:"fileUrl,omitempty"`
	FileName   *StringFilter                        `json:"fileName,omitempty"`
	ProjectID  *UUIDFilter                          `json:"projectId,omitempty"`
	Project    *RelationFilter[ProjectWhereInput]   `json:"project,omitempty"`
}

func (w ReportWhereInput) filter() *conds {
	c := newConds(reportsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.Title.sqlizer(c.col("title")))
	c.add(w.ReportType.sqlizer(c.col("report_type")))
	c.add(w.Status.sqlizer(c.col("status")))
	c.add(w.ReportDate.sqlizer(c.col("report_date")))
	c.add(w.FileURL.sqlizer(c.col("file_url")))
	c.add(w.FileName.sqlizer(c.col("file_name")))
	c.add(w.ProjectID.sqlizer(c.col("project_id")))
	c.add(toOne(w.Project, parentOf(reportsTable, projectsTable, "project_id"))...)
	return c
}

func (w ReportWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// ReportWhereUniqueInput selects one report by id. The other filters
// narrow the match further.
type ReportWhereUniqueInput struct {
	ID *UUID `json:"id,omitempty"`
	ReportWhereInput
}

func (w ReportWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id", w.ID != nil
}

func (w ReportWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.ReportWhereInput.filter()
	eqValue(c, "id", w.ID)
	return c.ToSql()
}

type ReportOrderByInput struct {
	ID         *Sort                `json:"id,omitempty"`
	Title      *Sort                `json:"title,omitempty"`
	ReportType *Sort                `json:"reportType,omitempty"`
	Status     *Sort                `json:"status,omitempty"`
	ReportDate *Sort                `json:"reportDate,omitempty"`
	FileURL    *Sort                `json:"fileUrl,omitempty"`
	FileName   *Sort                `json:"fileName,omitempty"`
	ProjectID  *Sort                `json:"projectId,omitempty"`
	Project    *ProjectOrderByInput `json:"project,omitempty"`
}

func (o ReportOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(reportsTable, wrap)
	t.add("id", o.ID)
	t.add("title", o.Title)
	t.add("report_type", o.ReportType)
	t.add("status", o.Status)
	t.add("report_date", o.ReportDate)
	t.add("file_url", o.FileURL)
	t.add("file_name", o.FileName)
	t.add("project_id", o.ProjectID)
	if o.Project != nil {
		t.out = append(t.out, o.Project.orderTerms(t.via(parentOf(reportsTable, projectsTable, "project_id")))...)
	}
	return t.out
}

// ReportData holds the scalar fields of a new report. It is the payload of
// nested creates under a project.
type ReportData struct {
	ID         *UUID                `json:"id,omitempty"`
	Title      *string              `json:"title" validate:"required"`
	ReportType *domain.ReportType   `json:"reportType" validate:"required,enum"`
	Status     *domain.ReportStatus `json:"status" validate:"required,enum"`
	ReportDate *DateTime            `json:"reportDate" validate:"required"`
	FileURL    *string              `json:"fileUrl" validate:"required"`
	FileName   *string              `json:"fileName" validate:"required"`
}

func (d ReportData) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", d.ID)
	setValue(v, "title", d.Title)
	setValue(v, "report_type", d.ReportType)
	setValue(v, "status", d.Status)
	setValue(v, "report_date", d.ReportDate)
	setValue(v, "file_url", d.FileURL)
	setValue(v, "file_name", d.FileName)
	return v
}

// ReportCreateInput is ReportData linked to its project, either through the
// project relation or through projectId, never both.
type ReportCreateInput struct {
	ReportData
	ProjectID *UUID                                                         `json:"projectId,omitempty"`
	Project   *NestedCreateOne[ProjectCreateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in ReportCreateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in ReportCreateInput) write() Write {
	w := Write{Values: in.values()}
	connect, others := in.Project.parent()
	linkProject(&w, in.ProjectID, connect, others)
	return w
}

type ReportUpdateData struct {
	ID         *Set[UUID]                `json:"id,omitempty"`
	Title      *Set[string]              `json:"title,omitempty"`
	ReportType *Set[domain.ReportType]   `json:"reportType,omitempty"`
	Status     *Set[domain.ReportStatus] `json:"status,omitempty"`
	ReportDate *Set[DateTime]            `json:"reportDate,omitempty"`
	FileURL    *Set[string]              `json:"fileUrl,omitempty"`
	FileName   *Set[string]              `json:"fileName,omitempty"`
}

func (d ReportUpdateData) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assign(v, "title", d.Title)
	assign(v, "report_type", d.ReportType)
	assign(v, "status", d.Status)
	assign(v, "report_date", d.ReportDate)
	assign(v, "file_url", d.FileURL)
	assign(v, "file_name", d.FileName)
	return v
}

func (d ReportUpdateData) write() Write { return Write{Values: d.values()} }

type ReportUpdateInput struct {
	ReportUpdateData
	ProjectID *Set[UUID]                                                                        `json:"projectId,omitempty"`
	Project   *NestedUpdateOne[ProjectCreateInput, ProjectUpdateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in ReportUpdateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in ReportUpdateInput) write() Write {
	w := in.ReportUpdateData.write()
	var id *UUID
	if in.ProjectID != nil {
		id = in.ProjectID.Value
	}
	connect, others := in.Project.parent()
	linkProject(&w, id, connect, others)
	return w
}

// ReportScalarWhereWithAggregatesInput is the having clause of report groupBy.
type ReportScalarWhereWithAggregatesInput struct {
	AND        OneOrMany[ReportScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR         OneOrMany[ReportScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT        OneOrMany[ReportScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID         *EqualityAggFilter[UUID]                        `json:"id,omitempty"`
	Title      *StringAggFilter                                `json:"title,omitempty"`
	ReportType *EqualityAggFilter[domain.ReportType]           `json:"reportType,omitempty"`
	Status     *EqualityAggFilter[domain.ReportStatus]         `json:"status,omitempty"`
	ReportDate *DateTimeAggFilter                              `json:"reportDate,omitempty"`
	FileURL    *StringAggFilter                                `json:"fileUrl,omitempty"`
	FileName   *StringAggFilter                                `json:"fileName,omitempty"`
	ProjectID  *EqualityAggFilter[UUID]                        `json:"projectId,omitempty"`
}

func (w ReportScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(reportsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.Title.havingSqlizer(c.col("title")))
	c.add(w.ReportType.havingSqlizer(c.col("report_type")))
	c.add(w.Status.havingSqlizer(c.col("status")))
	c.add(w.ReportDate.havingSqlizer(c.col("report_date")))
	c.add(w.FileURL.havingSqlizer(c.col("file_url")))
	c.add(w.FileName.havingSqlizer(c.col("file_name")))
	c.add(w.ProjectID.havingSqlizer(c.col("project_id")))
	return c.ToSql()
}
