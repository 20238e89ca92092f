package schema

// DocumentScalarField names a Document field in distinct, groupBy and aggregate
// selections.
type DocumentScalarField string

const (
	DocumentFieldID         DocumentScalarField = "id"
	DocumentFieldFileURL    DocumentScalarField = "fileUrl"
	DocumentFieldFileName   DocumentScalarField = "fileName"
	DocumentFieldUploadDate DocumentScalarField = "uploadDate"
	DocumentFieldProjectID  DocumentScalarField = "projectId"
)

var documentColumns = map[DocumentScalarField]string{
	DocumentFieldID:         "documents.id",
	DocumentFieldFileURL:    "documents.file_url",
	DocumentFieldFileName:   "documents.file_name",
	DocumentFieldUploadDate: "documents.upload_date",
	DocumentFieldProjectID:  "documents.project_id",
}

func (f DocumentScalarField) IsValid() bool {
	_, ok := documentColumns[f]
	return ok
}

func (f DocumentScalarField) Column() string { return documentColumns[f] }

// DocumentWhereInput filters document rows. AND, OR and NOT nest to any depth.
type DocumentWhereInput struct {
	AND        OneOrMany[DocumentWhereInput]      `json:"AND,omitempty" validate:"omitempty,dive"`
	OR         OneOrMany[DocumentWhereInput]      `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT        OneOrMany[DocumentWhereInput]      `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID         *UUIDFilter                        `json:"id,omitempty"`
	FileURL    *StringFilter                      `json:"fileUrl,omitempty"`
	FileName   *StringFilter                      `json:"fileName,omitempty"`
	UploadDate *DateTimeFilter                    `json:"uploadDate,omitempty"`
	ProjectID  *UUIDFilter                        `json:"projectId,omitempty"`
	Project    *RelationFilter[ProjectWhereInput] `json:"project,omitempty"`
}

func (w DocumentWhereInput) filter() *conds {
	c := newConds(documentsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.FileURL.sqlizer(c.col("file_url")))
	c.add(w.FileName.sqlizer(c.col("file_name")))
	c.add(w.UploadDate.sqlizer(c.col("upload_date")))
	c.add(w.ProjectID.sqlizer(c.col("project_id")))
	c.add(toOne(w.Project, parentOf(documentsTable, projectsTable, "project_id"))...)
	return c
}

func (w DocumentWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// DocumentWhereUniqueInput selects one document by id. The other filters
// narrow the match further.
type DocumentWhereUniqueInput struct {
	ID *UUID `json:"id,omitempty"`
	DocumentWhereInput
}

func (w DocumentWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id", w.ID != nil
}

func (w DocumentWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.DocumentWhereInput.filter()
	eqValue(c, "id", w.ID)
	return c.ToSql()
}

type DocumentOrderByInput struct {
	ID         *Sort                `json:"id,omitempty"`
	FileURL    *Sort                `json:"fileUrl,omitempty"`
	FileName   *Sort                `json:"fileName,omitempty"`
	UploadDate *Sort                `json:"uploadDate,omitempty"`
	ProjectID  *Sort                `json:"projectId,omitempty"`
	Project    *ProjectOrderByInput `json:"project,omitempty"`
}

func (o DocumentOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(documentsTable, wrap)
	t.add("id", o.ID)
	t.add("file_url", o.FileURL)
	t.add("file_name", o.FileName)
	t.add("upload_date", o.UploadDate)
	t.add("project_id", o.ProjectID)
	if o.Project != nil {
		t.out = append(t.out, o.Project.orderTerms(t.via(parentOf(documentsTable, projectsTable, "project_id")))...)
	}
	return t.out
}

// DocumentData holds the scalar fields of a new document. It is the payload of
// nested creates under a project.
type DocumentData struct {
	ID         *UUID     `json:"id,omitempty"`
	FileURL    *string   `json:"fileUrl" validate:"required"`
	FileName   *string   `json:"fileName" validate:"required"`
	UploadDate *DateTime `json:"uploadDate" validate:"required"`
}

func (d DocumentData) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", d.ID)
	setValue(v, "file_url", d.FileURL)
	setValue(v, "file_name", d.FileName)
	setValue(v, "upload_date", d.UploadDate)
	return v
}

// DocumentCreateInput is DocumentData linked to its project, either through the
// project relation or through projectId, never both.
type DocumentCreateInput struct {
	DocumentData
	ProjectID *UUID                                                         `json:"projectId,omitempty"`
	Project   *NestedCreateOne[ProjectCreateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in DocumentCreateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in DocumentCreateInput) write() Write {
	w := Write{Values: in.values()}
	connect, others := in.Project.parent()
	linkProject(&w, in.ProjectID, connect, others)
	return w
}

type DocumentUpdateData struct {
	ID         *Set[UUID]     `json:"id,omitempty"`
	FileURL    *Set[string]   `json:"fileUrl,omitempty"`
	FileName   *Set[string]   `json:"fileName,omitempty"`
	UploadDate *Set[DateTime] `json:"uploadDate,omitempty"`
}

func (d DocumentUpdateData) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assign(v, "file_url", d.FileURL)
	assign(v, "file_name", d.FileName)
	assign(v, "upload_date", d.UploadDate)
	return v
}

func (d DocumentUpdateData) write() Write { return Write{Values: d.values()} }

type DocumentUpdateInput struct {
	DocumentUpdateData
	ProjectID *Set[UUID]                                                                        `json:"projectId,omitempty"`
	Project   *NestedUpdateOne[ProjectCreateInput, ProjectUpdateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in DocumentUpdateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in DocumentUpdateInput) write() Write {
	w := in.DocumentUpdateData.write()
	var id *UUID
	if in.ProjectID != nil {
		id = in.ProjectID.Value
	}
	connect, others := in.Project.parent()
	linkProject(&w, id, connect, others)
	return w
}

// DocumentScalarWhereWithAggregatesInput is the having clause of document groupBy.
type DocumentScalarWhereWithAggregatesInput struct {
	AND        OneOrMany[DocumentScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR         OneOrMany[DocumentScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT        OneOrMany[DocumentScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID         *EqualityAggFilter[UUID]                          `json:"id,omitempty"`
	FileURL    *StringAggFilter                                  `json:"fileUrl,omitempty"`
	FileName   *StringAggFilter                                  `json:"fileName,omitempty"`
	UploadDate *DateTimeAggFilter                                `json:"uploadDate,omitempty"`
	ProjectID  *EqualityAggFilter[UUID]                          `json:"projectId,omitempty"`
}

func (w DocumentScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(documentsTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.FileURL.havingSqlizer(c.col("file_url")))
	c.add(w.FileName.havingSqlizer(c.col("file_name")))
	c.add(w.UploadDate.havingSqlizer(c.col("upload_date")))
	c.add(w.ProjectID.havingSqlizer(c.col("project_id")))
	return c.ToSql()
}
