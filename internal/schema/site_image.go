package schema

import "github.com/heartmarshall/sitebook-backend/internal/domain"

// SiteImageScalarField names a SiteImage field in distinct, groupBy and aggregate
// selections.
type SiteImageScalarField string

const (
	SiteImageFieldID         SiteImageScalarField = "id"
	SiteImageFieldImageURL   SiteImageScalarField = "imageUrl"
	SiteImageFieldFileName   SiteImageScalarField = "fileName"
	SiteImageFieldCategory   SiteImageScalarField = "category"
	SiteImageFieldUploadDate SiteImageScalarField = "uploadDate"
	SiteImageFieldProjectID  SiteImageScalarField = "projectId"
)

var siteImageColumns = map[SiteImageScalarField]string{
	SiteImageFieldID:         "site_images.id",
	SiteImageFieldImageURL:   "site_images.image_url",
	SiteImageFieldFileName:   "site_images.file_name",
	SiteImageFieldCategory:   "site_images.category",
	SiteImageFieldUploadDate: "site_images.upload_date",
	SiteImageFieldProjectID:  "site_images.project_id",
}

func (f SiteImageScalarField) IsValid() bool {
	_, ok := siteImageColumns[f]
	return ok
}

func (f SiteImageScalarField) Column() string { return siteImageColumns[f] }

// SiteImageWhereInput filters siteImage rows. AND, OR and NOT nest to any depth.
type SiteImageWhereInput struct {
	AND        OneOrMany[SiteImageWhereInput]        `json:"AND,omitempty" validate:"omitempty,dive"`
	OR         OneOrMany[SiteImageWhereInput]        `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT        OneOrMany[SiteImageWhereInput]        `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID         *UUIDFilter                           `json:"id,omitempty"`
	ImageURL   *StringFilter                         `json:"imageUrl,omitempty"`
	FileName   *StringFilter                         `json:"fileName,omitempty"`
	Category   *EqualityFilter[domain.ImageCategory] `json:"category,omitempty"`
	UploadDate *DateTimeFilter                       `json:"uploadDate,omitempty"`
	ProjectID  *UUIDFilter                           `json:"projectId,omitempty"`
	Project    *RelationFilter[ProjectWhereInput]    `json:"project,omitempty"`
}

func (w SiteImageWhereInput) filter() *conds {
	c := newConds(siteImagesTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.ImageURL.sqlizer(c.col("image_url")))
	c.add(w.FileName.sqlizer(c.col("file_name")))
	c.add(w.Category.sqlizer(c.col("category")))
	c.add(w.UploadDate.sqlizer(c.col("upload_date")))
	c.add(w.ProjectID.sqlizer(c.col("project_id")))
	c.add(toOne(w.Project, parentOf(siteImagesTable, projectsTable, "project_id"))...)
	return c
}

func (w SiteImageWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// SiteImageWhereUniqueInput selects one siteImage by id. The other filters
// narrow the match further.
type SiteImageWhereUniqueInput struct {
	ID *UUID `json:"id,omitempty"`
	SiteImageWhereInput
}

func (w SiteImageWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id", w.ID != nil
}

func (w SiteImageWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.SiteImageWhereInput.filter()
	eqValue(c, "id", w.ID)
	return c.ToSql()
}

type SiteImageOrderByInput struct {
	ID         *Sort                `json:"id,omitempty"`
	ImageURL   *Sort                `json:"imageUrl,omitempty"`
	FileName   *Sort                `json:"fileName,omitempty"`
	Category   *Sort                `json:"category,omitempty"`
	UploadDate *Sort                `json:"uploadDate,omitempty"`
	ProjectID  *Sort                `json:"projectId,omitempty"`
	Project    *ProjectOrderByInput `json:"project,omitempty"`
}

func (o SiteImageOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(siteImagesTable, wrap)
	t.add("id", o.ID)
	t.add("image_url", o.ImageURL)
	t.add("file_name", o.FileName)
	t.add("category", o.Category)
	t.add("upload_date", o.UploadDate)
	t.add("project_id", o.ProjectID)
	if o.Project != nil {
		t.out = append(t.out, o.Project.orderTerms(t.via(parentOf(siteImagesTable, projectsTable, "project_id")))...)
	}
	return t.out
}

// SiteImageData holds the scalar fields of a new siteImage. It is the payload of
// nested creates under a project.
type SiteImageData struct {
	ID         *UUID                 `json:"id,omitempty"`
	ImageURL   *string               `json:"imageUrl" validate:"required"`
	FileName   *string               `json:"fileName" validate:"required"`
	Category   *domain.ImageCategory `json:"category" validate:"required,enum"`
	UploadDate *DateTime             `json:"uploadDate" validate:"required"`
}

func (d SiteImageData) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", d.ID)
	setValue(v, "image_url", d.ImageURL)
	setValue(v, "file_name", d.FileName)
	setValue(v, "category", d.Category)
	setValue(v, "upload_date", d.UploadDate)
	return v
}

// SiteImageCreateInput is SiteImageData linked to its project, either through the
// project relation or through projectId, never both.
type SiteImageCreateInput struct {
	SiteImageData
	ProjectID *UUID                                                         `json:"projectId,omitempty"`
	Project   *NestedCreateOne[ProjectCreateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in SiteImageCreateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in SiteImageCreateInput) write() Write {
	w := Write{Values: in.values()}
	connect, others := in.Project.parent()
	linkProject(&w, in.ProjectID, connect, others)
	return w
}

type SiteImageUpdateData struct {
	ID         *Set[UUID]                 `json:"id,omitempty"`
	ImageURL   *Set[string]               `json:"imageUrl,omitempty"`
	FileName   *Set[string]               `json:"fileName,omitempty"`
	Category   *Set[domain.ImageCategory] `json:"category,omitempty"`
	UploadDate *Set[DateTime]             `json:"uploadDate,omitempty"`
}

func (d SiteImageUpdateData) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assign(v, "image_url", d.ImageURL)
	assign(v, "file_name", d.FileName)
	assign(v, "category", d.Category)
	assign(v, "upload_date", d.UploadDate)
	return v
}

func (d SiteImageUpdateData) write() Write { return Write{Values: d.values()} }

type SiteImageUpdateInput struct {
	SiteImageUpdateData
	ProjectID *Set[UUID]                                                                        `json:"projectId,omitempty"`
	Project   *NestedUpdateOne[ProjectCreateInput, ProjectUpdateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in SiteImageUpdateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in SiteImageUpdateInput) write() Write {
	w := in.SiteImageUpdateData.write()
	var id *UUID
	if in.ProjectID != nil {
		id = in.ProjectID.Value
	}
	connect, others := in.Project.parent()
	linkProject(&w, id, connect, others)
	return w
}

// SiteImageScalarWhereWithAggregatesInput is the having clause of siteImage groupBy.
type SiteImageScalarWhereWithAggregatesInput struct {
	AND        OneOrMany[SiteImageScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR         OneOrMany[SiteImageScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT        OneOrMany[SiteImageScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID         *EqualityAggFilter[UUID]                           `json:"id,omitempty"`
	ImageURL   *StringAggFilter                                   `json:"imageUrl,omitempty"`
	FileName   *StringAggFilter                                   `json:"fileName,omitempty"`
	Category   *EqualityAggFilter[domain.ImageCategory]           `json:"category,omitempty"`
	UploadDate *DateTimeAggFilter                                 `json:"uploadDate,omitempty"`
	ProjectID  *EqualityAggFilter[UUID]                           `json:"projectId,omitempty"`
}

func (w SiteImageScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(siteImagesTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.ImageURL.havingSqlizer(c.col("image_url")))
	c.add(w.FileName.havingSqlizer(c.col("file_name")))
	c.add(w.Category.havingSqlizer(c.col("category")))
	c.add(w.UploadDate.havingSqlizer(c.col("upload_date")))
	c.add(w.ProjectID.havingSqlizer(c.col("project_id")))
	return c.ToSql()
}
