package schema

import "github.com/heartmarshall/sitebook-backend/internal/domain"

// IncomingLetterScalarField names a IncomingLetter field in distinct, groupBy and aggregate
// selections.
type IncomingLetterScalarField string

const (
	IncomingLetterFieldID           IncomingLetterScalarField = "id"
	IncomingLetterFieldSubject      IncomingLetterScalarField = "subject"
	IncomingLetterFieldSender       IncomingLetterScalarField = "sender"
	IncomingLetterFieldReceivedDate IncomingLetterScalarField = "receivedDate"
	IncomingLetterFieldPriority     IncomingLetterScalarField = "priority"
	IncomingLetterFieldStatus       IncomingLetterScalarField = "status"
	IncomingLetterFieldFileURL      IncomingLetterScalarField = "fileUrl"
	IncomingLetterFieldFileName     IncomingLetterScalarField = "fileName"
	IncomingLetterFieldProjectID    IncomingLetterScalarField = "projectId"
)

var incomingLetterColumns = map[IncomingLetterScalarField]string{
	IncomingLetterFieldID:           "incoming_letters.id",
	IncomingLetterFieldSubject:      "incoming_letters.subject",
	IncomingLetterFieldSender:       "incoming_letters.sender",
	IncomingLetterFieldReceivedDate: "incoming_letters.received_date",
	IncomingLetterFieldPriority:     "incoming_letters.priority",
	IncomingLetterFieldStatus:       "incoming_letters.status",
	IncomingLetterFieldFileURL:      "incoming_letters.file_url",
	IncomingLetterFieldFileName:     "incoming_letters.file_name",
	IncomingLetterFieldProjectID:    "incoming_letters.project_id",
}

func (f IncomingLetterScalarField) IsValid() bool {
	_, ok := incomingLetterColumns[f]
	return ok
}

func (f IncomingLetterScalarField) Column() string { return incomingLetterColumns[f] }

// IncomingLetterWhereInput filters incomingLetter rows. AND, OR and NOT nest to any depth.
type IncomingLetterWhereInput struct {
	AND          OneOrMany[IncomingLetterWhereInput]    `json:"AND,omitempty" validate:"omitempty,dive"`
	OR           OneOrMany[IncomingLetterWhereInput]    `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT          OneOrMany[IncomingLetterWhereInput]    `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID           *UUIDFilter                            `json:"id,omitempty"`
	Subject      *StringFilter                          `json:"subject,omitempty"`
	Sender       *StringFilter                          `json:"sender,omitempty"`
	ReceivedDate *DateTimeFilter                        `json:"receivedDate,omitempty"`
	Priority     *EqualityFilter[domain.LetterPriority] `json:"priority,omitempty"`
	Status       *EqualityFilter[domain.LetterStatus]   `json:"status,omitempty"`
	FileURL      *StringFilter                          `json:"fileUrl,omitempty"`
	FileName     *StringFilter                          `json:"fileName,omitempty"`
	ProjectID    *UUIDFilter                            `json:"projectId,omitempty"`
	Project      *RelationFilter[ProjectWhereInput]     `json:"project,omitempty"`
}

func (w IncomingLetterWhereInput) filter() *conds {
	c := newConds(incomingLettersTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.Subject.sqlizer(c.col("subject")))
	c.add(w.Sender.sqlizer(c.col("sender")))
	c.add(w.ReceivedDate.sqlizer(c.col("received_date")))
	c.add(w.Priority.sqlizer(c.col("priority")))
	c.add(w.Status.sqlizer(c.col("status")))
	c.add(w.FileURL.sqlizer(c.col("file_url")))
	c.add(w.FileName.sqlizer(c.col("file_name")))
	c.add(w.ProjectID.sqlizer(c.col("project_id")))
	c.add(toOne(w.Project, parentOf(incomingLettersTable, projectsTable, "project_id"))...)
	return c
}

func (w IncomingLetterWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// IncomingLetterWhereUniqueInput selects one incomingLetter by id. The other filters
// narrow the match further.
type IncomingLetterWhereUniqueInput struct {
	ID *UUID `json:"id,omitempty"`
	IncomingLetterWhereInput
}

func (w IncomingLetterWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id", w.ID != nil
}

func (w IncomingLetterWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.IncomingLetterWhereInput.filter()
	eqValue(c, "id", w.ID)
	return c.ToSql()
}

type IncomingLetterOrderByInput struct {
	ID           *Sort                `json:"id,omitempty"`
	Subject      *Sort                `json:"subject,omitempty"`
	Sender       *Sort                `json:"sender,omitempty"`
	ReceivedDate *Sort                `json:"receivedDate,omitempty"`
	Priority     *Sort                `json:"priority,omitempty"`
	Status       *Sort                `json:"status,omitempty"`
	FileURL      *Sort                `json:"fileUrl,omitempty"`
	FileName     *Sort                `json:"fileName,omitempty"`
	ProjectID    *Sort                `json:"projectId,omitempty"`
	Project      *ProjectOrderByInput `json:"project,omitempty"`
}

func (o IncomingLetterOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(incomingLettersTable, wrap)
	t.add("id", o.ID)
	t.add("subject", o.Subject)
	t.add("sender", o.Sender)
	t.add("received_date", o.ReceivedDate)
	t.add("priority", o.Priority)
	t.add("status", o.Status)
	t.add("file_url", o.FileURL)
	t.add("file_name", o.FileName)
	t.add("project_id", o.ProjectID)
	if o.Project != nil {
		t.out = append(t.out, o.Project.orderTerms(t.via(parentOf(incomingLettersTable, projectsTable, "project_id")))...)
	}
	return t.out
}

// IncomingLetterData holds the scalar fields of a new incomingLetter. It is the payload of
// nested creates under a project.
type IncomingLetterData struct {
	ID           *UUID                  `json:"id,omitempty"`
	Subject      *string                `json:"subject" validate:"required"`
	Sender       *string                `json:"sender" validate:"required"`
	ReceivedDate *DateTime              `json:"receivedDate" validate:"required"`
	Priority     *domain.LetterPriority `json:"priority" validate:"required,enum"`
	Status       *domain.LetterStatus   `json:"status" validate:"required,enum"`
	FileURL      *string                `json:"fileUrl" validate:"required"`
	FileName     *string                `json:"fileName" validate:"required"`
}

func (d IncomingLetterData) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", d.ID)
	setValue(v, "subject", d.Subject)
	setValue(v, "sender", d.Sender)
	setValue(v, "received_date", d.ReceivedDate)
	setValue(v, "priority", d.Priority)
	setValue(v, "status", d.Status)
	setValue(v, "file_url", d.FileURL)
	setValue(v, "file_name", d.FileName)
	return v
}

// IncomingLetterCreateInput is IncomingLetterData linked to its project, either through the
// project relation or through projectId, never both.
type IncomingLetterCreateInput struct {
	IncomingLetterData
	ProjectID *UUID                                                         `json:"projectId,omitempty"`
	Project   *NestedCreateOne[ProjectCreateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in IncomingLetterCreateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in IncomingLetterCreateInput) write() Write {
	w := Write{Values: in.values()}
	connect, others := in.Project.parent()
	linkProject(&w, in.ProjectID, connect, others)
	return w
}

type IncomingLetterUpdateData struct {
	ID           *Set[UUID]                  `json:"id,omitempty"`
	Subject      *Set[string]                `json:"subject,omitempty"`
	Sender       *Set[string]                `json:"sender,omitempty"`
	ReceivedDate *Set[DateTime]              `json:"receivedDate,omitempty"`
	Priority     *Set[domain.LetterPriority] `json:"priority,omitempty"`
	Status       *Set[domain.LetterStatus]   `json:"status,omitempty"`
	FileURL      *Set[string]                `json:"fileUrl,omitempty"`
	FileName     *Set[string]                `json:"fileName,omitempty"`
}

func (d IncomingLetterUpdateData) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assign(v, "subject", d.Subject)
	assign(v, "sender", d.Sender)
	assign(v, "received_date", d.ReceivedDate)
	assign(v, "priority", d.Priority)
	assign(v, "status", d.Status)
	assign(v, "file_url", d.FileURL)
	assign(v, "file_name", d.FileName)
	return v
}

func (d IncomingLetterUpdateData) write() Write { return Write{Values: d.values()} }

type IncomingLetterUpdateInput struct {
	IncomingLetterUpdateData
	ProjectID *Set[UUID]                                                                        `json:"projectId,omitempty"`
	Project   *NestedUpdateOne[ProjectCreateInput, ProjectUpdateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in IncomingLetterUpdateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in IncomingLetterUpdateInput) write() Write {
	w := in.IncomingLetterUpdateData.write()
	var id *UUID
	if in.ProjectID != nil {
		id = in.ProjectID.Value
	}
	connect, others := in.Project.parent()
	linkProject(&w, id, connect, others)
	return w
}

// IncomingLetterScalarWhereWithAggregatesInput is the having clause of incomingLetter groupBy.
type IncomingLetterScalarWhereWithAggregatesInput struct {
	AND          OneOrMany[IncomingLetterScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR           OneOrMany[IncomingLetterScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT          OneOrMany[IncomingLetterScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID           *EqualityAggFilter[UUID]                                `json:"id,omitempty"`
	Subject      *StringAggFilter                                        `json:"subject,omitempty"`
	Sender       *StringAggFilter                                        `json:"sender,omitempty"`
	ReceivedDate *DateTimeAggFilter                                      `json:"receivedDate,omitempty"`
	Priority     *EqualityAggFilter[domain.LetterPriority]               `json:"priority,omitempty"`
	Status       *EqualityAggFilter[domain.LetterStatus]                 `json:"status,omitempty"`
	FileURL      *StringAggFilter                                        `json:"fileUrl,omitempty"`
	FileName     *StringAggFilter                                        `json:"fileName,omitempty"`
	ProjectID    *EqualityAggFilter[UUID]                                `json:"projectId,omitempty"`
}

func (w IncomingLetterScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(incomingLettersTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.Subject.havingSqlizer(c.col("subject")))
	c.add(w.Sender.havingSqlizer(c.col("sender")))
	c.add(w.ReceivedDate.havingSqlizer(c.col("received_date")))
	c.add(w.Priority.havingSqlizer(c.col("priority")))
	c.add(w.Status.havingSqlizer(c.col("status")))
	c.add(w.FileURL.havingSqlizer(c.col("file_url")))
	c.add(w.FileName.havingSqlizer(c.col("file_name")))
	c.add(w.ProjectID.havingSqlizer(c.col("project_id")))
	return c.ToSql()
}
