package schema

import "github.com/heartmarshall/sitebook-backend/internal/domain"

// OutgoingLetterScalarField names a OutgoingLetter field in distinct, groupBy and aggregate
// selections.
type OutgoingLetterScalarField string

const (
	OutgoingLetterFieldID        OutgoingLetterScalarField = "id"
	OutgoingLetterFieldSubject   OutgoingLetterScalarField = "subject"
	OutgoingLetterFieldRecipient OutgoingLetterScalarField = "recipient"
	OutgoingLetterFieldSentDate  OutgoingLetterScalarField = "sentDate"
	OutgoingLetterFieldPriority  OutgoingLetterScalarField = "priority"
	OutgoingLetterFieldStatus    OutgoingLetterScalarField = "status"
	OutgoingLetterFieldFileURL   OutgoingLetterScalarField = "fileUrl"
	OutgoingLetterFieldFileName  OutgoingLetterScalarField = "fileName"
	OutgoingLetterFieldProjectID OutgoingLetterScalarField = "projectId"
)

var outgoingLetterColumns = map[OutgoingLetterScalarField]string{
	OutgoingLetterFieldID:        "outgoing_letters.id",
	OutgoingLetterFieldSubject:   "outgoing_letters.subject",
	OutgoingLetterFieldRecipient: "outgoing_letters.recipient",
	OutgoingLetterFieldSentDate:  "outgoing_letters.sent_date",
	OutgoingLetterFieldPriority:  "outgoing_letters.priority",
	OutgoingLetterFieldStatus:    "outgoing_letters.status",
	OutgoingLetterFieldFileURL:   "outgoing_letters.file_url",
	OutgoingLetterFieldFileName:  "outgoing_letters.file_name",
	OutgoingLetterFieldProjectID: "outgoing_letters.project_id",
}

func (f OutgoingLetterScalarField) IsValid() bool {
	_, ok := outgoingLetterColumns[f]
	return ok
}

func (f OutgoingLetterScalarField) Column() string { return outgoingLetterColumns[f] }

// OutgoingLetterWhereInput filters outgoingLetter rows. AND, OR and NOT nest to any depth.
type OutgoingLetterWhereInput struct {
	AND       OneOrMany[OutgoingLetterWhereInput]    `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        OneOrMany[OutgoingLetterWhereInput]    `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       OneOrMany[OutgoingLetterWhereInput]    `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        *UUIDFilter                            `json:"id,omitempty"`
	Subject   *StringFilter                          `json:"subject,omitempty"`
	Recipient *StringFilter                          `json:"recipient,omitempty"`
	SentDate  *DateTimeFilter                        `json:"sentDate,omitempty"`
	Priority  *EqualityFilter[domain.LetterPriority] `json:"priority,omitempty"`
	Status    *EqualityFilter[domain.LetterStatus]   `json:"status,omitempty"`
	FileURL   *StringFilter                          `json:"fileUrl,omitempty"`
	FileName  *StringFilter                          `json:"fileName,omitempty"`
	ProjectID *UUIDFilter                            `json:"projectId,omitempty"`
	Project   *RelationFilter[ProjectWhereInput]     `json:"project,omitempty"`
}

func (w OutgoingLetterWhereInput) filter() *conds {
	c := newConds(outgoingLettersTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.sqlizer(c.col("id")))
	c.add(w.Subject.sqlizer(c.col("subject")))
	c.add(w.Recipient.sqlizer(c.col("recipient")))
	c.add(w.SentDate.sqlizer(c.col("sent_date")))
	c.add(w.Priority.sqlizer(c.col("priority")))
	c.add(w.Status.sqlizer(c.col("status")))
	c.add(w.FileURL.sqlizer(c.col("file_url")))
	c.add(w.FileName.sqlizer(c.col("file_name")))
	c.add(w.ProjectID.sqlizer(c.col("project_id")))
	c.add(toOne(w.Project, parentOf(outgoingLettersTable, projectsTable, "project_id"))...)
	return c
}

func (w OutgoingLetterWhereInput) ToSql() (string, []any, error) {
	return w.filter().ToSql()
}

// OutgoingLetterWhereUniqueInput selects one outgoingLetter by id. The other filters
// narrow the match further.
type OutgoingLetterWhereUniqueInput struct {
	ID *UUID `json:"id,omitempty"`
	OutgoingLetterWhereInput
}

func (w OutgoingLetterWhereUniqueInput) uniqueKeys() (string, bool) {
	return "id", w.ID != nil
}

func (w OutgoingLetterWhereUniqueInput) ToSql() (string, []any, error) {
	c := w.OutgoingLetterWhereInput.filter()
	eqValue(c, "id", w.ID)
	return c.ToSql()
}

type OutgoingLetterOrderByInput struct {
	ID        *Sort                `json:"id,omitempty"`
	Subject   *Sort                `json:"subject,omitempty"`
	Recipient *Sort                `json:"recipient,omitempty"`
	SentDate  *Sort                `json:"sentDate,omitempty"`
	Priority  *Sort                `json:"priority,omitempty"`
	Status    *Sort                `json:"status,omitempty"`
	FileURL   *Sort                `json:"fileUrl,omitempty"`
	FileName  *Sort                `json:"fileName,omitempty"`
	ProjectID *Sort                `json:"projectId,omitempty"`
	Project   *ProjectOrderByInput `json:"project,omitempty"`
}

func (o OutgoingLetterOrderByInput) orderTerms(wrap func(string) string) []string {
	t := newTerms(outgoingLettersTable, wrap)
	t.add("id", o.ID)
	t.add("subject", o.Subject)
	t.add("recipient", o.Recipient)
	t.add("sent_date", o.SentDate)
	t.add("priority", o.Priority)
	t.add("status", o.Status)
	t.add("file_url", o.FileURL)
	t.add("file_name", o.FileName)
	t.add("project_id", o.ProjectID)
	if o.Project != nil {
		t.out = append(t.out, o.Project.orderTerms(t.via(parentOf(outgoingLettersTable, projectsTable, "project_id")))...)
	}
	return t.out
}

// OutgoingLetterData holds the scalar fields of a new outgoingLetter. It is the payload of
// nested creates under a project.
type OutgoingLetterData struct {
	ID        *UUID                  `json:"id,omitempty"`
	Subject   *string                `json:"subject" validate:"required"`
	Recipient *string                `json:"recipient" validate:"required"`
	SentDate  *DateTime              `json:"sentDate" validate:"required"`
	Priority  *domain.LetterPriority `json:"priority" validate:"required,enum"`
	Status    *domain.LetterStatus   `json:"status" validate:"required,enum"`
	FileURL   *string                `json:"fileUrl" validate:"required"`
	FileName  *string                `json:"fileName" validate:"required"`
}

func (d OutgoingLetterData) values() map[string]any {
	v := make(map[string]any)
	setValue(v, "id", d.ID)
	setValue(v, "subject", d.Subject)
	setValue(v, "recipient", d.Recipient)
	setValue(v, "sent_date", d.SentDate)
	setValue(v, "priority", d.Priority)
	setValue(v, "status", d.Status)
	setValue(v, "file_url", d.FileURL)
	setValue(v, "file_name", d.FileName)
	return v
}

// OutgoingLetterCreateInput is OutgoingLetterData linked to its project, either through the
// project relation or through projectId, never both.
type OutgoingLetterCreateInput struct {
	OutgoingLetterData
	ProjectID *UUID                                                         `json:"projectId,omitempty"`
	Project   *NestedCreateOne[ProjectCreateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in OutgoingLetterCreateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in OutgoingLetterCreateInput) write() Write {
	w := Write{Values: in.values()}
	connect, others := in.Project.parent()
	linkProject(&w, in.ProjectID, connect, others)
	return w
}

type OutgoingLetterUpdateData struct {
	ID        *Set[UUID]                  `json:"id,omitempty"`
	Subject   *Set[string]                `json:"subject,omitempty"`
	Recipient *Set[string]                `json:"recipient,omitempty"`
	SentDate  *Set[DateTime]              `json:"sentDate,omitempty"`
	Priority  *Set[domain.LetterPriority] `json:"priority,omitempty"`
	Status    *Set[domain.LetterStatus]   `json:"status,omitempty"`
	FileURL   *Set[string]                `json:"fileUrl,omitempty"`
	FileName  *Set[string]                `json:"fileName,omitempty"`
}

func (d OutgoingLetterUpdateData) values() map[string]any {
	v := make(map[string]any)
	assign(v, "id", d.ID)
	assign(v, "subject", d.Subject)
	assign(v, "recipient", d.Recipient)
	assign(v, "sent_date", d.SentDate)
	assign(v, "priority", d.Priority)
	assign(v, "status", d.Status)
	assign(v, "file_url", d.FileURL)
	assign(v, "file_name", d.FileName)
	return v
}

func (d OutgoingLetterUpdateData) write() Write { return Write{Values: d.values()} }

type OutgoingLetterUpdateInput struct {
	OutgoingLetterUpdateData
	ProjectID *Set[UUID]                                                                        `json:"projectId,omitempty"`
	Project   *NestedUpdateOne[ProjectCreateInput, ProjectUpdateInput, ProjectWhereUniqueInput] `json:"project,omitempty"`
}

func (in OutgoingLetterUpdateInput) links() int {
	return count(in.ProjectID != nil, in.Project != nil)
}

func (in OutgoingLetterUpdateInput) write() Write {
	w := in.OutgoingLetterUpdateData.write()
	var id *UUID
	if in.ProjectID != nil {
		id = in.ProjectID.Value
	}
	connect, others := in.Project.parent()
	linkProject(&w, id, connect, others)
	return w
}

// OutgoingLetterScalarWhereWithAggregatesInput is the having clause of outgoingLetter groupBy.
type OutgoingLetterScalarWhereWithAggregatesInput struct {
	AND       OneOrMany[OutgoingLetterScalarWhereWithAggregatesInput] `json:"AND,omitempty" validate:"omitempty,dive"`
	OR        OneOrMany[OutgoingLetterScalarWhereWithAggregatesInput] `json:"OR,omitempty" validate:"omitempty,dive"`
	NOT       OneOrMany[OutgoingLetterScalarWhereWithAggregatesInput] `json:"NOT,omitempty" validate:"omitempty,dive"`
	ID        *EqualityAggFilter[UUID]                                `json:"id,omitempty"`
	Subject   *StringAggFilter                                        `json:"subject,omitempty"`
	Recipient *StringAggFilter                                        `json:"recipient,omitempty"`
	SentDate  *DateTimeAggFilter                                      `json:"sentDate,omitempty"`
	Priority  *EqualityAggFilter[domain.LetterPriority]               `json:"priority,omitempty"`
	Status    *EqualityAggFilter[domain.LetterStatus]                 `json:"status,omitempty"`
	FileURL   *StringAggFilter                                        `json:"fileUrl,omitempty"`
	FileName  *StringAggFilter                                        `json:"fileName,omitempty"`
	ProjectID *EqualityAggFilter[UUID]                                `json:"projectId,omitempty"`
}

func (w OutgoingLetterScalarWhereWithAggregatesInput) ToSql() (string, []any, error) {
	c := newConds(outgoingLettersTable)
	c.add(logical(w.AND, w.OR, w.NOT)...)
	c.add(w.ID.havingSqlizer(c.col("id")))
	c.add(w.Subject.havingSqlizer(c.col("subject")))
	c.add(w.Recipient.havingSqlizer(c.col("recipient")))
	c.add(w.SentDate.havingSqlizer(c.col("sent_date")))
	c.add(w.Priority.havingSqlizer(c.col("priority")))
	c.add(w.Status.havingSqlizer(c.col("status")))
	c.add(w.FileURL.havingSqlizer(c.col("file_url")))
	c.add(w.FileName.havingSqlizer(c.col("file_name")))
	c.add(w.ProjectID.havingSqlizer(c.col("project_id")))
	return c.ToSql()
}
