package domain

// MilestoneStatus tracks whether a milestone is expected to be met.
type MilestoneStatus string

const (
	MilestoneStatusOnTrack MilestoneStatus = "ontrack"
	MilestoneStatusAtRisk  MilestoneStatus = "atrisk"
)

func (s MilestoneStatus) String() string { return string(s) }

func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestoneStatusOnTrack, MilestoneStatusAtRisk:
		return true
	}
	return false
}

// ChecklistStatus is the progress of a checklist item.
type ChecklistStatus string

const (
	ChecklistStatusPending    ChecklistStatus = "pending"
	ChecklistStatusInProgress ChecklistStatus = "inprogress"
	ChecklistStatusCompleted  ChecklistStatus = "completed"
)

func (s ChecklistStatus) String() string { return string(s) }

func (s ChecklistStatus) IsValid() bool {
	switch s {
	case ChecklistStatusPending, ChecklistStatusInProgress, ChecklistStatusCompleted:
		return true
	}
	return false
}

// ChecklistPriority ranks checklist items.
type ChecklistPriority string

const (
	ChecklistPriorityLow    ChecklistPriority = "low"
	ChecklistPriorityMedium ChecklistPriority = "medium"
	ChecklistPriorityHigh   ChecklistPriority = "high"
)

func (p ChecklistPriority) String() string { return string(p) }

func (p ChecklistPriority) IsValid() bool {
	switch p {
	case ChecklistPriorityLow, ChecklistPriorityMedium, ChecklistPriorityHigh:
		return true
	}
	return false
}

// LetterPriority applies to both incoming and outgoing correspondence.
type LetterPriority string

const (
	LetterPriorityLow    LetterPriority = "low"
	LetterPriorityNormal LetterPriority = "normal"
	LetterPriorityHigh   LetterPriority = "high"
	LetterPriorityUrgent LetterPriority = "urgent"
)

func (p LetterPriority) String() string { return string(p) }

func (p LetterPriority) IsValid() bool {
	switch p {
	case LetterPriorityLow, LetterPriorityNormal, LetterPriorityHigh, LetterPriorityUrgent:
		return true
	}
	return false
}

// LetterStatus is the delivery state of a letter.
type LetterStatus string

const (
	LetterStatusDraft     LetterStatus = "draft"
	LetterStatusSent      LetterStatus = "sent"
	LetterStatusReceived  LetterStatus = "received"
	LetterStatusResponded LetterStatus = "responded"
)

func (s LetterStatus) String() string { return string(s) }

func (s LetterStatus) IsValid() bool {
	switch s {
	case LetterStatusDraft, LetterStatusSent, LetterStatusReceived, LetterStatusResponded:
		return true
	}
	return false
}

// ReportType classifies site reports.
type ReportType string

const (
	ReportTypeDaily      ReportType = "daily"
	ReportTypeWeekly     ReportType = "weekly"
	ReportTypeMonthly    ReportType = "monthly"
	ReportTypeIncident   ReportType = "incident"
	ReportTypeInspection ReportType = "inspection"
)

func (t ReportType) String() string { return string(t) }

func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeDaily, ReportTypeWeekly, ReportTypeMonthly, ReportTypeIncident, ReportTypeInspection:
		return true
	}
	return false
}

// ReportStatus is the review state of a report.
type ReportStatus string

const (
	ReportStatusDraft     ReportStatus = "draft"
	ReportStatusSubmitted ReportStatus = "submitted"
	ReportStatusApproved  ReportStatus = "approved"
	ReportStatusRejected  ReportStatus = "rejected"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft, ReportStatusSubmitted, ReportStatusApproved, ReportStatusRejected:
		return true
	}
	return false
}

// ImageCategory groups site photographs.
type ImageCategory string

const (
	ImageCategoryProgress ImageCategory = "progress"
	ImageCategorySafety   ImageCategory = "safety"
	ImageCategoryQuality  ImageCategory = "quality"
	ImageCategoryIssue    ImageCategory = "issue"
	ImageCategoryOther    ImageCategory = "other"
)

func (c ImageCategory) String() string { return string(c) }

func (c ImageCategory) IsValid() bool {
	switch c {
	case ImageCategoryProgress, ImageCategorySafety, ImageCategoryQuality, ImageCategoryIssue, ImageCategoryOther:
		return true
	}
	return false
}

// SortOrder is the direction of an ORDER BY term.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	switch o {
	case SortOrderAsc, SortOrderDesc:
		return true
	}
	return false
}

// NullsOrder places NULLs before or after other values.
type NullsOrder string

const (
	NullsOrderFirst NullsOrder = "first"
	NullsOrderLast  NullsOrder = "last"
)

func (o NullsOrder) String() string { return string(o) }

func (o NullsOrder) IsValid() bool {
	switch o {
	case NullsOrderFirst, NullsOrderLast:
		return true
	}
	return false
}

// QueryMode selects case sensitivity for string filters.
type QueryMode string

const (
	QueryModeDefault     QueryMode = "default"
	QueryModeInsensitive QueryMode = "insensitive"
)

func (m QueryMode) String() string { return string(m) }

func (m QueryMode) IsValid() bool {
	switch m {
	case QueryModeDefault, QueryModeInsensitive:
		return true
	}
	return false
}
