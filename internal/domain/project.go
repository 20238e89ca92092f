package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is the root aggregate. Everything else hangs off a project.
type Project struct {
	ID          uuid.UUID `json:"id"          db:"id"`
	ProjectName string    `json:"projectName" db:"project_name"`
	ClientName  string    `json:"clientName"  db:"client_name"`
	Location    string    `json:"location"    db:"location"`
	StartDate   time.Time `json:"startDate"   db:"start_date"`
	EndDate     time.Time `json:"endDate"     db:"end_date"`
	CreatedAt   time.Time `json:"createdAt"   db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt"   db:"updated_at"`
}

// Budget is the one-to-one money summary of a project.
// No bound is placed on Total or Spent.
type Budget struct {
	ID        uuid.UUID `json:"id"        db:"id"`
	Total     float64   `json:"total"     db:"total"`
	Spent     float64   `json:"spent"     db:"spent"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id"`
}

// Team is the one-to-one staffing summary of a project.
type Team struct {
	ID             uuid.UUID `json:"id"             db:"id"`
	ProjectManager string    `json:"projectManager" db:"project_manager"`
	SiteManager    string    `json:"siteManager"    db:"site_manager"`
	TotalWorkers   int       `json:"totalWorkers"   db:"total_workers"`
	ProjectID      uuid.UUID `json:"projectId"      db:"project_id"`
}

// Milestone is a dated checkpoint within a project.
type Milestone struct {
	ID        uuid.UUID       `json:"id"        db:"id"`
	Name      string          `json:"name"      db:"name"`
	Date      time.Time       `json:"date"      db:"date"`
	Status    MilestoneStatus `json:"status"    db:"status"`
	ProjectID uuid.UUID       `json:"projectId" db:"project_id"`
}

// ChecklistItem is a task within a project. MilestoneID is informational
// and is not enforced as a foreign key.
type ChecklistItem struct {
	ID          uuid.UUID         `json:"id"          db:"id"`
	Task        string            `json:"task"        db:"task"`
	MilestoneID uuid.UUID         `json:"milestoneId" db:"milestone_id"`
	Status      ChecklistStatus   `json:"status"      db:"status"`
	Priority    ChecklistPriority `json:"priority"    db:"priority"`
	ProjectID   uuid.UUID         `json:"projectId"   db:"project_id"`
}
