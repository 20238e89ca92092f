package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded project file.
type Document struct {
	ID         uuid.UUID `json:"id"         db:"id"`
	FileURL    string    `json:"fileUrl"    db:"file_url"`
	FileName   string    `json:"fileName"   db:"file_name"`
	UploadDate time.Time `json:"uploadDate" db:"upload_date"`
	ProjectID  uuid.UUID `json:"projectId"  db:"project_id"`
}

// SiteImage is a categorised photograph taken on site.
type SiteImage struct {
	ID         uuid.UUID     `json:"id"         db:"id"`
	ImageURL   string        `json:"imageUrl"   db:"image_url"`
	FileName   string        `json:"fileName"   db:"file_name"`
	Category   ImageCategory `json:"category"   db:"category"`
	UploadDate time.Time     `json:"uploadDate" db:"upload_date"`
	ProjectID  uuid.UUID     `json:"projectId"  db:"project_id"`
}

// OutgoingLetter is correspondence sent on behalf of a project.
type OutgoingLetter struct {
	ID        uuid.UUID      `json:"id"        db:"id"`
	Subject   string         `json:"subject"   db:"subject"`
	Recipient string         `json:"recipient" db:"recipient"`
	SentDate  time.Time      `json:"sentDate"  db:"sent_date"`
	Priority  LetterPriority `json:"priority"  db:"priority"`
	Status    LetterStatus   `json:"status"    db:"status"`
	FileURL   string         `json:"fileUrl"   db:"file_url"`
	FileName  string         `json:"fileName"  db:"file_name"`
	ProjectID uuid.UUID      `json:"projectId" db:"project_id"`
}

// IncomingLetter is correspondence received for a project.
type IncomingLetter struct {
	ID           uuid.UUID      `json:"id"           db:"id"`
	Subject      string         `json:"subject"      db:"subject"`
	Sender       string         `json:"sender"       db:"sender"`
	ReceivedDate time.Time      `json:"receivedDate" db:"received_date"`
	Priority     LetterPriority `json:"priority"     db:"priority"`
	Status       LetterStatus   `json:"status"       db:"status"`
	FileURL      string         `json:"fileUrl"      db:"file_url"`
	FileName     string         `json:"fileName"     db:"file_name"`
	ProjectID    uuid.UUID      `json:"projectId"    db:"project_id"`
}

// Report is a periodic or incident report attached to a project.
type Report struct {
	ID         uuid.UUID    `json:"id"         db:"id"`
	Title      string       `json:"title"      db:"title"`
	ReportType ReportType   `json:"reportType" db:"report_type"`
	Status     ReportStatus `json:"status"     db:"status"`
	ReportDate time.Time    `json:"reportDate" db:"report_date"`
	FileURL    string       `json:"fileUrl"    db:"file_url"`
	FileName   string       `json:"fileName"   db:"file_name"`
	ProjectID  uuid.UUID    `json:"projectId"  db:"project_id"`
}
