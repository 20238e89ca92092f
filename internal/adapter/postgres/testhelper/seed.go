package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

// SeedPassword is the plain-text password of every seeded user.
const SeedPassword = "correct-horse-battery"

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user whose password is SeedPassword, stored as a bcrypt hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("testhelper: SeedUser hash password: %v", err)
	}

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: string(hash),
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedProject creates a project with a unique name that started a month ago
// and ends in a year.
func SeedProject(t *testing.T, pool *pgxpool.Pool) domain.Project {
	t.Helper()

	ts := now()
	p := domain.Project{
		ID:          uuid.New(),
		ProjectName: "Project " + uniqueSuffix(),
		ClientName:  "Acme Construction",
		Location:    "Riverside",
		StartDate:   ts.AddDate(0, -1, 0),
		EndDate:     ts.AddDate(1, 0, 0),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, project_name, client_name, location, start_date, end_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.ProjectName, p.ClientName, p.Location, p.StartDate, p.EndDate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject insert: %v", err)
	}

	return p
}

// SeedBudget attaches a budget to the project.
func SeedBudget(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, total, spent float64) domain.Budget {
	t.Helper()

	b := domain.Budget{ID: uuid.New(), Total: total, Spent: spent, ProjectID: projectID}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO budgets (id, total, spent, project_id) VALUES ($1, $2, $3, $4)`,
		b.ID, b.Total, b.Spent, b.ProjectID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBudget insert: %v", err)
	}

	return b
}

// SeedMilestone adds a milestone due in the given number of days.
func SeedMilestone(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, name string, status domain.MilestoneStatus, inDays int) domain.Milestone {
	t.Helper()

	m := domain.Milestone{
		ID:        uuid.New(),
		Name:      name,
		Date:      now().AddDate(0, 0, inDays),
		Status:    status,
		ProjectID: projectID,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO milestones (id, name, date, status, project_id) VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.Name, m.Date, string(m.Status), m.ProjectID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMilestone insert: %v", err)
	}

	return m
}
