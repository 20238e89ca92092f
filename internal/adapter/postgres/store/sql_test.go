package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/sitebook-backend/internal/domain"
	"github.com/heartmarshall/sitebook-backend/internal/schema"
)

func newProjectStore() *Store[domain.Project] {
	return New[domain.Project](nil, nil, schema.ModelProject, "projects")
}

func ptr[T any](v T) *T { return &v }

func TestReverseTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		term string
		want string
	}{
		{"projects.id ASC", "projects.id DESC"},
		{"projects.id DESC", "projects.id ASC"},
		{"projects.end_date ASC NULLS FIRST", "projects.end_date DESC NULLS LAST"},
		{"projects.end_date DESC NULLS LAST", "projects.end_date ASC NULLS FIRST"},
		{"(SELECT COUNT(*) FROM milestones WHERE milestones.project_id = projects.id) DESC", "(SELECT COUNT(*) FROM milestones WHERE milestones.project_id = projects.id) ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, reverseTerm(tt.term))
			assert.Equal(t, tt.term, reverseTerm(reverseTerm(tt.term)))
		})
	}
}

func TestRows_SQL(t *testing.T) {
	t.Parallel()

	s := newProjectStore()

	tests := []struct {
		name     string
		w        window
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "plain",
			w:       window{order: s.defaultOrder()},
			wantSQL: "SELECT projects.* FROM projects ORDER BY projects.id ASC",
		},
		{
			name: "where and page",
			w: window{
				where:  sq.Expr("projects.location = ?", "Riverside"),
				order:  []string{"projects.start_date DESC"},
				limit:  ptr(uint64(10)),
				offset: 5,
			},
			wantSQL:  "SELECT projects.* FROM projects WHERE projects.location = $1 ORDER BY projects.start_date DESC LIMIT 10 OFFSET 5",
			wantArgs: []any{"Riverside"},
		},
		{
			name: "distinct",
			w: window{
				order:    s.defaultOrder(),
				distinct: []string{"projects.client_name"},
				limit:    ptr(uint64(3)),
			},
			wantSQL: "SELECT * FROM (SELECT DISTINCT ON (projects.client_name) projects.* FROM projects " +
				"ORDER BY projects.client_name, projects.id ASC) AS projects ORDER BY projects.id ASC LIMIT 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args, err := s.rows(tt.w).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestAggregateColumns(t *testing.T) {
	t.Parallel()

	cols := aggregateColumns(schema.Aggregation{
		Count: []schema.Selected{{Field: "_all", Expr: "COUNT(*)"}},
		Avg:   []schema.Selected{{Field: "total", Expr: "AVG(budgets.total)::float8"}},
		Max:   []schema.Selected{{Field: "spent", Expr: "MAX(budgets.spent)"}},
	})

	assert.Equal(t, []string{
		`COUNT(*) AS "_count._all"`,
		`AVG(budgets.total)::float8 AS "_avg.total"`,
		`MAX(budgets.spent) AS "_max.spent"`,
	}, cols)
}

func TestReshape(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	got := reshape(map[string]any{
		"status":            "ontrack",
		"projectId":         [16]byte(id),
		"_count._all":       int64(4),
		"_count.name":       int64(3),
		"_max.projectId":    [16]byte(id),
		"_avg.totalWorkers": nil,
	})

	assert.Equal(t, map[string]any{
		"status":    "ontrack",
		"projectId": id,
		"_count":    map[string]any{"_all": int64(4), "name": int64(3)},
		"_max":      map[string]any{"projectId": id},
		"_avg":      map[string]any{"totalWorkers": nil},
	}, got)
}

func TestUnsupported(t *testing.T) {
	t.Parallel()

	assert.NoError(t, unsupported("data", schema.Write{}))

	err := unsupported("update", schema.Write{Nested: []string{"team.disconnect", "reports.deleteMany"}})
	require.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []domain.FieldError{
		{Field: "update.team", Message: "nested disconnect is not supported"},
		{Field: "update.reports", Message: "nested deleteMany is not supported"},
	}, ve.Errors)
}
