//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/sitebook-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/sitebook-backend/internal/domain"
)

func TestE2E_Records_ProjectLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := createTestUserAndGetToken(t, ts)
	name := "Harbour " + uuid.NewString()[:8]

	// Create with nested children.
	status, body := ts.op(t, token, "project", "create", `{"data":{
		"projectName":"`+name+`","clientName":"Port Authority","location":"Docklands",
		"startDate":"2025-01-01","endDate":"2026-06-30",
		"budget":{"create":{"total":1000,"spent":250}},
		"milestones":{"create":[
			{"name":"Piling","date":"2025-03-01","status":"ontrack"},
			{"name":"Deck","date":"2025-09-01","status":"atrisk"}
		]}
	}}`)
	require.Equal(t, http.StatusOK, status, "body: %v", body)
	project := dataMap(t, body)
	projectID, ok := project["id"].(string)
	require.True(t, ok)
	assert.Equal(t, name, project["projectName"])

	// Read back.
	byProject := `{"where":{"projectId":"` + projectID + `"},"orderBy":{"date":"asc"}}`
	status, body = ts.op(t, token, "milestone", "findMany", byProject)
	require.Equal(t, http.StatusOK, status, "body: %v", body)
	milestones := dataList(t, body)
	require.Len(t, milestones, 2)
	assert.Equal(t, "Piling", milestones[0]["name"])

	// Update through the unique key.
	status, body = ts.op(t, token, "budget", "update",
		`{"where":{"projectId":"`+projectID+`"},"data":{"spent":{"increment":50}}}`)
	require.Equal(t, http.StatusOK, status, "body: %v", body)
	assert.InDelta(t, 300.0, dataMap(t, body)["spent"], 0.001)

	// Delete cascades to children.
	status, body = ts.op(t, token, "project", "delete", `{"where":{"id":"`+projectID+`"}}`)
	require.Equal(t, http.StatusOK, status, "body: %v", body)

	status, body = ts.op(t, token, "milestone", "count", `{"where":{"projectId":"`+projectID+`"}}`)
	require.Equal(t, http.StatusOK, status, "body: %v", body)
	assert.Equal(t, float64(0), body["data"])

	status, body = ts.op(t, token, "project", "findUnique", `{"where":{"id":"`+projectID+`"}}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

func TestE2E_Records_AggregateAndGroupBy(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := createTestUserAndGetToken(t, ts)
	project := testhelper.SeedProject(t, ts.Pool)
	testhelper.SeedBudget(t, ts.Pool, project.ID, 500, 125)
	testhelper.SeedMilestone(t, ts.Pool, project.ID, "Foundation", domain.MilestoneStatusOnTrack, 10)
	testhelper.SeedMilestone(t, ts.Pool, project.ID, "Frame", domain.MilestoneStatusOnTrack, 20)
	testhelper.SeedMilestone(t, ts.Pool, project.ID, "Roof", domain.MilestoneStatusAtRisk, 30)

	status, body := ts.op(t, token, "budget", "aggregate",
		`{"where":{"projectId":"`+project.ID.String()+`"},"_sum":{"total":true,"spent":true},"_count":true}`)
	require.Equal(t, http.StatusOK, status, "body: %v", body)
	agg := dataMap(t, body)
	assert.Equal(t, map[string]any{"total": 500.0, "spent": 125.0}, agg["_sum"])
	assert.Equal(t, map[string]any{"_all": 1.0}, agg["_count"])

	status, body = ts.op(t, token, "milestone", "groupBy",
		`{"where":{"projectId":"`+project.ID.String()+`"},"by":["status"],"_count":{"_all":true},"orderBy":{"status":"desc"}}`)
	require.Equal(t, http.StatusOK, status, "body: %v", body)
	groups := dataList(t, body)
	require.Len(t, groups, 2)
	assert.Equal(t, "ontrack", groups[0]["status"])
	assert.Equal(t, map[string]any{"_all": 2.0}, groups[0]["_count"])
}

func TestE2E_Records_ValidationErrors(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := createTestUserAndGetToken(t, ts)

	status, body := ts.op(t, token, "milestone", "findMany", `{"where":{"status":"late"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION", errorCode(t, body))

	status, body = ts.op(t, token, "invoice", "findMany", `{}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))

	// Dry-run validation never touches the database.
	status, body = ts.post(t, "/api/validate/project/create", `{"data":{"projectName":"X"}}`, token)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION", errorCode(t, body))

	status, body = ts.post(t, "/api/validate/team/findMany", `{"take":2}`, token)
	assert.Equal(t, http.StatusOK, status, "body: %v", body)
}

func TestE2E_Records_UniqueViolation(t *testing.T) {
	ts := setupTestServer(t)
	token, user := createTestUserAndGetToken(t, ts)

	status, body := ts.op(t, token, "user", "create",
		`{"data":{"name":"Dup","email":"`+user.Email+`","password":"another-secret"}}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ALREADY_EXISTS", errorCode(t, body))
}
