package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"promo-planner/internal/config"
	"promo-planner/internal/repository"
	"promo-planner/internal/seed"
	"promo-planner/internal/service"
)

const testSecret = "test-session-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := repository.NewDB(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, seed.Apply(context.Background(), db))

	clientRepo := repository.NewClientRepository(db)
	templateRepo := repository.NewTaskTemplateRepository(db)
	taskRepo := repository.NewClientTaskRepository(db)

	return New(
		service.NewClientService(clientRepo, templateRepo),
		service.NewTaskService(clientRepo, taskRepo),
		&config.Config{SessionSecret: testSecret},
	)
}

func sessionToken(t *testing.T, userID string) string {
	t.Helper()
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

type clientResponse struct {
	Client *struct {
		ID           uint   `json:"id"`
		UserID       string `json:"user_id"`
		BusinessType string `json:"business_type"`
		BusinessName string `json:"business_name"`
	} `json:"client"`
}

type tasksResponse struct {
	Tasks []taskJSON `json:"tasks"`
}

type taskUpdateResponse struct {
	Task updatedTaskJSON `json:"task"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func TestHealthNeedsNoSession(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUnauthorizedWithoutSession(t *testing.T) {
	srv := newTestServer(t)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/clients"},
		{http.MethodPost, "/api/clients"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodPut, "/api/tasks/1"},
	} {
		rec := doJSON(t, srv, tc.method, tc.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)

		var body errorResponse
		decodeBody(t, rec, &body)
		require.Equal(t, "Unauthorized", body.Error)
	}
}

func TestUnauthorizedWithBadToken(t *testing.T) {
	srv := newTestServer(t)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{UserID: "user-1"}).
		SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	rec := doJSON(t, srv, http.MethodGet, "/api/clients", forged, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetClientBeforeOnboarding(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/clients", sessionToken(t, "user-1"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body clientResponse
	decodeBody(t, rec, &body)
	require.Nil(t, body.Client)
}

func TestCreateClientBadRequest(t *testing.T) {
	srv := newTestServer(t)
	token := sessionToken(t, "user-1")

	rec := doJSON(t, srv, http.MethodPost, "/api/clients", token, map[string]string{"business_name": "Glow Studio"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorResponse
	decodeBody(t, rec, &body)
	require.Equal(t, "business_type and business_name are required", body.Error)

	rec = doJSON(t, srv, http.MethodPost, "/api/clients", token, map[string]string{
		"business_type": "bakery", "business_name": "Glow Studio",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateClientConflict(t *testing.T) {
	srv := newTestServer(t)
	token := sessionToken(t, "user-1")
	payload := map[string]string{"business_type": "law_firm", "business_name": "Smith & Co"}

	rec := doJSON(t, srv, http.MethodPost, "/api/clients", token, payload)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/clients", token, payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorResponse
	decodeBody(t, rec, &body)
	require.Equal(t, "Client already exists for this user", body.Error)
}

func TestListTasksWithoutClient(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/tasks", sessionToken(t, "user-1"), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorResponse
	decodeBody(t, rec, &body)
	require.Equal(t, "Client not found", body.Error)
}

func TestSetTaskStatusValidation(t *testing.T) {
	srv := newTestServer(t)
	token := sessionToken(t, "user-1")

	rec := doJSON(t, srv, http.MethodPost, "/api/clients", token, map[string]string{
		"business_type": "web_designer", "business_name": "Pixel Works",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks tasksResponse
	rec = doJSON(t, srv, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &tasks)
	require.NotEmpty(t, tasks.Tasks)

	taskPath := fmt.Sprintf("/api/tasks/%d", tasks.Tasks[0].ID)
	rec = doJSON(t, srv, http.MethodPut, taskPath, token, map[string]string{"status": "done"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorResponse
	decodeBody(t, rec, &body)
	require.Equal(t, "Valid status is required (pending or completed)", body.Error)

	rec = doJSON(t, srv, http.MethodPut, "/api/tasks/not-a-number", token, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetTaskStatusOwnership(t *testing.T) {
	srv := newTestServer(t)
	ownerToken := sessionToken(t, "user-owner")
	otherToken := sessionToken(t, "user-other")

	rec := doJSON(t, srv, http.MethodPost, "/api/clients", ownerToken, map[string]string{
		"business_type": "beautician", "business_name": "Glow Studio",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, srv, http.MethodPost, "/api/clients", otherToken, map[string]string{
		"business_type": "law_firm", "business_name": "Smith & Co",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks tasksResponse
	rec = doJSON(t, srv, http.MethodGet, "/api/tasks", ownerToken, nil)
	decodeBody(t, rec, &tasks)
	require.NotEmpty(t, tasks.Tasks)

	// A non-owner gets 404, never a 403 that would leak existence.
	rec = doJSON(t, srv, http.MethodPut, fmt.Sprintf("/api/tasks/%d", tasks.Tasks[0].ID), otherToken, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body errorResponse
	decodeBody(t, rec, &body)
	require.Equal(t, "Task not found", body.Error)
}

func TestOnboardingToCompletionFlow(t *testing.T) {
	srv := newTestServer(t)
	token := sessionToken(t, "user-flow")

	rec := doJSON(t, srv, http.MethodPost, "/api/clients", token, map[string]string{
		"business_type": "beautician", "business_name": "Glow Studio",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created clientResponse
	decodeBody(t, rec, &created)
	require.NotNil(t, created.Client)
	require.Equal(t, "beautician", created.Client.BusinessType)
	require.Equal(t, "Glow Studio", created.Client.BusinessName)

	var beauticianTemplates int
	for _, tpl := range seed.Templates() {
		if string(tpl.BusinessType) == "beautician" {
			beauticianTemplates++
		}
	}

	var tasks tasksResponse
	rec = doJSON(t, srv, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &tasks)
	require.Len(t, tasks.Tasks, beauticianTemplates)
	for _, task := range tasks.Tasks {
		require.Equal(t, "pending", string(task.Status))
		require.Nil(t, task.CompletedAt)
		require.Equal(t, "beautician", string(task.BusinessType))
		require.NotEmpty(t, task.Title)
	}

	first := tasks.Tasks[0]
	rec = doJSON(t, srv, http.MethodPut, fmt.Sprintf("/api/tasks/%d", first.ID), token, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated taskUpdateResponse
	decodeBody(t, rec, &updated)
	require.Equal(t, first.ID, updated.Task.ID)
	require.Equal(t, "completed", string(updated.Task.Status))
	require.NotNil(t, updated.Task.CompletedAt)
	require.Equal(t, first.DueDate, updated.Task.DueDate)

	rec = doJSON(t, srv, http.MethodGet, "/api/tasks", token, nil)
	decodeBody(t, rec, &tasks)
	var found bool
	for _, task := range tasks.Tasks {
		if task.ID == first.ID {
			found = true
			require.Equal(t, "completed", string(task.Status))
			require.NotNil(t, task.CompletedAt)
		}
	}
	require.True(t, found)
}
