package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"todolist-api.com/todolist-api/internal/dto"
	"todolist-api.com/todolist-api/internal/http/validators"
	model "todolist-api.com/todolist-api/internal/models"
	repository "todolist-api.com/todolist-api/internal/repositories"
	"todolist-api.com/todolist-api/internal/services"
)

func newTestApp(t *testing.T) *echo.Echo {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Task{}))

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	repo := repository.NewTaskRepository(db)
	service := services.NewTaskService(repo, zap.NewNop())

	e := echo.New()
	e.Validator = validators.New()
	e.HTTPErrorHandler = NewErrorHandler(zap.NewNop())
	Register(e, NewHandler(service))

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func createTask(t *testing.T, e *echo.Echo, body string) map[string]any {
	rec := doJSON(e, http.MethodPost, "/api/tarefas", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody(t, rec)
}

func TestCreateTask_DefaultsAndTimestamps(t *testing.T) {
	e := newTestApp(t)

	task := createTask(t, e, `{"title":"Buy milk","description":"2%","status":null}`)

	require.Equal(t, "PENDENTE", task["status"])
	require.Equal(t, "Buy milk", task["title"])
	require.Equal(t, "2%", task["description"])
	require.NotZero(t, task["id"])

	createdAt, err := time.Parse(dto.LocalDateTimeLayout, task["createdAt"].(string))
	require.NoError(t, err)
	updatedAt, err := time.Parse(dto.LocalDateTimeLayout, task["updatedAt"].(string))
	require.NoError(t, err)
	require.LessOrEqual(t, updatedAt.Sub(createdAt), time.Second)
}

func TestCreateTask_TitleBoundaries(t *testing.T) {
	e := newTestApp(t)

	cases := []struct {
		length int
		status int
	}{
		{2, http.StatusBadRequest},
		{3, http.StatusCreated},
		{100, http.StatusCreated},
		{101, http.StatusBadRequest},
	}

	for _, tc := range cases {
		body := fmt.Sprintf(`{"title":%q}`, strings.Repeat("a", tc.length))
		rec := doJSON(e, http.MethodPost, "/api/tarefas", body)
		require.Equalf(t, tc.status, rec.Code, "title of %d characters", tc.length)

		if tc.status == http.StatusBadRequest {
			envelope := decodeBody(t, rec)
			fieldErrors := envelope["validationErrors"].([]any)
			require.Len(t, fieldErrors, 1)
			require.Equal(t, "title", fieldErrors[0].(map[string]any)["field"])
		}
	}
}

func TestCreateTask_DescriptionBoundaries(t *testing.T) {
	e := newTestApp(t)

	ok := fmt.Sprintf(`{"title":"valid title","description":%q}`, strings.Repeat("d", 500))
	rec := doJSON(e, http.MethodPost, "/api/tarefas", ok)
	require.Equal(t, http.StatusCreated, rec.Code)

	tooLong := fmt.Sprintf(`{"title":"valid title","description":%q}`, strings.Repeat("d", 501))
	rec = doJSON(e, http.MethodPost, "/api/tarefas", tooLong)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeBody(t, rec)
	fieldErrors := envelope["validationErrors"].([]any)
	require.Len(t, fieldErrors, 1)
	require.Equal(t, "description", fieldErrors[0].(map[string]any)["field"])
}

func TestCreateTask_AggregatesAllViolations(t *testing.T) {
	e := newTestApp(t)

	body := fmt.Sprintf(`{"title":"  ","description":%q}`, strings.Repeat("d", 501))
	rec := doJSON(e, http.MethodPost, "/api/tarefas", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeBody(t, rec)
	fieldErrors := envelope["validationErrors"].([]any)
	require.Len(t, fieldErrors, 2)

	fields := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		fields = append(fields, fe.(map[string]any)["field"].(string))
	}
	require.ElementsMatch(t, []string{"title", "description"}, fields)
}

func TestCreateTask_InvalidStatusTokenNamesAllowedValues(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/api/tarefas", `{"title":"valid title","status":"FINISHED"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeBody(t, rec)
	require.Contains(t, envelope["message"], "PENDENTE, EM_ANDAMENTO, CONCLUIDA")
}

func TestCreateTask_MalformedJSON(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/api/tarefas", `{"title": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeBody(t, rec)
	require.Equal(t, float64(http.StatusBadRequest), envelope["status"])
	require.Equal(t, "Bad Request", envelope["error"])
}

func TestGetTask_NotFoundEnvelope(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/tarefas/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeBody(t, rec)
	require.Equal(t, float64(http.StatusNotFound), envelope["status"])
	require.Equal(t, "Not Found", envelope["error"])
	require.Equal(t, "task not found with id: 999", envelope["message"])
	require.Equal(t, "/api/tarefas/999", envelope["path"])
	require.NotEmpty(t, envelope["timestamp"])
	require.NotContains(t, envelope, "validationErrors")
}

func TestGetTask_InvalidID(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/tarefas/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeBody(t, rec)
	require.Contains(t, envelope["message"], "'abc'")
	require.Contains(t, envelope["message"], "'id'")
}

func TestListTasks_NewestFirst(t *testing.T) {
	e := newTestApp(t)

	for _, title := range []string{"first task", "second task", "third task"} {
		createTask(t, e, fmt.Sprintf(`{"title":%q}`, title))
		time.Sleep(5 * time.Millisecond)
	}

	rec := doJSON(e, http.MethodGet, "/api/tarefas", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 3)
	require.Equal(t, "third task", tasks[0]["title"])
	require.Equal(t, "second task", tasks[1]["title"])
	require.Equal(t, "first task", tasks[2]["title"])
}

func TestListTasksByStatus(t *testing.T) {
	e := newTestApp(t)

	createTask(t, e, `{"title":"pending task"}`)
	createTask(t, e, `{"title":"active task","status":"EM_ANDAMENTO"}`)

	rec := doJSON(e, http.MethodGet, "/api/tarefas/status/EM_ANDAMENTO", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	require.Equal(t, "active task", tasks[0]["title"])
}

func TestListTasksByStatus_InvalidToken(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/tarefas/status/UNKNOWN", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeBody(t, rec)
	require.Contains(t, envelope["message"], "PENDENTE, EM_ANDAMENTO, CONCLUIDA")
}

func TestUpdateTask_Semantics(t *testing.T) {
	e := newTestApp(t)

	created := createTask(t, e, `{"title":"original","description":"desc","status":"EM_ANDAMENTO"}`)
	id := int64(created["id"].(float64))

	// Status omitted: preserved. Title and description always replaced.
	rec := doJSON(e, http.MethodPut, fmt.Sprintf("/api/tarefas/%d", id), `{"title":"renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeBody(t, rec)
	require.Equal(t, "renamed", updated["title"])
	require.Equal(t, "", updated["description"])
	require.Equal(t, "EM_ANDAMENTO", updated["status"])

	// Status provided: overwritten.
	rec = doJSON(e, http.MethodPut, fmt.Sprintf("/api/tarefas/%d", id), `{"title":"renamed","status":"CONCLUIDA"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "CONCLUIDA", decodeBody(t, rec)["status"])
}

func TestUpdateTask_NotFound(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(e, http.MethodPut, "/api/tarefas/123", `{"title":"valid title"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTask_Flow(t *testing.T) {
	e := newTestApp(t)

	created := createTask(t, e, `{"title":"short lived"}`)
	id := int64(created["id"].(float64))

	rec := doJSON(e, http.MethodDelete, fmt.Sprintf("/api/tarefas/%d", id), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())

	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/api/tarefas/%d", id), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/tarefas/%d", id), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnmappedRoute(t *testing.T) {
	e := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/unknown", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeBody(t, rec)
	require.Equal(t, float64(http.StatusNotFound), envelope["status"])
	require.Contains(t, envelope["message"], "/api/unknown")
}
