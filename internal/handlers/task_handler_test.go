package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencyhub/internal/middleware"
	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/schedule"
	"agencyhub/internal/services"
	"agencyhub/internal/store"
)

func newTaskRouter(p models.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	st := store.New()
	vis := services.NewVisibilityService(st)
	svc := services.NewTaskService(st, vis, notify.New(notify.DefaultTTL), schedule.New(), 0)
	h := NewTaskHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	})
	r.GET("/tasks", h.List)
	r.GET("/tasks/board", h.Board)
	r.POST("/tasks", h.Create)
	r.GET("/tasks/:id", h.Get)
	r.PATCH("/tasks/:id/status", h.UpdateStatus)
	r.POST("/tasks/:id/comments", h.PostComment)
	return r
}

var (
	testAgency = models.Principal{UserID: "u1", DisplayName: "Alex Mitchell", Role: models.RoleAgencyAdmin}
	testClient = models.Principal{UserID: "u2", DisplayName: "Sarah Miller", Role: models.RoleClient, CompanyName: "Acme Corp"}
)

func TestListTasksScopedToClient(t *testing.T) {
	r := newTaskRouter(testClient)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "2", tasks[0].ID)
}

func TestGetForeignTaskIsForbidden(t *testing.T) {
	r := newTaskRouter(testClient)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateTaskValidation(t *testing.T) {
	r := newTaskRouter(testAgency)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"Ship landing page","client_name":"Acme Corp"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, "Acme Corp", task.ClientName)
}

func TestUpdateStatusRejectsUnknownLane(t *testing.T) {
	r := newTaskRouter(testAgency)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/tasks/1/status", strings.NewReader(`{"status":"ARCHIVED"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBoardReturnsFourLanes(t *testing.T) {
	r := newTaskRouter(testAgency)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks/board", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var lanes []models.BoardLane
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lanes))
	require.Len(t, lanes, 4)
	assert.Equal(t, "To Do", lanes[0].Label)
}

func TestPostCommentLabelsClientAuthor(t *testing.T) {
	r := newTaskRouter(testClient)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks/2/comments", strings.NewReader(`{"text":"Please use the blue palette"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	last := task.Comments[len(task.Comments)-1]
	assert.Equal(t, "Client", last.Author)
	assert.True(t, last.IsClient)
}
