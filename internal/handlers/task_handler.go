package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/models"
	"agencyhub/internal/services"
)

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List godoc
// @Summary      List visible tasks
// @Description  Tasks the principal may see, optionally narrowed by status and a text query
// @Tags         Tasks
// @Produce      json
// @Param        status  query     string  false  "Lane status"
// @Param        q       query     string  false  "Substring of title or client name"
// @Success      200     {array}   models.Task
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var filter models.TaskFilter
	if raw := c.Query("status"); raw != "" {
		status := models.TaskStatus(raw)
		filter.Status = &status
	}
	filter.Query = c.Query("q")

	c.JSON(http.StatusOK, h.service.List(p, filter))
}

// GET /tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	task, err := h.service.Get(p, c.Param("id"))
	if err != nil {
		serviceError(c, "[task][get]", err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req services.CreateIssueInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.CreateIssue(p, req)
	if err != nil {
		serviceError(c, "[task][create]", err)
		return
	}
	log.Printf("[task][create] id=%s title=%q client=%q by=%s", task.ID, task.Title, task.ClientName, p.UserID)
	c.JSON(http.StatusCreated, task)
}

// PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req services.UpdateIssueInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.Update(p, c.Param("id"), req)
	if err != nil {
		serviceError(c, "[task][update]", err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// PATCH /tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req struct {
		Status models.TaskStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.UpdateStatus(p, c.Param("id"), req.Status)
	if err != nil {
		serviceError(c, "[task][status]", err)
		return
	}
	log.Printf("[task][status] id=%s -> %s by=%s", task.ID, task.Status, p.UserID)
	c.JSON(http.StatusOK, task)
}

// Board godoc
// @Summary      Kanban board
// @Description  Visible tasks grouped into the four fixed lanes with derived counts
// @Tags         Tasks
// @Produce      json
// @Success      200  {array}  models.BoardLane
// @Router       /tasks/board [get]
func (h *TaskHandler) Board(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.Board(p))
}

// POST /tasks/:id/comments
func (h *TaskHandler) PostComment(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.PostComment(p, c.Param("id"), req.Text)
	if err != nil {
		serviceError(c, "[task][comment]", err)
		return
	}
	c.JSON(http.StatusCreated, task)
}
