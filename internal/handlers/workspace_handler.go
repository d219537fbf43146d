package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/services"
)

type WorkspaceHandler struct {
	service services.WorkspaceService
}

func NewWorkspaceHandler(service services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

// GET /onboarding
func (h *WorkspaceHandler) OnboardingSteps(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.OnboardingSteps())
}

// PATCH /onboarding/:id
func (h *WorkspaceHandler) CompleteStep(c *gin.Context) {
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	steps, err := h.service.CompleteStep(c.Param("id"), req.Completed)
	if err != nil {
		serviceError(c, "[onboarding][step]", err)
		return
	}
	c.JSON(http.StatusOK, steps)
}

// GET /approvals
func (h *WorkspaceHandler) Approvals(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Approvals())
}

// POST /approvals/:id/decision
func (h *WorkspaceHandler) Decide(c *gin.Context) {
	var req struct {
		Approve  bool   `json:"approve"`
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Decide(c.Param("id"), req.Approve, req.Feedback)
	if err != nil {
		serviceError(c, "[approvals][decide]", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GET /resources
func (h *WorkspaceHandler) Resources(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Resources())
}
