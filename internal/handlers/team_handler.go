package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/services"
)

type TeamHandler struct {
	service services.TeamService
}

func NewTeamHandler(service services.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// GET /team
func (h *TeamHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

// POST /team
func (h *TeamHandler) Invite(c *gin.Context) {
	var req services.InviteMemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.service.Invite(req)
	if err != nil {
		serviceError(c, "[team][invite]", err)
		return
	}
	log.Printf("[team][invite] id=%s name=%q", member.ID, member.Name)
	c.JSON(http.StatusCreated, member)
}
