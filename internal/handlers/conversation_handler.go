package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/services"
)

type ConversationHandler struct {
	service services.ConversationService
}

func NewConversationHandler(service services.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// GET /conversations
func (h *ConversationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

// GET /conversations/:id
func (h *ConversationHandler) Get(c *gin.Context) {
	conv, err := h.service.Get(c.Param("id"))
	if err != nil {
		serviceError(c, "[chat][get]", err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// POST /conversations/:id/messages
func (h *ConversationHandler) Send(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := h.service.Send(c.Param("id"), req.Text)
	if err != nil {
		serviceError(c, "[chat][send]", err)
		return
	}
	log.Printf("[chat][send] conv=%s", conv.ID)
	c.JSON(http.StatusCreated, conv)
}

// POST /conversations/:id/read
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	if err := h.service.MarkRead(c.Param("id")); err != nil {
		serviceError(c, "[chat][read]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
