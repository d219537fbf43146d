package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/models"
	"agencyhub/internal/services"
)

type ClientHandler struct {
	service services.ClientService
}

func NewClientHandler(service services.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// GET /clients
func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

// GET /clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.service.Get(c.Param("id"))
	if err != nil {
		serviceError(c, "[client][get]", err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// POST /clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req services.CreateClientInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[client][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.service.Create(req)
	if err != nil {
		serviceError(c, "[client][create]", err)
		return
	}
	log.Printf("[client][create] id=%s name=%q", client.ID, client.Name)
	c.JSON(http.StatusCreated, client)
}

// PATCH /clients/:id/name
func (h *ClientHandler) Rename(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.service.Rename(c.Param("id"), req.Name)
	if err != nil {
		serviceError(c, "[client][rename]", err)
		return
	}
	log.Printf("[client][rename] id=%s -> %q", client.ID, client.Name)
	c.JSON(http.StatusOK, client)
}

// PATCH /clients/:id/status
func (h *ClientHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status models.ClientStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.service.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		serviceError(c, "[client][status]", err)
		return
	}
	c.JSON(http.StatusOK, client)
}
