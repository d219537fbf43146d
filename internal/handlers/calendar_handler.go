package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/services"
)

type CalendarHandler struct {
	service services.CalendarService
}

func NewCalendarHandler(service services.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// GET /calendar?year=2026&month=8
func (h *CalendarHandler) Month(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = v
	}
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		month = v
	}
	c.JSON(http.StatusOK, h.service.Month(p, year, time.Month(month)))
}

// POST /calendar/events
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req services.CreateEventInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.CreateEvent(p, req)
	if err != nil {
		serviceError(c, "[calendar][create]", err)
		return
	}
	c.JSON(http.StatusCreated, task)
}
