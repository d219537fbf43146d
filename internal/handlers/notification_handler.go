package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/notify"
)

type NotificationHandler struct {
	notifier *notify.Notifier
}

func NewNotificationHandler(notifier *notify.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// GET /notifications/current
func (h *NotificationHandler) Current(c *gin.Context) {
	n := h.notifier.Current()
	if n == nil {
		c.JSON(http.StatusOK, gin.H{"notification": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": n})
}

// DELETE /notifications/:id
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	h.notifier.Dismiss(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "dismissed"})
}
