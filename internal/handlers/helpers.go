package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/middleware"
	"agencyhub/internal/models"
	"agencyhub/internal/services"
)

func mustPrincipal(c *gin.Context) (models.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no principal in context"})
		return models.Principal{}, false
	}
	return p, true
}

// serviceError maps the service sentinels onto HTTP statuses and logs
// under the caller's tag.
func serviceError(c *gin.Context, tag string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		log.Printf("%s[err] not found", tag)
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrForbidden):
		log.Printf("%s[deny] forbidden", tag)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrTextRequired),
		errors.Is(err, services.ErrInvalidStatus):
		log.Printf("%s[err] %v", tag, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Printf("%s[deny] invalid credentials", tag)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("%s[err] %v", tag, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
