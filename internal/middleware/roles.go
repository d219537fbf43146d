package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/models"
)

func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	allowedSet := map[models.Role]struct{}{}
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no principal in context"})
			return
		}
		if _, ok := allowedSet[p.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// AgencyOnly is shorthand for routes client users must never reach.
func AgencyOnly() gin.HandlerFunc {
	return RequireRoles(models.RoleAgencyAdmin, models.RoleAgencyMember)
}
