package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"agencyhub/internal/models"
)

const principalKey = "principal"

type Claims struct {
	UserID      string      `json:"user_id"`
	DisplayName string      `json:"display_name"`
	Role        models.Role `json:"role"`
	CompanyName string      `json:"company_name,omitempty"`
	jwt.RegisteredClaims
}

func isPublicPath(path string) bool {
	switch path {
	case "/login", "/session":
		return true
	}
	if strings.HasPrefix(path, "/swagger") ||
		strings.HasPrefix(path, "/healthz") {
		return true
	}
	return false
}

// AuthMiddleware validates the bearer token and resolves the principal
// into the request context. Public paths pass through untouched.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		if isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimSpace(parts[1])

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		const leeway = 2 * time.Minute
		if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now().Add(-leeway)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(principalKey, models.Principal{
			UserID:      claims.UserID,
			DisplayName: claims.DisplayName,
			Role:        claims.Role,
			CompanyName: claims.CompanyName,
		})
		c.Next()
	}
}

// PrincipalFrom extracts the resolved principal set by AuthMiddleware.
func PrincipalFrom(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// SetPrincipal injects a principal directly. Tests only.
func SetPrincipal(c *gin.Context, p models.Principal) {
	c.Set(principalKey, p)
}
