package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/models"
	"agencyhub/internal/services"
)

type AuthHandler struct {
	service services.AuthService
}

func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns a bearer token plus the user profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        input  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		serviceError(c, "[auth][login]", err)
		return
	}
	log.Printf("[auth][login] user=%s role=%s", user.ID, user.Role)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(); err != nil {
		serviceError(c, "[auth][logout]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GET /session
func (h *AuthHandler) Session(c *gin.Context) {
	state, err := h.service.Session()
	if err != nil {
		serviceError(c, "[auth][session]", err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// PUT /profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req struct {
		UserName      *string                   `json:"user_name"`
		AgencyName    *string                   `json:"agency_name"`
		AvatarURL     *string                   `json:"avatar_url"`
		Notifications *models.NotificationPrefs `json:"notifications"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.UpdateProfile(p.UserID, func(u *models.UserProfile) {
		if req.UserName != nil {
			u.UserName = *req.UserName
		}
		if req.AgencyName != nil {
			u.AgencyName = *req.AgencyName
		}
		if req.AvatarURL != nil {
			u.AvatarURL = *req.AvatarURL
		}
		if req.Notifications != nil {
			u.Notifications = *req.Notifications
		}
	})
	if err != nil {
		serviceError(c, "[auth][profile]", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
