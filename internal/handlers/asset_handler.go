package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agencyhub/internal/models"
	"agencyhub/internal/services"
	"agencyhub/internal/store"
)

type AssetHandler struct {
	visibility services.VisibilityService
	store      *store.Store
}

func NewAssetHandler(visibility services.VisibilityService, st *store.Store) *AssetHandler {
	return &AssetHandler{visibility: visibility, store: st}
}

// GET /assets
func (h *AssetHandler) List(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.visibility.VisibleAssets(p))
}

// POST /assets
func (h *AssetHandler) Create(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req struct {
		Name       string           `json:"name" binding:"required"`
		Type       models.AssetType `json:"type" binding:"required"`
		URL        string           `json:"url"`
		Size       string           `json:"size"`
		Dimension  string           `json:"dimension"`
		ClientName string           `json:"client_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset := models.Asset{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Type:       req.Type,
		URL:        req.URL,
		Size:       req.Size,
		Dimension:  req.Dimension,
		UploadDate: time.Now(),
		ClientName: req.ClientName,
		UploadedBy: p.DisplayName,
	}
	if p.IsClient() {
		asset.ClientName = p.CompanyName
	}
	h.store.Assets.Create(asset)
	c.JSON(http.StatusCreated, asset)
}
