package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/services"
)

type AdCenterHandler struct {
	service services.AdCopyService
}

func NewAdCenterHandler(service services.AdCopyService) *AdCenterHandler {
	return &AdCenterHandler{service: service}
}

// GenerateCopy godoc
// @Summary      Generate ad copy
// @Description  Produces a headline, primary text and call to action for a product
// @Tags         AdCenter
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.GeneratedAdCopy
// @Router       /ads/copy [post]
func (h *AdCenterHandler) GenerateCopy(c *gin.Context) {
	var req struct {
		Product string `json:"product" binding:"required"`
		Tone    string `json:"tone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.GenerateAdCopy(c.Request.Context(), req.Product, req.Tone)
	if err != nil {
		// Generation problems are advisory; 502 tells the caller to retry
		// without implying its own request was malformed.
		log.Printf("[ads][copy][err] %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /ads/strategy
func (h *AdCenterHandler) GenerateStrategy(c *gin.Context) {
	var req struct {
		Business string `json:"business" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.service.GenerateStrategy(c.Request.Context(), req.Business)
	if err != nil {
		log.Printf("[ads][strategy][err] %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /ads/analyze
func (h *AdCenterHandler) Analyze(c *gin.Context) {
	var req struct {
		Metrics string `json:"metrics" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.service.AnalyzePerformance(c.Request.Context(), req.Metrics)
	if err != nil {
		log.Printf("[ads][analyze][err] %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
