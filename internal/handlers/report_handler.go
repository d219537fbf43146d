package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/models"
	"agencyhub/internal/pdf"
	"agencyhub/internal/services"
)

type ReportHandler struct {
	service   services.ReportService
	clients   services.ClientService
	generator pdf.Generator
}

func NewReportHandler(service services.ReportService, clients services.ClientService, generator pdf.Generator) *ReportHandler {
	return &ReportHandler{service: service, clients: clients, generator: generator}
}

// Report godoc
// @Summary      Client performance report
// @Description  Simulated daily series, derived totals, weekly narrative and ad creatives
// @Tags         Reports
// @Produce      json
// @Param        client_id  path      string  true  "Client id"
// @Success      200        {object}  models.ReportData
// @Router       /reports/{client_id} [get]
func (h *ReportHandler) Report(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	data, err := h.service.Report(p, c.Param("client_id"))
	if err != nil {
		serviceError(c, "[report][get]", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// PUT /reports/:client_id/weekly
func (h *ReportHandler) SaveWeekly(c *gin.Context) {
	var req models.WeeklyReport
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.service.SaveWeeklyReport(c.Param("client_id"), req)
	if err != nil {
		serviceError(c, "[report][weekly]", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// POST /reports/:client_id/sync
func (h *ReportHandler) Sync(c *gin.Context) {
	if err := h.service.Sync(c.Param("client_id")); err != nil {
		serviceError(c, "[report][sync]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sync started"})
}

// GET /reports/:client_id/pdf
func (h *ReportHandler) PDF(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	clientID := c.Param("client_id")
	data, err := h.service.Report(p, clientID)
	if err != nil {
		serviceError(c, "[report][pdf]", err)
		return
	}
	client, err := h.clients.Get(clientID)
	if err != nil {
		serviceError(c, "[report][pdf]", err)
		return
	}
	out, err := h.generator.GenerateReport(client.Name, data)
	if err != nil {
		serviceError(c, "[report][pdf]", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.pdf"`, clientID))
	c.Data(http.StatusOK, "application/pdf", out)
}
