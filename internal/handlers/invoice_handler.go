package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/models"
	"agencyhub/internal/pdf"
	"agencyhub/internal/services"
)

type InvoiceHandler struct {
	service   services.InvoiceService
	generator pdf.Generator
}

func NewInvoiceHandler(service services.InvoiceService, generator pdf.Generator) *InvoiceHandler {
	return &InvoiceHandler{service: service, generator: generator}
}

// GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.List(p))
}

// GET /invoices/summary
func (h *InvoiceHandler) Summary(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.Summary(p))
}

// POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req services.CreateInvoiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[invoice][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.service.Create(req)
	if err != nil {
		serviceError(c, "[invoice][create]", err)
		return
	}
	log.Printf("[invoice][create] id=%s client=%q total=%.2f", inv.ID, inv.ClientName, inv.TotalAmount)
	c.JSON(http.StatusCreated, inv)
}

// PATCH /invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status models.InvoiceStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.service.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		serviceError(c, "[invoice][status]", err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// POST /invoices/:id/issue
func (h *InvoiceHandler) Issue(c *gin.Context) {
	inv, err := h.service.Issue(c.Param("id"))
	if err != nil {
		serviceError(c, "[invoice][issue]", err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// PDF godoc
// @Summary      Invoice PDF
// @Tags         Invoices
// @Produce      application/pdf
// @Param        id   path  string  true  "Invoice id"
// @Success      200  {file}  binary
// @Router       /invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	inv, err := h.service.Get(p, c.Param("id"))
	if err != nil {
		serviceError(c, "[invoice][pdf]", err)
		return
	}
	data, err := h.generator.GenerateInvoice(inv)
	if err != nil {
		serviceError(c, "[invoice][pdf]", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, inv.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}
