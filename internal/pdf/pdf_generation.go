package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"agencyhub/internal/models"
)

// Generator renders the exportable documents. Interface so handlers can
// be tested with a stub.
type Generator interface {
	GenerateInvoice(inv models.Invoice) ([]byte, error)
	GenerateReport(clientName string, data models.ReportData) ([]byte, error)
}

type DocumentGenerator struct {
	fontName string
}

func NewDocumentGenerator() *DocumentGenerator {
	return &DocumentGenerator{fontName: "Helvetica"}
}

func (g *DocumentGenerator) newDoc(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetAuthor("Nexus Agency", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	return pdf
}

func (g *DocumentGenerator) GenerateInvoice(inv models.Invoice) ([]byte, error) {
	pdf := g.newDoc("Invoice " + inv.ID)

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("%s  issued  %s", inv.ID, inv.DateIssued.Format("Jan 2, 2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Billed To")
	g.kvLine(pdf, "Client", inv.ClientName)
	g.kvLine(pdf, "Status", string(inv.Status))
	g.kvLine(pdf, "Due", inv.DueDate.Format("Jan 2, 2006"))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Line Items")
	pdf.SetFont(g.fontName, "", 11)
	for _, item := range inv.Items {
		pdf.CellFormat(130, 7, item.Description, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("$%.2f", item.Amount), "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)
	g.hr(pdf)

	pdf.SetFont(g.fontName, "B", 12)
	if inv.TaxRate > 0 {
		tax := inv.TotalAmount * inv.TaxRate
		pdf.CellFormat(130, 7, fmt.Sprintf("Tax (%.0f%%)", inv.TaxRate*100), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("$%.2f", tax), "", 1, "R", false, 0, "")
		pdf.CellFormat(130, 8, "Total", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, fmt.Sprintf("$%.2f", inv.TotalAmount+tax), "", 1, "R", false, 0, "")
	} else {
		pdf.CellFormat(130, 8, "Total", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, fmt.Sprintf("$%.2f", inv.TotalAmount), "", 1, "R", false, 0, "")
	}

	return render(pdf)
}

func (g *DocumentGenerator) GenerateReport(clientName string, data models.ReportData) ([]byte, error) {
	pdf := g.newDoc("Performance Report - " + clientName)

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "PERFORMANCE REPORT", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("%s  -  %s", clientName, time.Now().Format("Jan 2, 2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Totals")
	g.kvLine(pdf, "Spend", fmt.Sprintf("$%.2f", data.Totals.Spend))
	g.kvLine(pdf, "Leads", fmt.Sprintf("%d", data.Totals.Leads))
	g.kvLine(pdf, "CPL", fmt.Sprintf("$%.2f", data.Totals.CPL))
	g.kvLine(pdf, "CTR", fmt.Sprintf("%.2f%%", data.Totals.CTR))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Weekly Summary")
	g.bulletBlock(pdf, "Wins", data.WeeklyReport.Wins)
	g.bulletBlock(pdf, "Problems", data.WeeklyReport.Problems)
	g.bulletBlock(pdf, "Actions Taken", data.WeeklyReport.Actions)
	g.bulletBlock(pdf, "Next Steps", data.WeeklyReport.NextSteps)

	return render(pdf)
}

func (g *DocumentGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(g.fontName, "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func (g *DocumentGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (g *DocumentGenerator) bulletBlock(pdf *gofpdf.Fpdf, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	for _, line := range lines {
		pdf.MultiCell(0, 6, "- "+line, "", "L", false)
	}
	pdf.Ln(1)
}

func (g *DocumentGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(20, y, pageW-20, y)
	pdf.SetXY(x, y+2)
}

func render(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
