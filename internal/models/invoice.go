package models

import "time"

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "Draft"
	InvoicePending InvoiceStatus = "Pending"
	InvoicePaid    InvoiceStatus = "Paid"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

type InvoiceItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	ID          string        `json:"id"`
	ClientName  string        `json:"client_name"`
	Items       []InvoiceItem `json:"items"`
	TotalAmount float64       `json:"total_amount"`
	Status      InvoiceStatus `json:"status"`
	DateIssued  time.Time     `json:"date_issued"`
	DueDate     time.Time     `json:"due_date"`
	TaxRate     float64       `json:"tax_rate,omitempty"`
}

// InvoiceSummary aggregates totals by status for the billing dashboard.
type InvoiceSummary struct {
	Revenue     float64 `json:"revenue"`     // sum of paid
	Outstanding float64 `json:"outstanding"` // sum of pending
	Overdue     float64 `json:"overdue"`     // sum of overdue
}
