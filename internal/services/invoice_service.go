package services

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/store"
)

const invoiceTaxRate = 0.10

type CreateInvoiceInput struct {
	ClientName string               `json:"client_name"`
	Items      []models.InvoiceItem `json:"items"`
	DueDate    *time.Time           `json:"due_date,omitempty"`
}

type InvoiceService interface {
	List(p models.Principal) []models.Invoice
	Get(p models.Principal, id string) (models.Invoice, error)
	Create(in CreateInvoiceInput) (models.Invoice, error)
	UpdateStatus(id string, status models.InvoiceStatus) (models.Invoice, error)
	Issue(id string) (models.Invoice, error)
	Summary(p models.Principal) models.InvoiceSummary
}

type invoiceService struct {
	store      *store.Store
	visibility VisibilityService
	notifier   *notify.Notifier
	email      EmailService
}

func NewInvoiceService(st *store.Store, vis VisibilityService, n *notify.Notifier, email EmailService) InvoiceService {
	return &invoiceService{store: st, visibility: vis, notifier: n, email: email}
}

func (s *invoiceService) List(p models.Principal) []models.Invoice {
	return s.visibility.VisibleInvoices(p)
}

func (s *invoiceService) Get(p models.Principal, id string) (models.Invoice, error) {
	inv, ok := s.store.Invoices.Get(id)
	if !ok {
		return models.Invoice{}, ErrNotFound
	}
	if p.IsClient() && inv.ClientName != p.CompanyName {
		return models.Invoice{}, ErrForbidden
	}
	return inv, nil
}

// Create builds a draft invoice. The total is always recomputed from the
// line items; the caller cannot set it.
func (s *invoiceService) Create(in CreateInvoiceInput) (models.Invoice, error) {
	if in.ClientName == "" {
		return models.Invoice{}, ErrNameRequired
	}
	var total float64
	for _, item := range in.Items {
		total += item.Amount
	}
	now := time.Now()
	due := now.AddDate(0, 0, 14)
	if in.DueDate != nil {
		due = *in.DueDate
	}
	inv := models.Invoice{
		ID:          fmt.Sprintf("INV-%04d", 1000+rand.Intn(9000)),
		ClientName:  in.ClientName,
		Items:       in.Items,
		TotalAmount: total,
		TaxRate:     invoiceTaxRate,
		Status:      models.InvoiceDraft,
		DateIssued:  now,
		DueDate:     due,
	}
	s.store.Invoices.Create(inv)
	s.notifier.Success("Invoice " + inv.ID + " created")
	return inv, nil
}

func (s *invoiceService) UpdateStatus(id string, status models.InvoiceStatus) (models.Invoice, error) {
	switch status {
	case models.InvoiceDraft, models.InvoicePending, models.InvoicePaid, models.InvoiceOverdue:
	default:
		return models.Invoice{}, ErrInvalidStatus
	}
	if ok := s.store.Invoices.Update(id, func(inv *models.Invoice) {
		inv.Status = status
	}); !ok {
		return models.Invoice{}, ErrNotFound
	}
	inv, _ := s.store.Invoices.Get(id)
	return inv, nil
}

// Issue moves a draft to pending and emails it to the client contact. A
// failed send is logged, not returned; billing state must not depend on
// SMTP availability.
func (s *invoiceService) Issue(id string) (models.Invoice, error) {
	inv, ok := s.store.Invoices.Get(id)
	if !ok {
		return models.Invoice{}, ErrNotFound
	}
	s.store.Invoices.Update(id, func(i *models.Invoice) {
		if i.Status == models.InvoiceDraft {
			i.Status = models.InvoicePending
		}
		i.DateIssued = time.Now()
	})
	inv, _ = s.store.Invoices.Get(id)

	if client, ok := s.store.Clients.GetByName(inv.ClientName); ok && client.Email != "" {
		if err := s.email.SendInvoiceEmail(client.Email, inv); err != nil {
			log.Printf("[invoice][issue][warn] email %s: %v", inv.ID, err)
		}
	}
	s.notifier.Success("Invoice " + inv.ID + " issued")
	return inv, nil
}

func (s *invoiceService) Summary(p models.Principal) models.InvoiceSummary {
	var sum models.InvoiceSummary
	for _, inv := range s.visibility.VisibleInvoices(p) {
		switch inv.Status {
		case models.InvoicePaid:
			sum.Revenue += inv.TotalAmount
		case models.InvoicePending:
			sum.Outstanding += inv.TotalAmount
		case models.InvoiceOverdue:
			sum.Overdue += inv.TotalAmount
		}
	}
	return sum
}
