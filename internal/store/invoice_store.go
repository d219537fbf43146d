package store

import (
	"sync"

	"agencyhub/internal/models"
)

type InvoiceStore interface {
	All() []models.Invoice
	Get(id string) (models.Invoice, bool)
	Create(inv models.Invoice)
	Update(id string, apply func(*models.Invoice)) bool
	RenameClient(oldName, newName string) int
}

type invoiceStore struct {
	mu       sync.RWMutex
	invoices []models.Invoice
}

func NewInvoiceStore(seed []models.Invoice) InvoiceStore {
	s := &invoiceStore{}
	for _, inv := range seed {
		s.invoices = append(s.invoices, cloneInvoice(inv))
	}
	return s
}

func (s *invoiceStore) All() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, cloneInvoice(inv))
	}
	return out
}

func (s *invoiceStore) Get(id string) (models.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return cloneInvoice(inv), true
		}
	}
	return models.Invoice{}, false
}

// Create prepends so the newest invoice shows first.
func (s *invoiceStore) Create(inv models.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append([]models.Invoice{cloneInvoice(inv)}, s.invoices...)
}

func (s *invoiceStore) Update(id string, apply func(*models.Invoice)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			apply(&s.invoices[i])
			return true
		}
	}
	return false
}

func (s *invoiceStore) RenameClient(oldName, newName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.invoices {
		if s.invoices[i].ClientName == oldName {
			s.invoices[i].ClientName = newName
			n++
		}
	}
	return n
}

func cloneInvoice(inv models.Invoice) models.Invoice {
	out := inv
	out.Items = make([]models.InvoiceItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return out
}
