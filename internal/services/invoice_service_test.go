package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/store"
)

type stubEmail struct {
	sent []string
}

func (s *stubEmail) SendInvoiceEmail(to string, inv models.Invoice) error {
	s.sent = append(s.sent, inv.ID)
	return nil
}

func (s *stubEmail) SendWelcomeEmail(to, companyName string) error { return nil }

func newInvoiceService() (InvoiceService, *store.Store, *stubEmail) {
	st := store.New()
	email := &stubEmail{}
	vis := NewVisibilityService(st)
	return NewInvoiceService(st, vis, notify.New(notify.DefaultTTL), email), st, email
}

func TestCreateInvoiceComputesTotal(t *testing.T) {
	svc, _, _ := newInvoiceService()

	inv, err := svc.Create(CreateInvoiceInput{
		ClientName: "Acme Corp",
		Items: []models.InvoiceItem{
			{Description: "Retainer", Amount: 3000},
			{Description: "Ad spend fee", Amount: 450.50},
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(inv.ID, "INV-"))
	assert.Equal(t, models.InvoiceDraft, inv.Status)
	assert.InDelta(t, 3450.50, inv.TotalAmount, 0.001)
	assert.InDelta(t, 0.10, inv.TaxRate, 0.001)
}

func TestCreateInvoicePrependsNewestFirst(t *testing.T) {
	svc, st, _ := newInvoiceService()

	inv, err := svc.Create(CreateInvoiceInput{ClientName: "FashionNova", Items: nil})
	require.NoError(t, err)

	all := st.Invoices.All()
	require.NotEmpty(t, all)
	assert.Equal(t, inv.ID, all[0].ID)
}

func TestIssueMovesDraftToPendingAndEmails(t *testing.T) {
	svc, _, email := newInvoiceService()

	inv, err := svc.Create(CreateInvoiceInput{
		ClientName: "Acme Corp",
		Items:      []models.InvoiceItem{{Description: "Retainer", Amount: 1000}},
	})
	require.NoError(t, err)

	issued, err := svc.Issue(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePending, issued.Status)
	assert.Contains(t, email.sent, inv.ID)
}

func TestInvoiceSummaryBuckets(t *testing.T) {
	svc, _, _ := newInvoiceService()

	sum := svc.Summary(agencyUser)
	assert.InDelta(t, 4500, sum.Revenue, 0.001)
	assert.InDelta(t, 1200, sum.Outstanding, 0.001)
	assert.InDelta(t, 0, sum.Overdue, 0.001)

	clientSum := svc.Summary(clientUser)
	assert.InDelta(t, 4500, clientSum.Revenue, 0.001)
	assert.InDelta(t, 0, clientSum.Outstanding, 0.001)
}

func TestInvoiceStatusValidation(t *testing.T) {
	svc, _, _ := newInvoiceService()

	_, err := svc.UpdateStatus("INV-3022", models.InvoiceStatus("Void"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	inv, err := svc.UpdateStatus("INV-3022", models.InvoiceOverdue)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceOverdue, inv.Status)
}

func TestClientCannotReadForeignInvoice(t *testing.T) {
	svc, _, _ := newInvoiceService()

	_, err := svc.Get(clientUser, "INV-3022")
	assert.ErrorIs(t, err, ErrForbidden)

	inv, err := svc.Get(clientUser, "INV-3021")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", inv.ClientName)
}
