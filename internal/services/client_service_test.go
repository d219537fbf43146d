package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/store"
)

func newClientService() (ClientService, *store.Store) {
	st := store.New()
	return NewClientService(st, notify.New(notify.DefaultTTL)), st
}

func TestCreateClientRequiresName(t *testing.T) {
	svc, _ := newClientService()

	_, err := svc.Create(CreateClientInput{Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)

	client, err := svc.Create(CreateClientInput{Name: "BrightBite", Industry: "Food"})
	require.NoError(t, err)
	assert.Equal(t, models.ClientOnboarding, client.Status)
	assert.NotEmpty(t, client.ID)
}

// Renaming a client must carry the denormalized name through tasks,
// invoices and assets, otherwise those records silently vanish from the
// client's filtered views.
func TestRenameCascadesThroughRecords(t *testing.T) {
	svc, st := newClientService()

	_, err := svc.Rename("1", "Acme Global")
	require.NoError(t, err)

	task, _ := st.Tasks.Get("2")
	assert.Equal(t, "Acme Global", task.ClientName)

	inv, _ := st.Invoices.Get("INV-3021")
	assert.Equal(t, "Acme Global", inv.ClientName)

	for _, a := range st.Assets.All() {
		assert.NotEqual(t, "Acme Corp", a.ClientName)
	}

	// The renamed company's principal keeps seeing its records.
	vis := NewVisibilityService(st)
	renamed := models.Principal{UserID: "u2", Role: models.RoleClient, CompanyName: "Acme Global"}
	assert.Len(t, vis.VisibleTasks(renamed), 1)
	assert.Len(t, vis.VisibleInvoices(renamed), 1)
}

func TestRenameUnknownClient(t *testing.T) {
	svc, _ := newClientService()
	_, err := svc.Rename("nope", "Whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateClientStatusRejectsUnknown(t *testing.T) {
	svc, _ := newClientService()

	_, err := svc.UpdateStatus("1", models.ClientStatus("Frozen"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	client, err := svc.UpdateStatus("1", models.ClientPaused)
	require.NoError(t, err)
	assert.Equal(t, models.ClientPaused, client.Status)
}
