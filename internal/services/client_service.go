package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/store"
)

type CreateClientInput struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Industry string `json:"industry"`
	Location string `json:"location"`
}

type ClientService interface {
	List() []models.Client
	Get(id string) (models.Client, error)
	Create(in CreateClientInput) (models.Client, error)
	Rename(id, newName string) (models.Client, error)
	UpdateStatus(id string, status models.ClientStatus) (models.Client, error)
}

type clientService struct {
	store    *store.Store
	notifier *notify.Notifier
}

func NewClientService(st *store.Store, n *notify.Notifier) ClientService {
	return &clientService{store: st, notifier: n}
}

func (s *clientService) List() []models.Client {
	return s.store.Clients.All()
}

func (s *clientService) Get(id string) (models.Client, error) {
	c, ok := s.store.Clients.Get(id)
	if !ok {
		return models.Client{}, ErrNotFound
	}
	return c, nil
}

func (s *clientService) Create(in CreateClientInput) (models.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Client{}, ErrNameRequired
	}
	client := models.Client{
		ID:          uuid.NewString(),
		Name:        name,
		Contact:     in.Contact,
		Email:       in.Email,
		Status:      models.ClientOnboarding,
		ImageURL:    fmt.Sprintf("https://picsum.photos/200?random=%d", time.Now().UnixNano()%100),
		Health:      100,
		Industry:    in.Industry,
		Location:    in.Location,
		LastContact: "Just now",
		CreatedAt:   time.Now(),
	}
	s.store.Clients.Create(client)
	s.notifier.Success("Client added: " + client.Name)
	return client, nil
}

// Rename changes the client's display name and cascades it through every
// collection that references clients by name. Without the cascade, tasks
// and invoices tagged with the old name would silently drop out of the
// client's filtered views.
func (s *clientService) Rename(id, newName string) (models.Client, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return models.Client{}, ErrNameRequired
	}
	old, ok := s.store.Clients.Get(id)
	if !ok {
		return models.Client{}, ErrNotFound
	}
	if old.Name != newName {
		s.store.Clients.Update(id, func(c *models.Client) {
			c.Name = newName
		})
		tasks := s.store.Tasks.RenameClient(old.Name, newName)
		invoices := s.store.Invoices.RenameClient(old.Name, newName)
		assets := s.store.Assets.RenameClient(old.Name, newName)
		s.notifier.Info(fmt.Sprintf("Renamed %s to %s (%d tasks, %d invoices, %d assets updated)",
			old.Name, newName, tasks, invoices, assets))
	}
	c, _ := s.store.Clients.Get(id)
	return c, nil
}

func (s *clientService) UpdateStatus(id string, status models.ClientStatus) (models.Client, error) {
	switch status {
	case models.ClientActive, models.ClientOnboarding, models.ClientPaused, models.ClientChurned:
	default:
		return models.Client{}, ErrInvalidStatus
	}
	if ok := s.store.Clients.Update(id, func(c *models.Client) {
		c.Status = status
	}); !ok {
		return models.Client{}, ErrNotFound
	}
	c, _ := s.store.Clients.Get(id)
	return c, nil
}
