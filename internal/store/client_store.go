package store

import (
	"sync"

	"agencyhub/internal/models"
)

type ClientStore interface {
	All() []models.Client
	Get(id string) (models.Client, bool)
	GetByName(name string) (models.Client, bool)
	Create(client models.Client)
	Update(id string, apply func(*models.Client)) bool
}

type clientStore struct {
	mu      sync.RWMutex
	clients []models.Client
}

func NewClientStore(seed []models.Client) ClientStore {
	return &clientStore{clients: append([]models.Client(nil), seed...)}
}

func (s *clientStore) All() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Client(nil), s.clients...)
}

func (s *clientStore) Get(id string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

func (s *clientStore) GetByName(name string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.Name == name {
			return c, true
		}
	}
	return models.Client{}, false
}

func (s *clientStore) Create(client models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, client)
}

func (s *clientStore) Update(id string, apply func(*models.Client)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			apply(&s.clients[i])
			return true
		}
	}
	return false
}
