package store

import (
	"strings"
	"sync"

	"agencyhub/internal/models"
)

type UserStore interface {
	GetByEmail(email string) (models.UserProfile, bool)
	Get(id string) (models.UserProfile, bool)
	Update(id string, apply func(*models.UserProfile)) bool
}

type userStore struct {
	mu    sync.RWMutex
	users []models.UserProfile
}

func NewUserStore(seed []models.UserProfile) UserStore {
	return &userStore{users: append([]models.UserProfile(nil), seed...)}
}

func (s *userStore) GetByEmail(email string) (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if strings.ToLower(u.Email) == email {
			return u, true
		}
	}
	return models.UserProfile{}, false
}

func (s *userStore) Get(id string) (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.UserProfile{}, false
}

func (s *userStore) Update(id string, apply func(*models.UserProfile)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			apply(&s.users[i])
			return true
		}
	}
	return false
}
