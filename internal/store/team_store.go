package store

import (
	"sync"

	"agencyhub/internal/models"
)

type TeamStore interface {
	All() []models.TeamMember
	Create(member models.TeamMember)
	Update(id string, apply func(*models.TeamMember)) bool
}

type teamStore struct {
	mu      sync.RWMutex
	members []models.TeamMember
}

func NewTeamStore(seed []models.TeamMember) TeamStore {
	return &teamStore{members: append([]models.TeamMember(nil), seed...)}
}

func (s *teamStore) All() []models.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TeamMember(nil), s.members...)
}

func (s *teamStore) Create(member models.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, member)
}

func (s *teamStore) Update(id string, apply func(*models.TeamMember)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			apply(&s.members[i])
			return true
		}
	}
	return false
}
