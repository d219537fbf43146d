package store

import (
	"sync"

	"agencyhub/internal/models"
)

// WorkspaceStore holds the small leaf collections: onboarding checklist,
// approval queue and the resource library.
type WorkspaceStore interface {
	OnboardingSteps() []models.OnboardingStep
	SetStepCompleted(id string, completed bool) bool
	Approvals() []models.ApprovalItem
	UpdateApproval(id string, apply func(*models.ApprovalItem)) bool
	Resources() []models.Resource
}

type workspaceStore struct {
	mu        sync.RWMutex
	steps     []models.OnboardingStep
	approvals []models.ApprovalItem
	resources []models.Resource
}

func NewWorkspaceStore(steps []models.OnboardingStep, approvals []models.ApprovalItem, resources []models.Resource) WorkspaceStore {
	return &workspaceStore{
		steps:     append([]models.OnboardingStep(nil), steps...),
		approvals: append([]models.ApprovalItem(nil), approvals...),
		resources: append([]models.Resource(nil), resources...),
	}
}

func (s *workspaceStore) OnboardingSteps() []models.OnboardingStep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.OnboardingStep(nil), s.steps...)
}

func (s *workspaceStore) SetStepCompleted(id string, completed bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.steps {
		if s.steps[i].ID == id {
			s.steps[i].Completed = completed
			return true
		}
	}
	return false
}

func (s *workspaceStore) Approvals() []models.ApprovalItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ApprovalItem(nil), s.approvals...)
}

func (s *workspaceStore) UpdateApproval(id string, apply func(*models.ApprovalItem)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.approvals {
		if s.approvals[i].ID == id {
			apply(&s.approvals[i])
			return true
		}
	}
	return false
}

func (s *workspaceStore) Resources() []models.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Resource(nil), s.resources...)
}
