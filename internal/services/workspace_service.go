package services

import (
	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/store"
)

// WorkspaceService covers the client-portal leaf views: the onboarding
// checklist, the approval queue and the resource library.
type WorkspaceService interface {
	OnboardingSteps() []models.OnboardingStep
	CompleteStep(id string, completed bool) ([]models.OnboardingStep, error)
	Approvals() []models.ApprovalItem
	Decide(id string, approve bool, feedback string) (models.ApprovalItem, error)
	Resources() []models.Resource
}

type workspaceService struct {
	store    *store.Store
	notifier *notify.Notifier
}

func NewWorkspaceService(st *store.Store, n *notify.Notifier) WorkspaceService {
	return &workspaceService{store: st, notifier: n}
}

func (s *workspaceService) OnboardingSteps() []models.OnboardingStep {
	return s.store.Workspace.OnboardingSteps()
}

func (s *workspaceService) CompleteStep(id string, completed bool) ([]models.OnboardingStep, error) {
	if ok := s.store.Workspace.SetStepCompleted(id, completed); !ok {
		return nil, ErrNotFound
	}
	return s.store.Workspace.OnboardingSteps(), nil
}

func (s *workspaceService) Approvals() []models.ApprovalItem {
	return s.store.Workspace.Approvals()
}

// Decide records the client's verdict. A rejection keeps the item in the
// queue as "Changes Requested" with the feedback attached.
func (s *workspaceService) Decide(id string, approve bool, feedback string) (models.ApprovalItem, error) {
	ok := s.store.Workspace.UpdateApproval(id, func(a *models.ApprovalItem) {
		if approve {
			a.Status = models.ApprovalApproved
			a.Feedback = ""
		} else {
			a.Status = models.ApprovalChangesRequested
			a.Feedback = feedback
		}
	})
	if !ok {
		return models.ApprovalItem{}, ErrNotFound
	}
	for _, a := range s.store.Workspace.Approvals() {
		if a.ID == id {
			if approve {
				s.notifier.Success("Approved: " + a.Title)
			} else {
				s.notifier.Info("Changes requested: " + a.Title)
			}
			return a, nil
		}
	}
	return models.ApprovalItem{}, ErrNotFound
}

func (s *workspaceService) Resources() []models.Resource {
	return s.store.Workspace.Resources()
}
