package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencyhub/internal/models"
	"agencyhub/internal/notify"
	"agencyhub/internal/store"
)

func newWorkspaceService() WorkspaceService {
	return NewWorkspaceService(store.New(), notify.New(notify.DefaultTTL))
}

func TestCompleteOnboardingStep(t *testing.T) {
	svc := newWorkspaceService()

	steps, err := svc.CompleteStep("ob3", true)
	require.NoError(t, err)
	for _, s := range steps {
		if s.ID == "ob3" {
			assert.True(t, s.Completed)
		}
	}

	_, err = svc.CompleteStep("missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApprovalDecisionKeepsFeedbackOnRejection(t *testing.T) {
	svc := newWorkspaceService()

	item, err := svc.Decide("ap1", false, "Logo is too small")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalChangesRequested, item.Status)
	assert.Equal(t, "Logo is too small", item.Feedback)

	item, err = svc.Decide("ap1", true, "")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, item.Status)
	assert.Empty(t, item.Feedback)
}
