package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencyhub/internal/models"
)

func TestAuthStateRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	state := models.AuthState{
		IsAuthenticated: true,
		User: &models.UserProfile{
			ID:       "u1",
			UserName: "Alex Mitchell",
			Email:    "alex@nexusagency.com",
			Role:     models.RoleAgencyAdmin,
		},
	}
	require.NoError(t, fs.SaveAuth(state))

	loaded, err := fs.LoadAuth()
	require.NoError(t, err)
	assert.True(t, loaded.IsAuthenticated)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "u1", loaded.User.ID)
	assert.Equal(t, models.RoleAgencyAdmin, loaded.User.Role)
}

func TestLoadAuthWithoutSessionIsZeroState(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	state, err := fs.LoadAuth()
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestClearAuthIsIdempotent(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.SaveAuth(models.AuthState{IsAuthenticated: true}))
	require.NoError(t, fs.ClearAuth())
	require.NoError(t, fs.ClearAuth())

	state, err := fs.LoadAuth()
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)
}

func TestPasswordHashNeverPersisted(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.SaveAuth(models.AuthState{
		IsAuthenticated: true,
		User:            &models.UserProfile{ID: "u1", PasswordHash: "$2a$10$secret"},
	}))

	loaded, err := fs.LoadAuth()
	require.NoError(t, err)
	require.NotNil(t, loaded.User)
	assert.Empty(t, loaded.User.PasswordHash)
}
