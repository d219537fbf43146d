package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencyhub/internal/middleware"
	"agencyhub/internal/models"
	"agencyhub/internal/session"
	"agencyhub/internal/store"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	sessions, err := session.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewAuthService(store.New(), sessions, []byte("test-secret"), time.Hour)
}

func TestLoginIssuesTokenAndPersistsSession(t *testing.T) {
	svc := newAuthService(t)

	token, user, err := svc.Login(store.DemoClientEmail, store.DemoClientPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, user.Role)
	assert.Equal(t, "Acme Corp", user.CompanyName)

	claims := &middleware.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleClient, claims.Role)

	state, err := svc.Session()
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, user.ID, state.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(store.DemoAgencyEmail, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	svc := newAuthService(t)

	_, user, err := svc.Login("ALEX@nexusagency.com", store.DemoAgencyPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAgencyAdmin, user.Role)
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(store.DemoAgencyEmail, store.DemoAgencyPassword)
	require.NoError(t, err)
	require.NoError(t, svc.Logout())

	state, err := svc.Session()
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)
}
