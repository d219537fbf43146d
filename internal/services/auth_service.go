package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"agencyhub/internal/middleware"
	"agencyhub/internal/models"
	"agencyhub/internal/session"
	"agencyhub/internal/store"
)

type AuthService interface {
	Login(email, password string) (string, models.UserProfile, error)
	Logout() error
	Session() (models.AuthState, error)
	UpdateProfile(userID string, apply func(*models.UserProfile)) (models.UserProfile, error)
}

type authService struct {
	store    *store.Store
	sessions *session.FileStore
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(st *store.Store, sessions *session.FileStore, secret []byte, ttl time.Duration) AuthService {
	return &authService{store: st, sessions: sessions, secret: secret, ttl: ttl}
}

// Login verifies the credentials, issues a signed token and persists the
// auth state so a restarted server still reports the session.
func (s *authService) Login(email, password string) (string, models.UserProfile, error) {
	user, ok := s.store.Users.GetByEmail(email)
	if !ok {
		return "", models.UserProfile{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.UserProfile{}, ErrInvalidCredentials
	}

	now := time.Now()
	claims := &middleware.Claims{
		UserID:      user.ID,
		DisplayName: user.UserName,
		Role:        user.Role,
		CompanyName: user.CompanyName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", models.UserProfile{}, fmt.Errorf("sign token: %w", err)
	}

	if err := s.sessions.SaveAuth(models.AuthState{IsAuthenticated: true, User: &user}); err != nil {
		return "", models.UserProfile{}, fmt.Errorf("persist session: %w", err)
	}
	return token, user, nil
}

func (s *authService) Logout() error {
	return s.sessions.ClearAuth()
}

func (s *authService) Session() (models.AuthState, error) {
	return s.sessions.LoadAuth()
}

func (s *authService) UpdateProfile(userID string, apply func(*models.UserProfile)) (models.UserProfile, error) {
	if ok := s.store.Users.Update(userID, apply); !ok {
		return models.UserProfile{}, ErrNotFound
	}
	user, _ := s.store.Users.Get(userID)

	// Keep the persisted blob in step with the profile it mirrors.
	if state, err := s.sessions.LoadAuth(); err == nil && state.IsAuthenticated && state.User != nil && state.User.ID == userID {
		state.User = &user
		if err := s.sessions.SaveAuth(state); err != nil {
			return models.UserProfile{}, fmt.Errorf("persist session: %w", err)
		}
	}
	return user, nil
}
