// Package session persists the authenticated-user blob. This is the only
// durable state in the system: one key holding the serialized auth state,
// the local-storage contract of the original dashboard.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"agencyhub/internal/models"
)

const authKey = "nexus_auth"

// FileStore is a tiny file-backed key-value store with one JSON document
// per key.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = ".session"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("session dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key)+".json")
}

func (s *FileStore) put(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

func (s *FileStore) get(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

func (s *FileStore) delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SaveAuth persists the auth state under the single session key.
func (s *FileStore) SaveAuth(state models.AuthState) error {
	return s.put(authKey, state)
}

// LoadAuth returns the persisted auth state, or a zero state when no
// session was ever written.
func (s *FileStore) LoadAuth() (models.AuthState, error) {
	var state models.AuthState
	ok, err := s.get(authKey, &state)
	if err != nil {
		return models.AuthState{}, err
	}
	if !ok {
		return models.AuthState{}, nil
	}
	return state, nil
}

// ClearAuth removes the session key (logout).
func (s *FileStore) ClearAuth() error {
	return s.delete(authKey)
}
