package store

import (
	"sync"

	"agencyhub/internal/models"
)

type AssetStore interface {
	All() []models.Asset
	Create(asset models.Asset)
	RenameClient(oldName, newName string) int
}

type assetStore struct {
	mu     sync.RWMutex
	assets []models.Asset
}

func NewAssetStore(seed []models.Asset) AssetStore {
	return &assetStore{assets: append([]models.Asset(nil), seed...)}
}

func (s *assetStore) All() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Asset(nil), s.assets...)
}

func (s *assetStore) Create(asset models.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = append(s.assets, asset)
}

func (s *assetStore) RenameClient(oldName, newName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.assets {
		if s.assets[i].ClientName == oldName {
			s.assets[i].ClientName = newName
			n++
		}
	}
	return n
}
