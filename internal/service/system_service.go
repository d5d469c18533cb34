package service

import (
	"context"

	"github.com/mvaneerd/investment-tracker-backend/internal/storage"
)

// SystemService handles system-level operations such as health checks.
type SystemService struct {
	store storage.Provider
}

// NewSystemService creates a new SystemService with the provided storage backend.
func NewSystemService(store storage.Provider) *SystemService {
	return &SystemService{store: store}
}

// CheckHealth reports whether the storage backend is reachable.
func (s *SystemService) CheckHealth(ctx context.Context) error {
	return s.store.Ping(ctx)
}
