package impl

import (
	"restops/internal/domain/entity"
	"restops/internal/domain/service"
	"restops/internal/usecase"

	"github.com/google/uuid"
)

type presenceService struct {
	registry service.ConnectionRegistry
}

// NewPresenceService creates a new presence service instance
func NewPresenceService(registry service.ConnectionRegistry) usecase.PresenceUsecase {
	return &presenceService{registry: registry}
}

// IsOnline reports whether key currently has a live connection.
func (s *presenceService) IsOnline(key entity.IdentityKey) bool {
	_, ok := s.registry.Lookup(key)

	return ok
}

// OnlineCounts delegates to the registry snapshot.
func (s *presenceService) OnlineCounts(shopID uuid.UUID) entity.OnlineCounts {
	return s.registry.CountOnline(shopID)
}
