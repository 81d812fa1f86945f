package usecase

import (
	"restops/internal/domain/entity"

	"github.com/google/uuid"
)

// PresenceUsecase answers read-only presence queries from the registry.
type PresenceUsecase interface {
	// IsOnline reports whether key has a live connection.
	IsOnline(key entity.IdentityKey) bool

	// OnlineCounts returns the per-role online snapshot of a shop.
	OnlineCounts(shopID uuid.UUID) entity.OnlineCounts
}
