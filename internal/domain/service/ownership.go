package service

import (
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"

	"github.com/google/uuid"
)

// OwnershipGuard decides whether an authenticated identity may access a
// resource with a given owner. A denial is indistinguishable from the
// resource not existing.
type OwnershipGuard struct{}

// NewOwnershipGuard is the constructor for OwnershipGuard.
func NewOwnershipGuard() *OwnershipGuard {
	return &OwnershipGuard{}
}

// Authorize returns nil when identity owns the resource. On mismatch it
// returns the same not-found error a missing resource produces, so callers
// cannot probe for other users' resources.
func (g *OwnershipGuard) Authorize(identity *entity.Identity, ownerID uuid.UUID) error {
	if identity == nil || identity.ID != ownerID {
		return domainerrors.ErrNotFound.WrapMessage("resource not found or access denied")
	}

	return nil
}
