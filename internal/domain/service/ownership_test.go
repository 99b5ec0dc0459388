package service

import (
	"testing"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipGuard_Authorize(t *testing.T) {
	t.Parallel()

	guard := NewOwnershipGuard()
	ownerID := uuid.New()
	owner := &entity.Identity{ID: ownerID, Username: "owner"}

	t.Run("owner is allowed", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, guard.Authorize(owner, ownerID))
	})

	t.Run("stranger is denied as not found", func(t *testing.T) {
		t.Parallel()

		stranger := &entity.Identity{ID: uuid.New(), Username: "stranger"}
		err := guard.Authorize(stranger, ownerID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("nil identity is denied as not found", func(t *testing.T) {
		t.Parallel()

		err := guard.Authorize(nil, ownerID)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("denial matches missing resource error", func(t *testing.T) {
		t.Parallel()

		// Both failure modes resolve to the same sentinel, so a client
		// cannot tell a foreign resource from a nonexistent one.
		strangerErr := guard.Authorize(&entity.Identity{ID: uuid.New()}, ownerID)
		assert.ErrorIs(t, strangerErr, domainerrors.ErrNotFound)
		assert.Equal(t, domainerrors.ErrNotFound.HTTPCode(), 404)
	})
}
