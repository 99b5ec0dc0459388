package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a note attached to a todo. Comments have no owner of their
// own; access is gated by ownership of the parent todo.
type Comment struct {
	ID        uuid.UUID
	TodoID    uuid.UUID // Parent todo this comment belongs to.
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
