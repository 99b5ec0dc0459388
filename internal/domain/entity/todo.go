package entity

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a single task item owned by exactly one user. Ownership is the
// unit of access control: every read and write is checked against UserID.
type Todo struct {
	ID          uuid.UUID // The unique identifier for the todo.
	UserID      uuid.UUID // Owner of the todo; checked by the ownership guard.
	Title       string    // Short task title.
	Description string    // Free-form task body, may be empty.
	Completed   bool      // Whether the task has been marked done.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
