package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTodoNotFound is returned when a todo does not exist.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the standard operations for todo persistence.
type TodoRepository interface {
	// FindByID retrieves a single todo by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error)

	// FindByUserID retrieves all todos owned by a user, oldest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Todo, error)

	// Create persists a new todo entity to the storage.
	Create(ctx context.Context, todo *entity.Todo) error

	// Update modifies an existing todo entity in the storage.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes a todo by its ID. Comments cascade at the database level.
	Delete(ctx context.Context, id uuid.UUID) error
}
