package usecase

import (
	"context"

	"todo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTodoInput defines the data required to create a todo.
type CreateTodoInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
}

// UpdateTodoInput defines the data required to update a todo's text fields.
type UpdateTodoInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
}

// TodoUsecase defines todo operations. Every method takes the caller's
// authenticated identity and enforces ownership before touching data.
type TodoUsecase interface {
	// List returns the caller's todos, oldest first.
	List(ctx context.Context, identity *entity.Identity) ([]*entity.Todo, error)

	// Get returns a single todo the caller owns.
	Get(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Todo, error)

	// Create adds a todo owned by the caller.
	Create(ctx context.Context, identity *entity.Identity, input *CreateTodoInput) (*entity.Todo, error)

	// Update rewrites the title and description of a todo the caller owns.
	Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *UpdateTodoInput) (*entity.Todo, error)

	// ToggleComplete flips the completed flag of a todo the caller owns.
	ToggleComplete(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Todo, error)

	// Delete removes a todo the caller owns, cascading its comments.
	Delete(ctx context.Context, identity *entity.Identity, id uuid.UUID) error
}
