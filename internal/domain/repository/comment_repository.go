package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// FindByTodoID retrieves all comments on a todo, newest first.
	FindByTodoID(ctx context.Context, todoID uuid.UUID) ([]*entity.Comment, error)

	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
