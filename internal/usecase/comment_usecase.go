package usecase

import (
	"context"

	"todo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines the data required to comment on a todo.
type CreateCommentInput struct {
	Content string `json:"content" validate:"required"`
}

// CommentUsecase defines comment operations. Comments carry no owner of
// their own; access is decided by ownership of the parent todo.
type CommentUsecase interface {
	// ListByTodo returns a todo's comments, newest first.
	ListByTodo(ctx context.Context, identity *entity.Identity, todoID uuid.UUID) ([]*entity.Comment, error)

	// Create attaches a comment to a todo the caller owns.
	Create(ctx context.Context, identity *entity.Identity, todoID uuid.UUID, input *CreateCommentInput) (*entity.Comment, error)

	// Delete removes a comment from a todo the caller owns.
	Delete(ctx context.Context, identity *entity.Identity, commentID uuid.UUID) error
}
