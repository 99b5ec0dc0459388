package impl

import (
	"context"
	"log/slog"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/usecase"

	deliverycontext "todo/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface. Every operation
// resolves the parent todo first and checks its ownership.
type commentService struct {
	todoRepo    repository.TodoRepository
	commentRepo repository.CommentRepository
	guard       *service.OwnershipGuard
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TodoRepo    repository.TodoRepository
	CommentRepo repository.CommentRepository
	Guard       *service.OwnershipGuard
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		todoRepo:    params.TodoRepo,
		commentRepo: params.CommentRepo,
		guard:       params.Guard,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByTodo returns a todo's comments, newest first.
func (srv *commentService) ListByTodo(ctx context.Context, identity *entity.Identity, todoID uuid.UUID) ([]*entity.Comment, error) {
	if err := srv.authorizeTodo(ctx, identity, todoID); err != nil {
		return nil, err
	}

	comments, err := srv.commentRepo.FindByTodoID(ctx, todoID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// Create attaches a comment to an owned todo.
func (srv *commentService) Create(ctx context.Context, identity *entity.Identity, todoID uuid.UUID, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if err := srv.authorizeTodo(ctx, identity, todoID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		TodoID:  todoID,
		Content: input.Content,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		srv.log(ctx).Error("Failed to create comment", slog.Any("todoID", todoID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

// Delete removes a comment after checking ownership of its parent todo.
func (srv *commentService) Delete(ctx context.Context, identity *entity.Identity, commentID uuid.UUID) error {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("comment not found or access denied")
		}

		return errors.Wrap(err, "failed to find comment")
	}

	if err := srv.authorizeTodo(ctx, identity, comment.TodoID); err != nil {
		return err
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		return errors.Wrap(err, "failed to delete comment")
	}

	return nil
}

// authorizeTodo loads the parent todo and runs the ownership guard,
// collapsing "missing todo" and "foreign todo" into the same error.
func (srv *commentService) authorizeTodo(ctx context.Context, identity *entity.Identity, todoID uuid.UUID) error {
	todo, err := srv.todoRepo.FindByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("todo not found or access denied")
		}

		return errors.Wrap(err, "failed to find todo")
	}

	return srv.guard.Authorize(identity, todo.UserID)
}
