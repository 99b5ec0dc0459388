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

// todoService implements the TodoUsecase interface.
type todoService struct {
	todoRepo repository.TodoRepository
	guard    *service.OwnershipGuard
	logger   *slog.Logger
}

// TodoServiceParams holds dependencies for todoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TodoRepo repository.TodoRepository
	Guard    *service.OwnershipGuard
	Logger   *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		todoRepo: params.TodoRepo,
		guard:    params.Guard,
		logger:   params.Logger,
	}
}

func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the caller's own todos, oldest first.
func (srv *todoService) List(ctx context.Context, identity *entity.Identity) ([]*entity.Todo, error) {
	todos, err := srv.todoRepo.FindByUserID(ctx, identity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	return todos, nil
}

// Get loads a todo and checks ownership. A foreign todo is reported exactly
// like a missing one.
func (srv *todoService) Get(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Todo, error) {
	return srv.loadOwned(ctx, identity, id)
}

// Create adds a new todo owned by the caller.
func (srv *todoService) Create(ctx context.Context, identity *entity.Identity, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	todo := &entity.Todo{
		UserID:      identity.ID,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := srv.todoRepo.Create(ctx, todo); err != nil {
		srv.log(ctx).Error("Failed to create todo", slog.Any("userID", identity.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create todo")
	}
	srv.log(ctx).Debug("Todo created", slog.Any("todoID", todo.ID), slog.Any("userID", identity.ID))

	return todo, nil
}

// Update rewrites the title and description of an owned todo.
func (srv *todoService) Update(ctx context.Context, identity *entity.Identity, id uuid.UUID, input *usecase.UpdateTodoInput) (*entity.Todo, error) {
	todo, err := srv.loadOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	todo.Title = input.Title
	todo.Description = input.Description

	if err := srv.todoRepo.Update(ctx, todo); err != nil {
		return nil, errors.Wrap(err, "failed to update todo")
	}

	return todo, nil
}

// ToggleComplete flips the completed flag of an owned todo.
func (srv *todoService) ToggleComplete(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Todo, error) {
	todo, err := srv.loadOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	todo.Completed = !todo.Completed

	if err := srv.todoRepo.Update(ctx, todo); err != nil {
		return nil, errors.Wrap(err, "failed to toggle todo")
	}

	return todo, nil
}

// Delete removes an owned todo. Comments cascade at the database level.
func (srv *todoService) Delete(ctx context.Context, identity *entity.Identity, id uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, identity, id); err != nil {
		return err
	}

	if err := srv.todoRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete todo")
	}
	srv.log(ctx).Debug("Todo deleted", slog.Any("todoID", id), slog.Any("userID", identity.ID))

	return nil
}

// loadOwned fetches a todo and runs the ownership guard. Both "missing" and
// "not yours" collapse into the same not-found error.
func (srv *todoService) loadOwned(ctx context.Context, identity *entity.Identity, id uuid.UUID) (*entity.Todo, error) {
	todo, err := srv.todoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("todo not found or access denied")
		}

		return nil, errors.Wrap(err, "failed to find todo")
	}

	if err := srv.guard.Authorize(identity, todo.UserID); err != nil {
		return nil, err
	}

	return todo, nil
}
