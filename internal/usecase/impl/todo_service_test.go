package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"
	"todo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type todoServiceFixtures struct {
	service  usecase.TodoUsecase
	todoRepo *fakeTodoRepo
	owner    *entity.Identity
	stranger *entity.Identity
}

func createTestTodoService(t *testing.T) todoServiceFixtures {
	t.Helper()

	todoRepo := newFakeTodoRepo()
	svc := NewTodoService(TodoServiceParams{
		TodoRepo: todoRepo,
		Guard:    service.NewOwnershipGuard(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return todoServiceFixtures{
		service:  svc,
		todoRepo: todoRepo,
		owner:    &entity.Identity{ID: uuid.New(), Username: "owner"},
		stranger: &entity.Identity{ID: uuid.New(), Username: "stranger"},
	}
}

func TestTodoService_CreateAndList(t *testing.T) {
	t.Parallel()

	fixtures := createTestTodoService(t)
	ctx := context.Background()

	created, err := fixtures.service.Create(ctx, fixtures.owner, &usecase.CreateTodoInput{
		Title:       "buy milk",
		Description: "2 liters",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, fixtures.owner.ID, created.UserID)
	assert.False(t, created.Completed)

	todos, err := fixtures.service.List(ctx, fixtures.owner)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "buy milk", todos[0].Title)

	// The stranger's list is empty; the owner's todo never shows up.
	todos, err = fixtures.service.List(ctx, fixtures.stranger)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestTodoService_OwnershipIndistinguishable(t *testing.T) {
	t.Parallel()

	fixtures := createTestTodoService(t)
	ctx := context.Background()

	created, err := fixtures.service.Create(ctx, fixtures.owner, &usecase.CreateTodoInput{Title: "secret"})
	require.NoError(t, err)

	// A foreign todo and a missing todo produce the same error.
	_, foreignErr := fixtures.service.Get(ctx, fixtures.stranger, created.ID)
	_, missingErr := fixtures.service.Get(ctx, fixtures.owner, uuid.New())

	assert.ErrorIs(t, foreignErr, domainerrors.ErrNotFound)
	assert.ErrorIs(t, missingErr, domainerrors.ErrNotFound)

	// Writes are gated the same way as reads.
	_, err = fixtures.service.Update(ctx, fixtures.stranger, created.ID, &usecase.UpdateTodoInput{Title: "hijacked"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = fixtures.service.ToggleComplete(ctx, fixtures.stranger, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = fixtures.service.Delete(ctx, fixtures.stranger, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	// The owner still sees the untouched todo.
	todo, err := fixtures.service.Get(ctx, fixtures.owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret", todo.Title)
	assert.False(t, todo.Completed)
}

func TestTodoService_UpdateAndToggle(t *testing.T) {
	t.Parallel()

	fixtures := createTestTodoService(t)
	ctx := context.Background()

	created, err := fixtures.service.Create(ctx, fixtures.owner, &usecase.CreateTodoInput{Title: "draft"})
	require.NoError(t, err)

	updated, err := fixtures.service.Update(ctx, fixtures.owner, created.ID, &usecase.UpdateTodoInput{
		Title:       "final",
		Description: "ready",
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, "ready", updated.Description)

	toggled, err := fixtures.service.ToggleComplete(ctx, fixtures.owner, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = fixtures.service.ToggleComplete(ctx, fixtures.owner, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestTodoService_Delete(t *testing.T) {
	t.Parallel()

	fixtures := createTestTodoService(t)
	ctx := context.Background()

	created, err := fixtures.service.Create(ctx, fixtures.owner, &usecase.CreateTodoInput{Title: "ephemeral"})
	require.NoError(t, err)

	require.NoError(t, fixtures.service.Delete(ctx, fixtures.owner, created.ID))

	_, err = fixtures.service.Get(ctx, fixtures.owner, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
