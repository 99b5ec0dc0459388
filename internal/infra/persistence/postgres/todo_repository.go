package postgres

import (
	"context"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// todoRepository implements the domain.TodoRepository interface using GORM.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

// FindByID retrieves a single todo by its unique ID.
func (repo *todoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	var todoM model.TodoModel
	if err := repo.db.WithContext(ctx).First(&todoM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo by id")
	}

	return toTodoDomain(&todoM), nil
}

// FindByUserID retrieves all todos owned by a user, oldest first.
func (repo *todoRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Todo, error) {
	var todoMs []model.TodoModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&todoMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list todos by user id")
	}

	todos := make([]*entity.Todo, 0, len(todoMs))
	for i := range todoMs {
		todos = append(todos, toTodoDomain(&todoMs[i]))
	}

	return todos, nil
}

// Create persists a new todo entity to the database.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.ID = todoM.ID
	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

// Update modifies an existing todo entity in the database.
func (repo *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	result := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Where("id = ?", todo.ID).
		Updates(map[string]any{
			"title":       todoM.Title,
			"description": todoM.Description,
			"completed":   todoM.Completed,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// Delete removes a todo by its ID. Comments cascade at the database level.
func (repo *todoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.TodoModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// toTodoDomain converts a GORM TodoModel to a domain Todo entity.
func toTodoDomain(data *model.TodoModel) *entity.Todo {
	if data == nil {
		return nil
	}

	return &entity.Todo{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Completed:   data.Completed,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTodoDomain converts a domain Todo entity to a GORM TodoModel for persistence.
func fromTodoDomain(data *entity.Todo) *model.TodoModel {
	if data == nil {
		return nil
	}

	return &model.TodoModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Completed:   data.Completed,
	}
}
