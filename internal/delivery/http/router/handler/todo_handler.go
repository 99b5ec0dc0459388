package handler

import (
	"log/slog"
	"net/http"
	"time"

	"todo/internal/delivery/http/middleware"
	"todo/internal/delivery/http/response"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// todoView is the wire shape of a todo.
type todoView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTodoView(todo *entity.Todo) todoView {
	return todoView{
		ID:          todo.ID.String(),
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}

func toTodoViews(todos []*entity.Todo) []todoView {
	views := make([]todoView, 0, len(todos))
	for _, todo := range todos {
		views = append(views, toTodoView(todo))
	}

	return views
}

// pathID parses a UUID path parameter. Malformed IDs surface as not-found
// rather than bad-request so probing with junk IDs looks identical to
// probing with real ones.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound.WrapMessage("malformed resource id")
	}

	return id, nil
}

// TodoHandler holds dependencies for todo handlers. All routes it serves
// sit behind the auth middleware.
type TodoHandler struct {
	uc     usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler, injected by Fx.
func NewTodoHandler(uc usecase.TodoUsecase, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all of the caller's todos.
func (h *TodoHandler) List(c echo.Context) error {
	todos, err := h.uc.List(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTodoViews(todos), "Todos retrieved successfully")
}

// Get returns a single todo by ID.
func (h *TodoHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	todo, err := h.uc.Get(c.Request().Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTodoView(todo), "Todo retrieved successfully")
}

// Create adds a new todo owned by the caller.
func (h *TodoHandler) Create(c echo.Context) error {
	var input *usecase.CreateTodoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	todo, err := h.uc.Create(c.Request().Context(), middleware.IdentityFrom(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTodoView(todo), "Todo created successfully")
}

// Update rewrites a todo's title and description.
func (h *TodoHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateTodoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	todo, err := h.uc.Update(c.Request().Context(), middleware.IdentityFrom(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTodoView(todo), "Todo updated successfully")
}

// ToggleComplete flips a todo's completed flag.
func (h *TodoHandler) ToggleComplete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	todo, err := h.uc.ToggleComplete(c.Request().Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTodoView(todo), "Todo toggled successfully")
}

// Delete removes a todo and its comments.
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), middleware.IdentityFrom(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Todo deleted successfully")
}
