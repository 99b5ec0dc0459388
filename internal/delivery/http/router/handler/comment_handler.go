package handler

import (
	"log/slog"
	"net/http"
	"time"

	"todo/internal/delivery/http/middleware"
	"todo/internal/delivery/http/response"
	"todo/internal/domain/entity"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// commentView is the wire shape of a comment.
type commentView struct {
	ID        string    `json:"id"`
	TodoID    string    `json:"todoId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCommentView(comment *entity.Comment) commentView {
	return commentView{
		ID:        comment.ID.String(),
		TodoID:    comment.TodoID.String(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// CommentHandler holds dependencies for comment handlers. All routes it
// serves sit behind the auth middleware; access is decided by ownership of
// the parent todo.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListByTodo returns a todo's comments, newest first.
func (h *CommentHandler) ListByTodo(c echo.Context) error {
	todoID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	comments, err := h.uc.ListByTodo(c.Request().Context(), middleware.IdentityFrom(c), todoID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]commentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, toCommentView(comment))
	}

	return response.Success(c, http.StatusOK, views, "Comments retrieved successfully")
}

// Create attaches a comment to a todo the caller owns.
func (h *CommentHandler) Create(c echo.Context) error {
	todoID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	comment, err := h.uc.Create(c.Request().Context(), middleware.IdentityFrom(c), todoID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentView(comment), "Comment created successfully")
}

// Delete removes a comment from a todo the caller owns.
func (h *CommentHandler) Delete(c echo.Context) error {
	commentID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), middleware.IdentityFrom(c), commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
