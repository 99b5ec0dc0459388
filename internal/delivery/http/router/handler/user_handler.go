// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"todo/internal/delivery/http/response"
	"todo/internal/domain/entity"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// identityView is the wire shape of an authenticated identity. The password
// hash never appears here.
type identityView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// authView pairs the identity with the session cookie string the client
// stores. Clients that manage the cookie themselves read it from the body;
// browser clients get the same value via the Set-Cookie header.
type authView struct {
	User   identityView `json:"user"`
	Cookie string       `json:"cookie"`
}

func toIdentityView(identity *entity.Identity) identityView {
	return identityView{
		ID:        identity.ID.String(),
		Username:  identity.Username,
		Email:     identity.Email,
		CreatedAt: identity.CreatedAt,
	}
}

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Set-Cookie", output.Cookie)

	return response.Success(c, http.StatusCreated, authView{
		User:   toIdentityView(output.Identity),
		Cookie: output.Cookie,
	}, "User registered successfully")
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Set-Cookie", output.Cookie)

	return response.Success(c, http.StatusOK, authView{
		User:   toIdentityView(output.Identity),
		Cookie: output.Cookie,
	}, "Login successful")
}

// Logout revokes the current session where the strategy supports it and
// always hands back the clearing cookie, even for anonymous callers.
func (h *UserHandler) Logout(c echo.Context) error {
	clearing := h.uc.Logout(c.Request().Context(), c.Request().Header.Get("Cookie"))

	c.Response().Header().Set("Set-Cookie", clearing)

	return response.Success(c, http.StatusOK, map[string]string{"cookie": clearing}, "Logout successful")
}

// Me returns the caller's identity, or null when the request carries no
// usable session. This endpoint never fails on bad credentials.
func (h *UserHandler) Me(c echo.Context) error {
	identity, err := h.uc.Authenticate(c.Request().Context(), c.Request().Header.Get("Cookie"))
	if err != nil {
		return errors.WithStack(err)
	}

	if identity == nil {
		return response.Success(c, http.StatusOK, nil, "Not authenticated")
	}

	return response.Success(c, http.StatusOK, toIdentityView(identity), "Identity retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
