package middleware

import (
	"todo/internal/domain/entity"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// KeyIdentity is the echo.Context key under which the authenticated
// identity is stored for handlers.
const KeyIdentity = "identity"

// AuthMiddleware gates protected routes on a valid session cookie.
type AuthMiddleware struct {
	uc usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(uc usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{uc: uc}
}

// Authenticate resolves the request's Cookie header to an identity and
// stores it on the context. Requests without a usable session are rejected
// before the handler runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.uc.RequireAuthenticated(c.Request().Context(), c.Request().Header.Get("Cookie"))
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(KeyIdentity, identity)

		return next(c)
	}
}

// IdentityFrom extracts the authenticated identity a previous Authenticate
// call stored on the context. Returns nil when the route is unprotected or
// authentication did not run.
func IdentityFrom(c echo.Context) *entity.Identity {
	identity, ok := c.Get(KeyIdentity).(*entity.Identity)
	if !ok {
		return nil
	}

	return identity
}
