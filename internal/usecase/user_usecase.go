// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"todo/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the authenticated identity together with the cookie
// string the client stores. The raw credential is never exposed separately.
type AuthOutput struct {
	Identity *entity.Identity
	Cookie   string
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and issues its first credential.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a new session credential.
	// Failures are uniformly "invalid email or password".
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout revokes the session where the strategy supports it and
	// returns the cookie string that clears the client's session.
	Logout(ctx context.Context, rawCookieHeader string) string

	// Authenticate resolves the request's cookie header to an identity.
	// Every failure mode (absent, invalid, expired, user deleted) yields a
	// nil identity with no error; errors are reserved for infrastructure
	// faults.
	Authenticate(ctx context.Context, rawCookieHeader string) (*entity.Identity, error)

	// RequireAuthenticated is Authenticate for protected operations: an
	// unauthenticated request surfaces ErrUnauthenticated so callers can
	// short-circuit uniformly.
	RequireAuthenticated(ctx context.Context, rawCookieHeader string) (*entity.Identity, error)
}
