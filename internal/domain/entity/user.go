// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// PasswordHash is the only secret-adjacent field and never leaves the
// persistence and authentication layers.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Unique public handle, chosen at registration.
	Email        string    // The user's login identifier, unique across accounts.
	PasswordHash string    // bcrypt digest of the user's password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity is the authenticated view of a user, produced by the auth gate
// after a credential has been resolved and re-checked against persistence.
// It deliberately omits the password hash.
type Identity struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

// IdentityOf derives an Identity from a freshly loaded user record.
func IdentityOf(user *User) *Identity {
	return &Identity{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
