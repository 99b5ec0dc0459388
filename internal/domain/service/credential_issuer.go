package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrCredentialInvalid is returned by Resolve for any credential that cannot
// be trusted: bad signature, wrong issuer, expired, revoked, or unknown.
// Callers get no finer-grained detail than this.
var ErrCredentialInvalid = errors.New("credential invalid")

// Claims are the identity fields embedded in a session credential. They are
// only trusted far enough to look the user up again; authoritative identity
// always comes from a fresh persistence read.
type Claims struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

// CredentialIssuer creates and resolves the opaque credential string that
// proves identity across requests. Two interchangeable strategies implement
// it: a stateless signed token and a server-side session registry. Callers
// are strategy-agnostic.
type CredentialIssuer interface {
	// Issue creates a new credential carrying the given claims.
	Issue(claims Claims) (string, error)

	// Resolve returns the claims carried by a credential, or
	// ErrCredentialInvalid. Verification is atomic: partial trust is never
	// granted.
	Resolve(credential string) (*Claims, error)

	// Revoke invalidates a credential where the strategy supports it.
	// The signed-token strategy has nothing to revoke and treats this as a
	// no-op; such tokens die only by expiry or secret rotation.
	Revoke(credential string)
}
