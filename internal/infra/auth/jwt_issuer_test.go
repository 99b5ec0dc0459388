package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain/service"
)

func testClaims() service.Claims {
	return service.Claims{
		UserID:   uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func TestJWTIssuer_IssueAndResolve(t *testing.T) {
	issuer, err := NewJWTIssuer(testConfig())
	require.NoError(t, err)

	claims := testClaims()
	token, err := issuer.Issue(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := issuer.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, resolved.UserID)
	assert.Equal(t, claims.Username, resolved.Username)
	assert.Equal(t, claims.Email, resolved.Email)
}

func TestJWTIssuer_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.TokenTTL = -time.Second // already expired at issuance

	issuer, err := NewJWTIssuer(cfg)
	require.NoError(t, err)

	token, err := issuer.Issue(testClaims())
	require.NoError(t, err)

	_, err = issuer.Resolve(token)
	assert.ErrorIs(t, err, service.ErrCredentialInvalid)
}

func TestJWTIssuer_WrongSecret(t *testing.T) {
	issuer, err := NewJWTIssuer(testConfig())
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.Auth.Secret = "a-different-secret"
	other, err := NewJWTIssuer(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(testClaims())
	require.NoError(t, err)

	_, err = other.Resolve(token)
	assert.ErrorIs(t, err, service.ErrCredentialInvalid)
}

func TestJWTIssuer_TamperedToken(t *testing.T) {
	issuer, err := NewJWTIssuer(testConfig())
	require.NoError(t, err)

	token, err := issuer.Issue(testClaims())
	require.NoError(t, err)

	_, err = issuer.Resolve(token + "x")
	assert.ErrorIs(t, err, service.ErrCredentialInvalid)

	_, err = issuer.Resolve("not-a-token")
	assert.ErrorIs(t, err, service.ErrCredentialInvalid)

	_, err = issuer.Resolve("")
	assert.ErrorIs(t, err, service.ErrCredentialInvalid)
}

func TestJWTIssuer_RequiresSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Secret = ""

	_, err := NewJWTIssuer(cfg)
	assert.Error(t, err)
}

func TestJWTIssuer_RevokeIsNoop(t *testing.T) {
	issuer, err := NewJWTIssuer(testConfig())
	require.NoError(t, err)

	token, err := issuer.Issue(testClaims())
	require.NoError(t, err)

	// Stateless tokens cannot be revoked; the token stays valid.
	issuer.Revoke(token)

	_, err = issuer.Resolve(token)
	assert.NoError(t, err)
}
