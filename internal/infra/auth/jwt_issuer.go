package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"todo/config"
	"todo/internal/domain/service"
)

// TokenIssuer is the issuer claim stamped into every session token.
const TokenIssuer = "todo-app"

// sessionClaims is the JWT payload for the signed-token strategy.
type sessionClaims struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	jwt.RegisteredClaims
}

// jwtIssuer is the stateless signed-token strategy: the credential carries
// its own identity and expiry, signed with a server-held secret. Nothing is
// stored server-side, so it scales horizontally for free; the trade-off is
// that a token can only be invalidated by expiry or secret rotation.
type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTIssuer builds the signed-token strategy from configuration.
// An empty secret is refused outright; config validation additionally
// rejects placeholder secrets in production.
func NewJWTIssuer(cfg *config.Config) (service.CredentialIssuer, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	return &jwtIssuer{
		secret: []byte(cfg.Auth.Secret),
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue creates a signed token carrying the claims, valid for the
// configured TTL (7 days by default).
func (s *jwtIssuer) Issue(claims service.Claims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	return token.SignedString(s.secret)
}

// Resolve verifies signature, issuer and expiry in one pass. Any failure
// collapses to ErrCredentialInvalid; callers never learn which check failed.
func (s *jwtIssuer) Resolve(credential string) (*service.Claims, error) {
	parsed := &sessionClaims{}
	token, err := jwt.ParseWithClaims(credential, parsed, s.keyFunc,
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, service.ErrCredentialInvalid
	}

	return &service.Claims{
		UserID:   parsed.UserID,
		Username: parsed.Username,
		Email:    parsed.Email,
	}, nil
}

// Revoke is a no-op: signed tokens die only by expiry or secret rotation.
func (s *jwtIssuer) Revoke(string) {}

func (s *jwtIssuer) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}
