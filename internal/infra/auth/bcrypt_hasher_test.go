package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{
		Strategy:      config.StrategyJWT,
		Secret:        "test-secret",
		BcryptCost:    4, // minimum cost keeps the suite fast
		TokenTTL:      7 * 24 * time.Hour,
		CookieMaxAge:  86400,
		RegistrySweep: time.Hour,
	}}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, hasher.Check("pw123", hash))
	assert.False(t, hasher.Check("wrongpw", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())

	first, err := hasher.Hash("pw123")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123")
	require.NoError(t, err)

	// Random salt: same input, different digests, both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("pw123", first))
	assert.True(t, hasher.Check("pw123", second))
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	hasher := NewBcryptHasher(testConfig())

	assert.False(t, hasher.Check("pw123", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("pw123", ""))
}
