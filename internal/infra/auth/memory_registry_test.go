package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain/service"
)

func TestMemoryRegistry_IssueResolveRevoke(t *testing.T) {
	registry := NewMemoryRegistry(testConfig())
	defer registry.Close(context.Background())

	claims := testClaims()
	key, err := registry.Issue(claims)
	require.NoError(t, err)
	require.Len(t, key, registryKeyBytes*2) // hex encoding doubles the length

	resolved, err := registry.Resolve(key)
	require.NoError(t, err)
	assert.Equal(t, claims, *resolved)

	registry.Revoke(key)

	_, err = registry.Resolve(key)
	assert.ErrorIs(t, err, service.ErrCredentialInvalid)
}

func TestMemoryRegistry_UnknownKey(t *testing.T) {
	registry := NewMemoryRegistry(testConfig())
	defer registry.Close(context.Background())

	_, err := registry.Resolve("no-such-key")
	assert.ErrorIs(t, err, service.ErrCredentialInvalid)
}

func TestMemoryRegistry_KeysAreUnique(t *testing.T) {
	registry := NewMemoryRegistry(testConfig())
	defer registry.Close(context.Background())

	seen := make(map[string]bool)
	for range 100 {
		key, err := registry.Issue(testClaims())
		require.NoError(t, err)
		require.False(t, seen[key], "duplicate session key issued")
		seen[key] = true
	}
}

func TestMemoryRegistry_ExpiredEntry(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.TokenTTL = -time.Second

	registry := NewMemoryRegistry(cfg)
	defer registry.Close(context.Background())

	key, err := registry.Issue(testClaims())
	require.NoError(t, err)

	_, err = registry.Resolve(key)
	assert.ErrorIs(t, err, service.ErrCredentialInvalid)
}

func TestMemoryRegistry_SweeperEvictsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.TokenTTL = time.Millisecond
	cfg.Auth.RegistrySweep = 10 * time.Millisecond

	registry := NewMemoryRegistry(cfg)
	defer registry.Close(context.Background())

	_, err := registry.Issue(testClaims())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return registry.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewMemoryRegistry(testConfig())
	defer registry.Close(context.Background())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				key, err := registry.Issue(testClaims())
				assert.NoError(t, err)

				_, err = registry.Resolve(key)
				assert.NoError(t, err)

				registry.Revoke(key)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, registry.Len())
}
