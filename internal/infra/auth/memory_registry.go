package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"todo/config"
	"todo/internal/domain/service"
)

const registryKeyBytes = 32 // 256 bits of entropy per session key

type registryEntry struct {
	claims    service.Claims
	expiresAt time.Time
}

// memoryRegistry is the server-side session strategy: Issue hands out an
// opaque random key and keeps the claims in a process-local map. Sessions
// end at logout, expiry, or process restart. The registry is an owned,
// lock-guarded component injected where needed, never package-global state.
type memoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry

	ttl   time.Duration
	sweep time.Duration
	done  chan struct{}
	once  sync.Once
}

// NewMemoryRegistry builds the server-side session strategy. Entries carry
// a TTL and a background sweeper evicts expired ones, keeping the map from
// growing without bound.
func NewMemoryRegistry(cfg *config.Config) *memoryRegistry {
	r := &memoryRegistry{
		entries: make(map[string]registryEntry),
		ttl:     cfg.Auth.TokenTTL,
		sweep:   cfg.Auth.RegistrySweep,
		done:    make(chan struct{}),
	}
	go r.sweeper()

	return r
}

// Issue generates a cryptographically random session key and registers the
// claims under it.
func (r *memoryRegistry) Issue(claims service.Claims) (string, error) {
	buf := make([]byte, registryKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	key := hex.EncodeToString(buf)

	r.mu.Lock()
	r.entries[key] = registryEntry{
		claims:    claims,
		expiresAt: time.Now().Add(r.ttl),
	}
	r.mu.Unlock()

	return key, nil
}

// Resolve looks the key up in the registry. Unknown or expired keys yield
// ErrCredentialInvalid.
func (r *memoryRegistry) Resolve(credential string) (*service.Claims, error) {
	r.mu.RLock()
	entry, ok := r.entries[credential]
	r.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, service.ErrCredentialInvalid
	}

	claims := entry.claims

	return &claims, nil
}

// Revoke deletes the session key, ending the session immediately.
func (r *memoryRegistry) Revoke(credential string) {
	r.mu.Lock()
	delete(r.entries, credential)
	r.mu.Unlock()
}

// Close stops the background sweeper. Safe to call more than once.
func (r *memoryRegistry) Close(context.Context) error {
	r.once.Do(func() { close(r.done) })

	return nil
}

// Len reports the number of live entries. Used by tests and diagnostics.
func (r *memoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

func (r *memoryRegistry) sweeper() {
	ticker := time.NewTicker(r.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case now := <-ticker.C:
			r.mu.Lock()
			for key, entry := range r.entries {
				if now.After(entry.expiresAt) {
					delete(r.entries, key)
				}
			}
			r.mu.Unlock()
		}
	}
}
