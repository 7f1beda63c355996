package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tamrah/internal/models"
)

type preferenceEntry struct {
	value     string
	expiresAt time.Time
}

// MockPreferenceRepository is an in-memory implementation of PreferenceRepository.
type MockPreferenceRepository struct {
	entries map[string]preferenceEntry
	mu      sync.RWMutex
	now     func() time.Time
}

// NewMockPreferenceRepository creates a new instance of MockPreferenceRepository.
func NewMockPreferenceRepository() *MockPreferenceRepository {
	return &MockPreferenceRepository{
		entries: make(map[string]preferenceEntry),
		now:     time.Now,
	}
}

// Get returns an unexpired preference.
func (r *MockPreferenceRepository) Get(ctx context.Context, clientID, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[preferenceKey(clientID, key)]
	if !ok || (!e.expiresAt.IsZero() && !r.now().Before(e.expiresAt)) {
		return "", fmt.Errorf("preference %s for client %s: %w", key, clientID, models.ErrNotFound)
	}
	return e.value, nil
}

// Set stores a preference.
func (r *MockPreferenceRepository) Set(ctx context.Context, clientID, key, value string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := preferenceEntry{value: value}
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}
	r.entries[preferenceKey(clientID, key)] = e
	return nil
}
