package repositories

import (
	"context"
	"time"
)

// PreferenceRepository is a key-value store for per-client preferences.
type PreferenceRepository interface {
	// Get returns the value stored for clientID and key, or models.ErrNotFound.
	Get(ctx context.Context, clientID, key string) (string, error)
	// Set stores value for clientID and key, expiring after ttl (0 keeps it forever).
	Set(ctx context.Context, clientID, key, value string, ttl time.Duration) error
}

func preferenceKey(clientID, key string) string {
	return "pref:" + clientID + ":" + key
}
