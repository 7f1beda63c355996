package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tamrah/internal/models"
)

// RedisPreferenceRepository is a Redis implementation of PreferenceRepository.
type RedisPreferenceRepository struct {
	rdb *redis.Client
}

// NewRedisPreferenceRepository creates a new instance of RedisPreferenceRepository.
func NewRedisPreferenceRepository(rdb *redis.Client) *RedisPreferenceRepository {
	return &RedisPreferenceRepository{rdb: rdb}
}

// Get reads a preference with GET.
func (r *RedisPreferenceRepository) Get(ctx context.Context, clientID, key string) (string, error) {
	val, err := r.rdb.Get(ctx, preferenceKey(clientID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("preference %s for client %s: %w", key, clientID, models.ErrNotFound)
	}
	if err != nil {
		return "", models.NewStorageError("get preference", err)
	}
	return val, nil
}

// Set writes a preference with SET and an optional expiry.
func (r *RedisPreferenceRepository) Set(ctx context.Context, clientID, key, value string, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, preferenceKey(clientID, key), value, ttl).Err(); err != nil {
		return models.NewStorageError("set preference", err)
	}
	return nil
}
