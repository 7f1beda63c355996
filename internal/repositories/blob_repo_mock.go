package repositories

import (
	"context"
	"fmt"
	"sync"

	"tamrah/internal/models"
)

// MockBlobRepository is an in-memory implementation of BlobRepository.
type MockBlobRepository struct {
	blobs map[string]models.Blob
	mu    sync.RWMutex
}

// NewMockBlobRepository creates a new instance of MockBlobRepository.
func NewMockBlobRepository() *MockBlobRepository {
	return &MockBlobRepository{
		blobs: make(map[string]models.Blob),
	}
}

// PutIfAbsent stores a copy of blob unless its key is taken.
func (r *MockBlobRepository) PutIfAbsent(ctx context.Context, blob *models.Blob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blobs[blob.Key]; ok {
		return fmt.Errorf("blob %s: %w", blob.Key, models.ErrConflict)
	}
	stored := *blob
	stored.Data = append([]byte(nil), blob.Data...)
	stored.Size = int64(len(stored.Data))
	blob.Size = stored.Size
	r.blobs[blob.Key] = stored
	return nil
}

// Get returns a copy of the blob stored under key.
func (r *MockBlobRepository) Get(ctx context.Context, key string) (*models.Blob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blob, ok := r.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %s: %w", key, models.ErrNotFound)
	}
	blob.Data = append([]byte(nil), blob.Data...)
	return &blob, nil
}
