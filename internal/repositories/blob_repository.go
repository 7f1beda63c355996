package repositories

import (
	"context"

	"tamrah/internal/models"
)

// BlobRepository stores uploaded objects under caller-chosen keys.
type BlobRepository interface {
	// PutIfAbsent stores blob under blob.Key. It returns models.ErrConflict
	// if the key is already taken and never overwrites.
	PutIfAbsent(ctx context.Context, blob *models.Blob) error
	// Get returns the blob stored under key or models.ErrNotFound.
	Get(ctx context.Context, key string) (*models.Blob, error)
}
