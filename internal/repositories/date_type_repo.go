package repositories

import (
	"context"

	"tamrah/internal/models"
)

// DateTypeRepository defines the interface for catalog data access.
type DateTypeRepository interface {
	// GetAll returns every record, premium first then sweetest first.
	GetAll(ctx context.Context) ([]models.DateType, error)
	GetByID(ctx context.Context, id uint) (*models.DateType, error)
	// Create assigns ID and timestamps on dt.
	Create(ctx context.Context, dt *models.DateType) error
	// Update replaces every field of record id except ID and CreatedAt.
	Update(ctx context.Context, id uint, dt *models.DateType) (*models.DateType, error)
	// Delete removes record id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
