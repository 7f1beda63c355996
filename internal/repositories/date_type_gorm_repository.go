package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tamrah/internal/models"
	"tamrah/internal/validation"
)

// GORMDateTypeRepository is a GORM implementation of DateTypeRepository.
type GORMDateTypeRepository struct {
	db *gorm.DB
}

// NewGORMDateTypeRepository creates a new instance of GORMDateTypeRepository.
func NewGORMDateTypeRepository(db *gorm.DB) *GORMDateTypeRepository {
	return &GORMDateTypeRepository{
		db: db,
	}
}

// Migrate creates or updates the date_types table.
func (r *GORMDateTypeRepository) Migrate() error {
	if err := r.db.AutoMigrate(&models.DateType{}); err != nil {
		return fmt.Errorf("failed to migrate date_types: %w", err)
	}
	return nil
}

// GetAll retrieves all date types from the database.
func (r *GORMDateTypeRepository) GetAll(ctx context.Context) ([]models.DateType, error) {
	var dateTypes []models.DateType
	err := r.db.WithContext(ctx).
		Order("is_premium DESC").
		Order("sweetness_level DESC").
		Order("id ASC").
		Find(&dateTypes).Error
	if err != nil {
		return nil, models.NewStorageError("list date types", err)
	}
	for i := range dateTypes {
		if err := checkRecord(&dateTypes[i]); err != nil {
			return nil, err
		}
	}
	return dateTypes, nil
}

// GetByID retrieves a single date type by its ID from the database.
func (r *GORMDateTypeRepository) GetByID(ctx context.Context, id uint) (*models.DateType, error) {
	var dt models.DateType
	if err := r.db.WithContext(ctx).First(&dt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("date type with ID %d: %w", id, models.ErrNotFound)
		}
		return nil, models.NewStorageError(fmt.Sprintf("get date type %d", id), err)
	}
	if err := checkRecord(&dt); err != nil {
		return nil, err
	}
	return &dt, nil
}

// Create creates a new date type in the database.
func (r *GORMDateTypeRepository) Create(ctx context.Context, dt *models.DateType) error {
	dt.ID = 0
	if err := r.db.WithContext(ctx).Create(dt).Error; err != nil {
		return models.NewStorageError("create date type", err)
	}
	return nil
}

// Update replaces every mutable column of an existing date type in a
// single UPDATE statement and returns the stored result.
func (r *GORMDateTypeRepository) Update(ctx context.Context, id uint, dt *models.DateType) (*models.DateType, error) {
	res := r.db.WithContext(ctx).
		Model(&models.DateType{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(dt)
	if res.Error != nil {
		return nil, models.NewStorageError(fmt.Sprintf("update date type %d", id), res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("date type with ID %d not found for update: %w", id, models.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// Delete deletes a date type by its ID from the database.
func (r *GORMDateTypeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.DateType{}, "id = ?", id).Error; err != nil {
		return models.NewStorageError(fmt.Sprintf("delete date type %d", id), err)
	}
	return nil
}

// Count returns the number of stored date types.
func (r *GORMDateTypeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.DateType{}).Count(&n).Error; err != nil {
		return 0, models.NewStorageError("count date types", err)
	}
	return n, nil
}

// checkRecord rejects rows that no longer satisfy the record contract.
func checkRecord(dt *models.DateType) error {
	if err := validation.Struct(dt); err != nil {
		return models.NewStorageError(fmt.Sprintf("read date type %d", dt.ID), err)
	}
	return nil
}
