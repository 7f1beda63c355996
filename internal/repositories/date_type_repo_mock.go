package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"tamrah/internal/models"
)

// MockDateTypeRepository is an in-memory implementation of DateTypeRepository.
type MockDateTypeRepository struct {
	dateTypes map[uint]models.DateType
	nextID    uint
	mu        sync.RWMutex
}

// NewMockDateTypeRepository creates a new instance of MockDateTypeRepository.
func NewMockDateTypeRepository() *MockDateTypeRepository {
	return &MockDateTypeRepository{
		dateTypes: make(map[uint]models.DateType),
		nextID:    1,
	}
}

// GetAll returns all date types, premium first then sweetest first.
func (r *MockDateTypeRepository) GetAll(ctx context.Context) ([]models.DateType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.DateType, 0, len(r.dateTypes))
	for _, dt := range r.dateTypes {
		list = append(list, dt)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.IsPremium != b.IsPremium {
			return a.IsPremium
		}
		if a.SweetnessLevel != b.SweetnessLevel {
			return a.SweetnessLevel > b.SweetnessLevel
		}
		return a.ID < b.ID
	})
	return list, nil
}

// GetByID returns a date type by its ID.
func (r *MockDateTypeRepository) GetByID(ctx context.Context, id uint) (*models.DateType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dt, ok := r.dateTypes[id]
	if !ok {
		return nil, fmt.Errorf("date type with ID %d: %w", id, models.ErrNotFound)
	}
	return &dt, nil
}

// Create adds a new date type.
func (r *MockDateTypeRepository) Create(ctx context.Context, dt *models.DateType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	dt.ID = r.nextID
	dt.CreatedAt = now
	dt.UpdatedAt = now
	r.nextID++
	r.dateTypes[dt.ID] = *dt
	return nil
}

// Update replaces an existing date type, keeping its ID and creation time.
func (r *MockDateTypeRepository) Update(ctx context.Context, id uint, dt *models.DateType) (*models.DateType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.dateTypes[id]
	if !ok {
		return nil, fmt.Errorf("date type with ID %d not found for update: %w", id, models.ErrNotFound)
	}
	updated := *dt
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	if updated.UpdatedAt.Before(existing.UpdatedAt) {
		updated.UpdatedAt = existing.UpdatedAt
	}
	r.dateTypes[id] = updated
	return &updated, nil
}

// Delete removes a date type by its ID.
func (r *MockDateTypeRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.dateTypes, id)
	return nil
}

// Count returns the number of stored date types.
func (r *MockDateTypeRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.dateTypes)), nil
}
