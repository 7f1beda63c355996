package services

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"tamrah/internal/logging"
	"tamrah/internal/metrics"
	"tamrah/internal/models"
	"tamrah/internal/repositories"
	"tamrah/internal/validation"
)

// EventPublisher publishes catalog events. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// DateTypeService handles business logic related to catalog records.
type DateTypeService struct {
	repo      repositories.DateTypeRepository
	publisher EventPublisher
}

// NewDateTypeService creates a new DateTypeService. publisher may be nil,
// in which case no catalog events are emitted.
func NewDateTypeService(repo repositories.DateTypeRepository, publisher EventPublisher) *DateTypeService {
	return &DateTypeService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllDateTypes retrieves all date types, premium first then sweetest first.
func (s *DateTypeService) GetAllDateTypes(ctx context.Context) ([]models.DateType, error) {
	return s.repo.GetAll(ctx)
}

// GetDateTypeByID retrieves a single date type by its ID.
func (s *DateTypeService) GetDateTypeByID(ctx context.Context, id uint) (*models.DateType, error) {
	return s.repo.GetByID(ctx, id)
}

// GetLocalizedCatalog returns the full catalog projected onto lang.
func (s *DateTypeService) GetLocalizedCatalog(ctx context.Context, lang models.Language) ([]models.DateTypeView, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.DateTypeView, 0, len(all))
	for _, dt := range all {
		views = append(views, dt.Localize(lang))
	}
	return views, nil
}

// CreateDateType validates in and stores it as a new record.
func (s *DateTypeService) CreateDateType(ctx context.Context, in models.DateTypeInput) (*models.DateType, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	dt := in.ToDateType()
	if err := s.repo.Create(ctx, &dt); err != nil {
		return nil, err
	}
	metrics.CatalogMutations.WithLabelValues("create").Inc()
	s.publish(models.EventDateTypeCreated, dt.ID, dt.NameEn)
	return &dt, nil
}

// UpdateDateType replaces every mutable field of record id with in.
func (s *DateTypeService) UpdateDateType(ctx context.Context, id uint, in models.DateTypeInput) (*models.DateType, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	dt := in.ToDateType()
	dt.ID = id
	updated, err := s.repo.Update(ctx, id, &dt)
	if err != nil {
		return nil, err
	}
	metrics.CatalogMutations.WithLabelValues("update").Inc()
	s.publish(models.EventDateTypeUpdated, updated.ID, updated.NameEn)
	return updated, nil
}

// PatchDateType applies a partial update. The merged record must still
// satisfy the full record contract.
func (s *DateTypeService) PatchDateType(ctx context.Context, id uint, patch models.DateTypePatch) (*models.DateType, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.UpdateDateType(ctx, id, patch.Apply(*current))
}

// DeleteDateType deletes a date type by its ID. Deleting an unknown ID succeeds.
func (s *DateTypeService) DeleteDateType(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.CatalogMutations.WithLabelValues("delete").Inc()
	s.publish(models.EventDateTypeDeleted, id, "")
	return nil
}

// SeedIfEmpty stores seed when the catalog has no records yet.
func (s *DateTypeService) SeedIfEmpty(ctx context.Context, seed []models.DateTypeInput) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	created := 0
	for _, in := range seed {
		if _, err := s.CreateDateType(ctx, in); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *DateTypeService) publish(event string, id uint, name string) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(models.CatalogEvent{
		ID:         id,
		Event:      event,
		NameEn:     name,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		logging.Error().Err(err).Str("event", event).Msg("Failed to marshal catalog event")
		return
	}
	if err := s.publisher.Publish(event, body); err != nil {
		metrics.EventPublishFailures.Inc()
		logging.Warn().Err(err).Str("event", event).Uint("id", id).Msg("Failed to publish catalog event")
	}
}
