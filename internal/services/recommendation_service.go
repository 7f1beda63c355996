package services

import (
	"context"

	"tamrah/internal/metrics"
	"tamrah/internal/models"
	"tamrah/internal/recommend"
	"tamrah/internal/repositories"
	"tamrah/internal/validation"
)

// RecommendationService ranks a fresh catalog snapshot against visitor preferences.
type RecommendationService struct {
	repo repositories.DateTypeRepository
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(repo repositories.DateTypeRepository) *RecommendationService {
	return &RecommendationService{repo: repo}
}

// Recommend validates q, reads the catalog once and returns at most
// recommend.MaxResults records.
func (s *RecommendationService) Recommend(ctx context.Context, q models.RecommendationQuery) ([]models.DateType, error) {
	if err := validation.Struct(q); err != nil {
		return nil, err
	}
	snapshot, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	results := recommend.Recommend(snapshot, q)
	metrics.RecommendationResults.Observe(float64(len(results)))
	return results, nil
}
