package services

import (
	"context"
	"errors"
	"time"

	"tamrah/internal/models"
	"tamrah/internal/repositories"
	"tamrah/internal/validation"
)

const languagePreferenceKey = "language"

// PreferenceService stores per-client UI preferences.
type PreferenceService struct {
	repo repositories.PreferenceRepository
	ttl  time.Duration
}

// NewPreferenceService creates a new PreferenceService. Preferences expire
// after ttl; zero keeps them forever.
func NewPreferenceService(repo repositories.PreferenceRepository, ttl time.Duration) *PreferenceService {
	return &PreferenceService{repo: repo, ttl: ttl}
}

// GetLanguage returns the stored language for clientID, or the default
// when nothing valid is stored.
func (s *PreferenceService) GetLanguage(ctx context.Context, clientID string) (models.Language, error) {
	if clientID == "" {
		return models.DefaultLanguage, nil
	}
	val, err := s.repo.Get(ctx, clientID, languagePreferenceKey)
	if errors.Is(err, models.ErrNotFound) {
		return models.DefaultLanguage, nil
	}
	if err != nil {
		return "", err
	}
	lang, ok := models.ParseLanguage(val)
	if !ok {
		return models.DefaultLanguage, nil
	}
	return lang, nil
}

// SetLanguage stores the language for clientID.
func (s *PreferenceService) SetLanguage(ctx context.Context, clientID string, pref models.LanguagePreference) (models.Language, error) {
	if err := validation.Struct(pref); err != nil {
		return "", err
	}
	lang, _ := models.ParseLanguage(pref.Language)
	if err := s.repo.Set(ctx, clientID, languagePreferenceKey, string(lang), s.ttl); err != nil {
		return "", err
	}
	return lang, nil
}

// ResolveLanguage picks the language for a request: an explicit request
// value wins, then the stored preference, then the default. An explicit
// but unsupported value is a validation error.
func (s *PreferenceService) ResolveLanguage(ctx context.Context, requested, clientID string) (models.Language, error) {
	if requested != "" {
		lang, ok := models.ParseLanguage(requested)
		if !ok {
			return "", models.NewValidationError("lang", "must be one of [en ar]")
		}
		return lang, nil
	}
	return s.GetLanguage(ctx, clientID)
}
