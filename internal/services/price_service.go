package services

import (
	"context"
	"math"

	"tamrah/internal/models"
	"tamrah/internal/repositories"
	"tamrah/internal/validation"
)

// PriceService computes purchase totals from catalog prices.
type PriceService struct {
	repo repositories.DateTypeRepository
}

// NewPriceService creates a new PriceService.
func NewPriceService(repo repositories.DateTypeRepository) *PriceService {
	return &PriceService{repo: repo}
}

// Quote returns price per kg times quantity, rounded to two decimals.
// The stored catalog price is authoritative.
func (s *PriceService) Quote(ctx context.Context, req models.PriceQuoteRequest) (*models.PriceQuote, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	dt, err := s.repo.GetByID(ctx, req.DateTypeID)
	if err != nil {
		return nil, err
	}
	return &models.PriceQuote{
		DateTypeID: dt.ID,
		Quantity:   req.Quantity,
		PricePerKg: dt.AveragePricePerKg,
		Total:      math.Round(dt.AveragePricePerKg*req.Quantity*100) / 100,
		Currency:   models.Currency,
	}, nil
}
