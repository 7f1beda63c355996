package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamrah/internal/models"
	"tamrah/internal/repositories"
	"tamrah/internal/services"
)

func seedRepo(t *testing.T, inputs ...models.DateTypeInput) *repositories.MockDateTypeRepository {
	t.Helper()
	repo := repositories.NewMockDateTypeRepository()
	for _, in := range inputs {
		dt := in.ToDateType()
		require.NoError(t, repo.Create(context.Background(), &dt))
	}
	return repo
}

func variant(name string, sweetness int, price float64, premium bool, texture string) models.DateTypeInput {
	in := validInput(name)
	in.SweetnessLevel = sweetness
	in.AveragePricePerKg = price
	in.IsPremium = premium
	in.TextureEn = texture
	return in
}

func TestRecommendationService_Recommend(t *testing.T) {
	repo := seedRepo(t,
		variant("Ajwa", 4, 120, true, "soft and tender"),
		variant("Sukkari", 5, 45, false, "soft"),
		variant("Segai", 3, 40, false, "firm"),
		variant("Khalas", 4, 55, false, "soft and sticky"),
		variant("Safawi", 3, 35, false, "chewy"),
	)
	service := services.NewRecommendationService(repo)

	sweetness := 4
	texture := models.TextureSoft
	budget := 60.0
	results, err := service.Recommend(context.Background(), models.RecommendationQuery{
		SweetnessPreference: &sweetness,
		TexturePreference:   &texture,
		BudgetMax:           &budget,
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Sukkari", results[0].NameEn)
	assert.Equal(t, "Khalas", results[1].NameEn)
}

func TestRecommendationService_EmptyQueryCapsResults(t *testing.T) {
	repo := seedRepo(t,
		variant("A", 1, 10, false, "soft"),
		variant("B", 2, 10, false, "soft"),
		variant("C", 3, 10, false, "soft"),
		variant("D", 4, 10, false, "soft"),
	)
	service := services.NewRecommendationService(repo)

	results, err := service.Recommend(context.Background(), models.RecommendationQuery{})

	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "D", results[0].NameEn)
}

func TestRecommendationService_InvalidQuery(t *testing.T) {
	service := services.NewRecommendationService(repositories.NewMockDateTypeRepository())

	sweetness := 9
	texture := "crunchy"
	_, err := service.Recommend(context.Background(), models.RecommendationQuery{
		SweetnessPreference: &sweetness,
		TexturePreference:   &texture,
	})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "sweetness_preference")
	assert.Contains(t, verr.Fields, "texture_preference")
}

func TestRecommendationService_StorageFailure(t *testing.T) {
	mockRepo := new(MockDateTypeRepository)
	service := services.NewRecommendationService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetAll", ctx).Return(nil, models.NewStorageError("list", errors.New("connection reset"))).Once()

	_, err := service.Recommend(ctx, models.RecommendationQuery{})

	var serr *models.StorageError
	assert.ErrorAs(t, err, &serr)
	mockRepo.AssertExpectations(t)
}

func TestPriceService_Quote(t *testing.T) {
	repo := seedRepo(t, variant("Ajwa", 4, 120.5, true, "soft"))
	service := services.NewPriceService(repo)
	ctx := context.Background()

	quote, err := service.Quote(ctx, models.PriceQuoteRequest{DateTypeID: 1, Quantity: 2.5})
	require.NoError(t, err)
	assert.Equal(t, uint(1), quote.DateTypeID)
	assert.Equal(t, 120.5, quote.PricePerKg)
	assert.Equal(t, 301.25, quote.Total)
	assert.Equal(t, "SAR", quote.Currency)

	_, err = service.Quote(ctx, models.PriceQuoteRequest{DateTypeID: 1, Quantity: 0})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = service.Quote(ctx, models.PriceQuoteRequest{DateTypeID: 77, Quantity: 1})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
