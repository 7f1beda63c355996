package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tamrah/internal/models"
	"tamrah/internal/services"
)

// RecommendationHandler serves ranked recommendations and price quotes.
type RecommendationHandler struct {
	recommendations *services.RecommendationService
	prices          *services.PriceService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendations *services.RecommendationService, prices *services.PriceService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendations: recommendations,
		prices:          prices,
	}
}

// RegisterRoutes registers the recommendation routes.
func (h *RecommendationHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/recommendations", h.HandleRecommend)
	router.Post("/price-quote", h.HandlePriceQuote)
}

// HandleRecommend returns up to three records matching the posted preferences.
func (h *RecommendationHandler) HandleRecommend(c *fiber.Ctx) error {
	var q models.RecommendationQuery
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&q); err != nil {
			return respondBadBody(c, err)
		}
	}
	results, err := h.recommendations.Recommend(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "Failed to get recommendations")
	}
	return c.JSON(results)
}

// HandlePriceQuote prices a quantity of one date type.
func (h *RecommendationHandler) HandlePriceQuote(c *fiber.Ctx) error {
	var req models.PriceQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	quote, err := h.prices.Quote(c.UserContext(), req)
	if err != nil {
		return respondError(c, err, "Date type")
	}
	return c.JSON(quote)
}
