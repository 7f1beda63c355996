package models

// Texture preference values accepted by RecommendationQuery.
const (
	TextureSoft = "soft"
	TextureFirm = "firm"
	TextureAny  = "any"
)

// RecommendationQuery holds the optional preferences used to rank the
// catalog. A nil field places no constraint on that dimension.
type RecommendationQuery struct {
	SweetnessPreference *int     `json:"sweetness_preference" validate:"omitempty,min=1,max=5"`
	TexturePreference   *string  `json:"texture_preference" validate:"omitempty,oneof=soft firm any"`
	BudgetMax           *float64 `json:"budget_max" validate:"omitempty,gt=0"`
	IsPremiumPreferred  *bool    `json:"is_premium_preferred"`
}
