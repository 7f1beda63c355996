package models

// Currency used for every catalog price.
const Currency = "SAR"

// PriceQuoteRequest asks for the cost of a quantity (kg) of one date type.
type PriceQuoteRequest struct {
	DateTypeID uint    `json:"dateTypeId" validate:"required"`
	Quantity   float64 `json:"quantity" validate:"gt=0"`
}

// PriceQuote is the computed price for a PriceQuoteRequest.
type PriceQuote struct {
	DateTypeID uint    `json:"dateTypeId"`
	Quantity   float64 `json:"quantity"`
	PricePerKg float64 `json:"pricePerKg"`
	Total      float64 `json:"total"`
	Currency   string  `json:"currency"`
}
