package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coordinates are deliberately absent from listings: they are paywalled and
// only returned by a coordinate purchase.
type ObjectResponseDTO struct {
	ID           int             `json:"id" example:"7"`
	ObjectType   string          `json:"object_type" example:"abandoned"`
	Title        string          `json:"title" example:"Mid-century armchair"`
	Description  string          `json:"description" example:"Left at the corner, good shape"`
	ImageURL     string          `json:"image_url" example:"https://cdn.greenriot.app/objects/7.jpg"`
	PriceCredits decimal.Decimal `json:"price_credits" example:"3"`
	CreatedAt    time.Time       `json:"created_at" example:"2025-06-09T16:09:57+03:00"`
	DisplayName  string          `json:"display_name" example:"Street Finder"`
	Username     string          `json:"username" example:"streetfinder"`
}
