package dto

import "github.com/shopspring/decimal"

type CoordinateCheckoutRequestDTO struct {
	ObjectID    int             `json:"object_id" example:"7"`
	Amount      decimal.Decimal `json:"amount" example:"3"`
	Currency    string          `json:"currency" example:"USD"`
	Description string          `json:"description" example:"Unlock coordinates"`
	ObjectType  string          `json:"object_type" example:"abandoned"`
	TaxIncluded bool            `json:"tax_included"`
}

type CoordinatesDTO struct {
	Latitude  float64 `json:"latitude" example:"40.4168"`
	Longitude float64 `json:"longitude" example:"-3.7038"`
}

type CoordinateCheckoutResponseDTO struct {
	URL         string          `json:"url,omitempty" example:"https://checkout.stripe.com/c/pay/cs_test_123"`
	SessionID   string          `json:"session_id,omitempty" example:"cs_test_123"`
	Message     string          `json:"message"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
}

type SyncResponseDTO struct {
	Message string `json:"message" example:"Sync finished"`
	Updated int    `json:"updated" example:"1"`
	Total   int    `json:"total" example:"2"`
}

type WebhookResponseDTO struct {
	Received bool `json:"received"`
}
