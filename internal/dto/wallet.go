package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponseDTO struct {
	Balance  decimal.Decimal `json:"balance" example:"120.5"`
	Currency string          `json:"currency" example:"USD"`
}

type DepositSessionRequestDTO struct {
	Amount   decimal.Decimal `json:"amount" example:"25"`
	Currency string          `json:"currency" example:"USD"`
}

type DepositSessionResponseDTO struct {
	URL       string `json:"url" example:"https://checkout.stripe.com/c/pay/cs_test_123"`
	SessionID string `json:"session_id" example:"cs_test_123"`
}

type WithdrawRequestDTO struct {
	Amount   decimal.Decimal `json:"amount" example:"50"`
	Currency string          `json:"currency" example:"USD"`
}

type WithdrawResponseDTO struct {
	Success         bool            `json:"success"`
	TransactionID   int             `json:"transaction_id" example:"42"`
	PreviousBalance decimal.Decimal `json:"previous_balance" example:"120.5"`
	NewBalance      decimal.Decimal `json:"new_balance" example:"70.5"`
}

type RealWithdrawResponseDTO struct {
	Success    bool            `json:"success"`
	TransferID string          `json:"transfer_id" example:"tr_123"`
	NewBalance decimal.Decimal `json:"new_balance" example:"70.5"`
	Currency   string          `json:"currency" example:"USD"`
	Message    string          `json:"message"`
}

type TransactionResponseDTO struct {
	ID          int             `json:"id" example:"42"`
	Type        string          `json:"type" example:"deposit"`
	Amount      decimal.Decimal `json:"amount" example:"25"`
	Currency    string          `json:"currency" example:"USD"`
	Status      string          `json:"status" example:"completed"`
	Description string          `json:"description" example:"Wallet deposit"`
	ObjectType  string          `json:"object_type,omitempty" example:"abandoned"`
	CreatedAt   time.Time       `json:"created_at" example:"2025-06-09T16:09:57+03:00"`
}
