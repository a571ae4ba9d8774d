package dto

type PayoutAccountRequestDTO struct {
	StripeAccountID string `json:"stripe_account_id" example:"acct_1Nv0FGQ9RKHgCVdK"`
	CardNumber      string `json:"card_number,omitempty" example:"4242424242424242"`
}

type PayoutAccountResponseDTO struct {
	Message string `json:"message"`
}

type MakeAdminRequestDTO struct {
	UserID int `json:"user_id" validate:"required" example:"7"`
}

type SecurityStatusResponseDTO struct {
	IsAdmin             bool `json:"is_admin"`
	PendingOlderThanDay int  `json:"pending_older_than_day" example:"0"`
	FailedTransactions  int  `json:"failed_transactions" example:"0"`
}

type RateLimitStatusResponseDTO struct {
	Allowed bool    `json:"allowed"`
	Tokens  float64 `json:"tokens" example:"4.2"`
}
