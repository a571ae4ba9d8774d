package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeDebit      = "debit"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

const (
	ObjectTypeAbandoned = "abandoned"
	ObjectTypeDonation  = "donation"
	ObjectTypeProduct   = "product"
)

func IsSupportedCurrency(currency string) bool {
	return currency == CurrencyUSD || currency == CurrencyEUR
}

type Profile struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	DisplayName  string    `db:"display_name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Wallet struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Balance   decimal.Decimal `db:"balance"`
	Currency  string          `db:"currency"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Transaction amounts are signed: deposits are positive, withdrawals and
// debits are negative.
type Transaction struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	WalletID    int             `db:"wallet_id"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	Status      string          `db:"status"`
	SessionID   string          `db:"session_id"`
	TransferID  string          `db:"transfer_id"`
	Description string          `db:"description"`
	ObjectType  string          `db:"object_type"`
	CreatedAt   time.Time       `db:"created_at"`
}

type StreetObject struct {
	ID           int             `db:"id"`
	ObjectType   string          `db:"object_type"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	ImageURL     string          `db:"image_url"`
	Latitude     float64         `db:"latitude"`
	Longitude    float64         `db:"longitude"`
	PriceCredits decimal.Decimal `db:"price_credits"`
	IsSold       bool            `db:"is_sold"`
	UserID       int             `db:"user_id"`
	CreatedAt    time.Time       `db:"created_at"`

	// poster enrichment, joined from profiles
	PosterDisplayName string `db:"display_name"`
	PosterUsername    string `db:"username"`
}

type ConnectedAccount struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	StripeAccountID string    `db:"stripe_account_id"`
	CreatedAt       time.Time `db:"created_at"`
}

type SecurityStatus struct {
	IsAdmin             bool
	PendingOlderThanDay int
	FailedTransactions  int
}
