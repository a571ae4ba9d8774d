package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrAmountBelowMinimum  = errors.New("amount below minimum")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrNoConnectedAccount  = errors.New("no connected payout account")
	ErrObjectNotFound      = errors.New("object not found")
)

// BalanceChange is one atomic ledger mutation: the wallet update and its
// transaction row commit together or not at all.
type BalanceChange struct {
	WalletID    int
	UserID      int
	Delta       decimal.Decimal
	Type        string
	Status      string
	Currency    string
	SessionID   string
	TransferID  string
	Description string
	ObjectType  string
}
