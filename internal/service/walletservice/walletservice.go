package walletservice

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/greenriot/greenriot/internal/config"
	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/metrics"
	"github.com/greenriot/greenriot/internal/stripe"
	"github.com/greenriot/greenriot/pkg/validate"
)

type WalletRepo interface {
	GetWallet(ctx context.Context, userID int, currency string) (*domain.Wallet, error)
	GetOrCreateWallet(ctx context.Context, userID int, currency string) (*domain.Wallet, error)
	ApplyBalanceChange(ctx context.Context, change domain.BalanceChange) (*domain.Wallet, *domain.Transaction, error)
	SettleBySessionID(ctx context.Context, sessionID string) (*domain.Transaction, error)
}
type TransactionRepo interface {
	CreatePending(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindPendingDeposits(ctx context.Context, userID int) ([]domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}
type AccountRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.ConnectedAccount, error)
	Upsert(ctx context.Context, userID int, stripeAccountID string) (*domain.ConnectedAccount, error)
}
type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Profile, error)
}
type ObjectRepo interface {
	FindByID(ctx context.Context, id int) (*domain.StreetObject, error)
}
type Processor interface {
	FindOrCreateCustomer(ctx context.Context, email string) (*stripe.Customer, error)
	CreateCheckoutSession(ctx context.Context, params stripe.CheckoutParams) (*stripe.CheckoutSession, error)
	CreateTransfer(ctx context.Context, amountCents int64, currency, destination string) (*stripe.Transfer, error)
	ListCheckoutSessions(ctx context.Context, customer string, since time.Time) ([]stripe.CheckoutSession, error)
	VerifyWebhookSignature(payload []byte, header string) error
}

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	accountRepo     AccountRepo
	userRepo        UserRepo
	objectRepo      ObjectRepo
	processor       Processor
	cfg             *config.Config
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, accountRepo AccountRepo, userRepo UserRepo, objectRepo ObjectRepo, processor Processor, cfg *config.Config) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		userRepo:        userRepo,
		objectRepo:      objectRepo,
		processor:       processor,
		cfg:             cfg,
	}
}

var (
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrInvalidSignature  = stripe.ErrInvalidSignature
)

// syncWindow bounds how far back a manual sync searches the processor for
// checkout sessions.
const syncWindow = 7 * 24 * time.Hour

// CoordinatePurchaseRequest describes one coordinate unlock attempt. Amount is
// the object's price in wallet currency.
type CoordinatePurchaseRequest struct {
	ObjectID    int
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// CoordinatePurchase is the outcome of PurchaseCoordinates. When the wallet
// covered the price, PaidWithCredits is true and the coordinates are set;
// otherwise SessionURL points at a hosted checkout page and settlement
// happens later through the webhook or sync.
type CoordinatePurchase struct {
	PaidWithCredits bool
	SessionURL      string
	SessionID       string
	Latitude        float64
	Longitude       float64
}

func (s *Service) GetBalance(ctx context.Context, userID int, currency string) (*domain.Wallet, error) {
	if !domain.IsSupportedCurrency(currency) {
		return nil, domain.ErrUnsupportedCurrency
	}
	wallet, err := s.walletRepo.GetOrCreateWallet(ctx, userID, currency)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// CreateDepositSession validates the deposit and opens a hosted checkout
// session. The ledger row is written as a pending deposit before the URL is
// returned, so an abandoned checkout leaves a visible pending transaction
// rather than nothing.
func (s *Service) CreateDepositSession(ctx context.Context, userID int, amount decimal.Decimal, currency string) (*stripe.CheckoutSession, error) {
	if !domain.IsSupportedCurrency(currency) {
		return nil, domain.ErrUnsupportedCurrency
	}
	if amount.LessThan(decimal.NewFromFloat(s.cfg.MinDeposit)) {
		return nil, domain.ErrAmountBelowMinimum
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	wallet, err := s.walletRepo.GetOrCreateWallet(ctx, userID, currency)
	if err != nil {
		return nil, err
	}
	customer, err := s.processor.FindOrCreateCustomer(ctx, user.Email)
	if err != nil {
		zap.L().Error("failed to resolve processor customer", zap.Error(err))
		return nil, err
	}

	session, err := s.processor.CreateCheckoutSession(ctx, stripe.CheckoutParams{
		Customer:    customer.ID,
		AmountCents: stripe.ToCents(amount),
		Currency:    strings.ToLower(currency),
		ProductName: "Wallet deposit",
		SuccessURL:  s.cfg.AppBaseURL + "/wallet?deposit=success",
		CancelURL:   s.cfg.AppBaseURL + "/wallet?deposit=cancelled",
		Metadata:    map[string]string{"user_id": strconv.Itoa(userID), "type": "deposit"},
	})
	if err != nil {
		zap.L().Error("failed to create checkout session", zap.Error(err))
		return nil, err
	}

	_, err = s.transactionRepo.CreatePending(ctx, &domain.Transaction{
		UserID:      userID,
		WalletID:    wallet.ID,
		Type:        domain.TransactionTypeDeposit,
		Amount:      amount,
		Currency:    currency,
		Status:      domain.TransactionStatusPending,
		SessionID:   session.ID,
		Description: "Wallet deposit",
	})
	if err != nil {
		zap.L().Error("failed to record pending deposit", zap.String("session_id", session.ID), zap.Error(err))
		return nil, err
	}
	metrics.DepositSessionsTotal.Inc()
	return session, nil
}

// PurchaseCoordinates unlocks an object's location. A wallet that covers the
// price is debited immediately and the coordinates come back in the same
// call; otherwise the buyer is sent to hosted checkout and a pending debit
// row waits for settlement.
func (s *Service) PurchaseCoordinates(ctx context.Context, userID int, req CoordinatePurchaseRequest) (*CoordinatePurchase, error) {
	if !domain.IsSupportedCurrency(req.Currency) {
		return nil, domain.ErrUnsupportedCurrency
	}
	if !req.Amount.IsPositive() {
		return nil, domain.ErrAmountBelowMinimum
	}

	object, err := s.objectRepo.FindByID(ctx, req.ObjectID)
	if err != nil {
		return nil, err
	}
	if object == nil {
		return nil, domain.ErrObjectNotFound
	}
	wallet, err := s.walletRepo.GetOrCreateWallet(ctx, userID, req.Currency)
	if err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = "Coordinates for " + object.Title
	}

	if wallet.Balance.GreaterThanOrEqual(req.Amount) {
		_, _, err := s.walletRepo.ApplyBalanceChange(ctx, domain.BalanceChange{
			WalletID:    wallet.ID,
			UserID:      userID,
			Delta:       req.Amount.Neg(),
			Type:        domain.TransactionTypeDebit,
			Status:      domain.TransactionStatusCompleted,
			Currency:    req.Currency,
			Description: description,
			ObjectType:  object.ObjectType,
		})
		if err != nil {
			return nil, err
		}
		metrics.CoordinatePurchasesTotal.WithLabelValues("credits").Inc()
		return &CoordinatePurchase{
			PaidWithCredits: true,
			Latitude:        object.Latitude,
			Longitude:       object.Longitude,
		}, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	customer, err := s.processor.FindOrCreateCustomer(ctx, user.Email)
	if err != nil {
		zap.L().Error("failed to resolve processor customer", zap.Error(err))
		return nil, err
	}
	session, err := s.processor.CreateCheckoutSession(ctx, stripe.CheckoutParams{
		Customer:    customer.ID,
		AmountCents: stripe.ToCents(req.Amount),
		Currency:    strings.ToLower(req.Currency),
		ProductName: description,
		SuccessURL:  s.cfg.AppBaseURL + "/objects/" + strconv.Itoa(object.ID) + "?purchase=success",
		CancelURL:   s.cfg.AppBaseURL + "/objects/" + strconv.Itoa(object.ID) + "?purchase=cancelled",
		Metadata: map[string]string{
			"user_id":   strconv.Itoa(userID),
			"object_id": strconv.Itoa(object.ID),
			"type":      "coordinates",
		},
	})
	if err != nil {
		zap.L().Error("failed to create checkout session", zap.Error(err))
		return nil, err
	}

	_, err = s.transactionRepo.CreatePending(ctx, &domain.Transaction{
		UserID:      userID,
		WalletID:    wallet.ID,
		Type:        domain.TransactionTypeDebit,
		Amount:      req.Amount.Neg(),
		Currency:    req.Currency,
		Status:      domain.TransactionStatusPending,
		SessionID:   session.ID,
		Description: description,
		ObjectType:  object.ObjectType,
	})
	if err != nil {
		zap.L().Error("failed to record pending debit", zap.String("session_id", session.ID), zap.Error(err))
		return nil, err
	}
	metrics.CoordinatePurchasesTotal.WithLabelValues("card").Inc()
	return &CoordinatePurchase{SessionURL: session.URL, SessionID: session.ID}, nil
}

// Withdraw moves credits out of the wallet as an internal debit. The balance
// guard lives in the repository's atomic update, so a concurrent spend can
// never drive the wallet negative.
func (s *Service) Withdraw(ctx context.Context, userID int, amount decimal.Decimal, currency string) (*domain.Wallet, *domain.Transaction, decimal.Decimal, error) {
	var zero decimal.Decimal
	if !domain.IsSupportedCurrency(currency) {
		return nil, nil, zero, domain.ErrUnsupportedCurrency
	}
	if amount.LessThan(decimal.NewFromFloat(s.cfg.MinWithdrawal)) {
		return nil, nil, zero, domain.ErrAmountBelowMinimum
	}

	wallet, err := s.walletRepo.GetWallet(ctx, userID, currency)
	if err != nil {
		return nil, nil, zero, err
	}
	if wallet == nil {
		return nil, nil, zero, domain.ErrWalletNotFound
	}
	previous := wallet.Balance

	updated, txn, err := s.walletRepo.ApplyBalanceChange(ctx, domain.BalanceChange{
		WalletID:    wallet.ID,
		UserID:      userID,
		Delta:       amount.Neg(),
		Type:        domain.TransactionTypeWithdrawal,
		Status:      domain.TransactionStatusCompleted,
		Currency:    currency,
		Description: "Wallet withdrawal",
	})
	if err != nil {
		return nil, nil, zero, err
	}
	metrics.WithdrawalsTotal.WithLabelValues("virtual").Inc()
	return updated, txn, previous, nil
}

// WithdrawReal pays the wallet balance out to the user's connected account.
// The transfer is created before the wallet is debited; if the debit then
// fails the transfer is already out the door, so that case is logged loudly
// for manual reconciliation instead of being silently retried.
func (s *Service) WithdrawReal(ctx context.Context, userID int, amount decimal.Decimal, currency string) (*domain.Wallet, *stripe.Transfer, error) {
	if !domain.IsSupportedCurrency(currency) {
		return nil, nil, domain.ErrUnsupportedCurrency
	}
	if amount.LessThan(decimal.NewFromFloat(s.cfg.MinWithdrawal)) {
		return nil, nil, domain.ErrAmountBelowMinimum
	}

	wallet, err := s.walletRepo.GetWallet(ctx, userID, currency)
	if err != nil {
		return nil, nil, err
	}
	if wallet == nil {
		return nil, nil, domain.ErrWalletNotFound
	}
	if wallet.Balance.LessThan(amount) {
		return nil, nil, domain.ErrInsufficientBalance
	}

	account, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, domain.ErrNoConnectedAccount
	}

	transfer, err := s.processor.CreateTransfer(ctx, stripe.ToCents(amount), strings.ToLower(currency), account.StripeAccountID)
	if err != nil {
		zap.L().Error("failed to create transfer", zap.Error(err))
		return nil, nil, err
	}

	updated, _, err := s.walletRepo.ApplyBalanceChange(ctx, domain.BalanceChange{
		WalletID:    wallet.ID,
		UserID:      userID,
		Delta:       amount.Neg(),
		Type:        domain.TransactionTypeWithdrawal,
		Status:      domain.TransactionStatusCompleted,
		Currency:    currency,
		TransferID:  transfer.ID,
		Description: "Payout to connected account",
	})
	if err != nil {
		zap.L().Error("transfer sent but wallet debit failed, manual reconciliation required",
			zap.String("transfer_id", transfer.ID),
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return nil, nil, err
	}
	metrics.WithdrawalsTotal.WithLabelValues("real").Inc()
	return updated, transfer, nil
}

// SetPayoutAccount stores the connected account used for real withdrawals.
// A card number, when supplied, must pass a Luhn check before anything is
// persisted.
func (s *Service) SetPayoutAccount(ctx context.Context, userID int, stripeAccountID, cardNumber string) error {
	if cardNumber != "" && !validate.IsLuhn(cardNumber) {
		return ErrInvalidCardNumber
	}
	if _, err := s.accountRepo.Upsert(ctx, userID, stripeAccountID); err != nil {
		zap.L().Error("failed to upsert connected account", zap.Error(err))
		return err
	}
	return nil
}

// Sync reconciles the caller's pending deposits against the processor's
// recent checkout sessions. Matching is by exact session ID; a paid session
// whose amount disagrees with the ledger row is skipped and logged rather
// than settled.
func (s *Service) Sync(ctx context.Context, userID int) (updated, total int, err error) {
	pending, err := s.transactionRepo.FindPendingDeposits(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	if len(pending) == 0 {
		return 0, 0, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, len(pending), err
	}
	customer, err := s.processor.FindOrCreateCustomer(ctx, user.Email)
	if err != nil {
		zap.L().Error("failed to resolve processor customer", zap.Error(err))
		return 0, len(pending), err
	}
	sessions, err := s.processor.ListCheckoutSessions(ctx, customer.ID, time.Now().Add(-syncWindow))
	if err != nil {
		zap.L().Error("failed to list checkout sessions", zap.Error(err))
		return 0, len(pending), err
	}

	paid := make(map[string]stripe.CheckoutSession, len(sessions))
	for _, session := range sessions {
		if session.PaymentStatus == "paid" {
			paid[session.ID] = session
		}
	}

	for _, txn := range pending {
		session, ok := paid[txn.SessionID]
		if !ok {
			continue
		}
		if stripe.ToCents(txn.Amount) != session.AmountTotal {
			zap.L().Warn("paid session amount disagrees with ledger, skipping",
				zap.String("session_id", session.ID),
				zap.String("session_amount", stripe.FromCents(session.AmountTotal).String()),
				zap.String("ledger_amount", txn.Amount.String()),
			)
			continue
		}
		settled, err := s.walletRepo.SettleBySessionID(ctx, txn.SessionID)
		if err != nil {
			zap.L().Error("failed to settle transaction", zap.String("session_id", txn.SessionID), zap.Error(err))
			continue
		}
		if settled != nil {
			metrics.SettlementsTotal.WithLabelValues("sync").Inc()
			updated++
		}
	}
	return updated, len(pending), nil
}

// HandleCheckoutCompleted verifies and applies one webhook delivery. The
// signature is checked before the payload is parsed; replayed events settle
// nothing and return a nil transaction.
func (s *Service) HandleCheckoutCompleted(ctx context.Context, payload []byte, signatureHeader string) (*domain.Transaction, error) {
	if err := s.processor.VerifyWebhookSignature(payload, signatureHeader); err != nil {
		zap.L().Warn("rejected webhook with bad signature", zap.Error(err))
		return nil, err
	}

	event, err := stripe.ParseEvent(payload)
	if err != nil {
		return nil, err
	}
	if event.Type != stripe.EventCheckoutCompleted {
		zap.L().Debug("ignoring webhook event", zap.String("type", event.Type))
		return nil, nil
	}
	session := event.Data.Object
	if session.PaymentStatus != "paid" {
		zap.L().Info("checkout completed but not paid, leaving pending", zap.String("session_id", session.ID))
		return nil, nil
	}

	settled, err := s.walletRepo.SettleBySessionID(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if settled == nil {
		return nil, nil
	}
	metrics.SettlementsTotal.WithLabelValues("webhook").Inc()
	return settled, nil
}
