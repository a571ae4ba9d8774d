package walletrepo

import (
	"context"
	"errors"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetWallet(ctx context.Context, userID int, currency string) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, currency, created_at, updated_at
        FROM wallets
        WHERE user_id = $1 AND currency = $2
    `
	row := r.db.QueryRow(ctx, query, userID, currency)

	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.Currency, &wallet.CreatedAt, &wallet.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// GetOrCreateWallet provisions the wallet lazily on first monetary action.
func (r *Repository) GetOrCreateWallet(ctx context.Context, userID int, currency string) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, currency)
        VALUES ($1, $2)
        ON CONFLICT (user_id, currency) DO UPDATE SET updated_at = now()
        RETURNING id, user_id, balance, currency, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, userID, currency)

	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.Currency, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		zap.L().Error("can't get or create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// ApplyBalanceChange mutates the balance with a single guarded UPDATE and
// writes the matching ledger row in the same transaction. Concurrent changes
// to the same wallet serialize on the row lock; the balance can never be
// computed in application memory.
func (r *Repository) ApplyBalanceChange(ctx context.Context, change domain.BalanceChange) (*domain.Wallet, *domain.Transaction, error) {
	updateQuery := `
        UPDATE wallets
        SET balance = balance + $1, updated_at = now()
        WHERE id = $2 AND balance + $1 >= 0
        RETURNING id, user_id, balance, currency, created_at, updated_at
    `
	insertQuery := `
        INSERT INTO transactions (user_id, wallet_id, type, amount, currency, status, session_id, transfer_id, description, object_type)
        VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, NULLIF($10, ''))
        RETURNING id, created_at
    `

	var wallet domain.Wallet
	txn := &domain.Transaction{
		UserID:      change.UserID,
		Type:        change.Type,
		Amount:      change.Delta,
		Currency:    change.Currency,
		Status:      change.Status,
		SessionID:   change.SessionID,
		TransferID:  change.TransferID,
		Description: change.Description,
		ObjectType:  change.ObjectType,
	}

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, updateQuery, change.Delta, change.WalletID)
		err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.Currency, &wallet.CreatedAt, &wallet.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInsufficientBalance
		}
		if err != nil {
			zap.L().Error("can't update wallet balance", zap.Error(err))
			return err
		}

		txn.WalletID = wallet.ID
		row = r.db.QueryRow(ctx, insertQuery,
			txn.UserID, txn.WalletID, txn.Type, txn.Amount, txn.Currency, txn.Status,
			txn.SessionID, txn.TransferID, txn.Description, txn.ObjectType,
		)
		if err := row.Scan(&txn.ID, &txn.CreatedAt); err != nil {
			zap.L().Error("can't insert ledger row", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &wallet, txn, nil
}

// SettleBySessionID transitions the transaction carrying the checkout session
// from pending to completed and, for deposits, credits the wallet in the same
// transaction. The status guard makes settlement idempotent: a replayed event
// matches zero rows and returns nil.
func (r *Repository) SettleBySessionID(ctx context.Context, sessionID string) (*domain.Transaction, error) {
	completeQuery := `
        UPDATE transactions
        SET status = 'completed'
        WHERE session_id = $1 AND status = 'pending'
        RETURNING id, user_id, wallet_id, type, amount, currency, status, COALESCE(session_id, ''), COALESCE(transfer_id, ''), description, COALESCE(object_type, ''), created_at
    `
	creditQuery := `
        UPDATE wallets
        SET balance = balance + $1, updated_at = now()
        WHERE id = $2
    `

	var settled *domain.Transaction
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, completeQuery, sessionID)
		var txn domain.Transaction
		err := row.Scan(
			&txn.ID, &txn.UserID, &txn.WalletID, &txn.Type, &txn.Amount, &txn.Currency,
			&txn.Status, &txn.SessionID, &txn.TransferID, &txn.Description, &txn.ObjectType, &txn.CreatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("can't settle transaction", zap.Error(err))
			return err
		}

		if txn.Type == domain.TransactionTypeDeposit {
			if _, err := r.db.Exec(ctx, creditQuery, txn.Amount, txn.WalletID); err != nil {
				zap.L().Error("can't credit wallet on settlement", zap.Error(err))
				return err
			}
		}
		settled = &txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settled, nil
}
