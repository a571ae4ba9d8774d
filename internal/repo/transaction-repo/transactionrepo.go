package transactionrepo

import (
	"context"
	"time"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const transactionColumns = `id, user_id, wallet_id, type, amount, currency, status, COALESCE(session_id, ''), COALESCE(transfer_id, ''), description, COALESCE(object_type, ''), created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTransaction(row pgx.Row, txn *domain.Transaction) error {
	return row.Scan(
		&txn.ID, &txn.UserID, &txn.WalletID, &txn.Type, &txn.Amount, &txn.Currency,
		&txn.Status, &txn.SessionID, &txn.TransferID, &txn.Description, &txn.ObjectType, &txn.CreatedAt,
	)
}

// CreatePending records the ledger entry for a checkout session that has not
// settled yet.
func (r *Repository) CreatePending(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, wallet_id, type, amount, currency, status, session_id, description, object_type)
        VALUES ($1, $2, $3, $4, $5, 'pending', NULLIF($6, ''), $7, NULLIF($8, ''))
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		txn.UserID, txn.WalletID, txn.Type, txn.Amount, txn.Currency,
		txn.SessionID, txn.Description, txn.ObjectType,
	)
	if err := row.Scan(&txn.ID, &txn.CreatedAt); err != nil {
		zap.L().Error("can't create pending transaction", zap.Error(err))
		return nil, err
	}
	txn.Status = domain.TransactionStatusPending
	return txn, nil
}

func (r *Repository) FindPendingDeposits(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1 AND status = 'pending' AND type = 'deposit'
        ORDER BY created_at DESC
    `
	return r.queryTransactions(ctx, query, userID)
}

// FindStalePendingDeposits feeds the background reconciler: pending deposits
// across all users whose checkout started before the cutoff.
func (r *Repository) FindStalePendingDeposits(ctx context.Context, cutoff time.Time, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE status = 'pending' AND type = 'deposit' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	return r.queryTransactions(ctx, query, cutoff, limit)
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.queryTransactions(ctx, query, userID)
}

func (r *Repository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		if err := scanTransaction(rows, &txn); err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
