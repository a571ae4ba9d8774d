package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/greenriot/greenriot/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func transactionRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "wallet_id", "type", "amount", "currency",
		"status", "session_id", "transfer_id", "description", "object_type", "created_at",
	}).AddRow(42, 1, 3, "deposit", "25", "USD", "pending", "cs_test_123", "", "Wallet deposit", "", now)
}

func TestRepository_CreatePending(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        INSERT INTO transactions (user_id, wallet_id, type, amount, currency, status, session_id, description, object_type)
        VALUES ($1, $2, $3, $4, $5, 'pending', NULLIF($6, ''), $7, NULLIF($8, ''))
        RETURNING id, created_at
    `)

	txn := &domain.Transaction{
		UserID:      1,
		WalletID:    3,
		Type:        domain.TransactionTypeDeposit,
		Amount:      decimal.NewFromInt(25),
		Currency:    "USD",
		SessionID:   "cs_test_123",
		Description: "Wallet deposit",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Pending ledger entry created",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1, 3, txn.Type, txn.Amount, "USD", "cs_test_123", txn.Description, "").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(42, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1, 3, txn.Type, txn.Amount, "USD", "cs_test_123", txn.Description, "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreatePending(context.Background(), txn)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, 42, result.ID)
				assert.Equal(t, domain.TransactionStatusPending, result.Status)
			}
		})
	}
}

func TestRepository_FindPendingDeposits(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1 AND status = 'pending' AND type = 'deposit'
        ORDER BY created_at DESC
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Pending deposits returned",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(transactionRows(now))
			},
			count: 1,
		},
		{
			name: "No pending deposits",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(pgxmock.NewRows([]string{
					"id", "user_id", "wallet_id", "type", "amount", "currency",
					"status", "session_id", "transfer_id", "description", "object_type", "created_at",
				}))
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPendingDeposits(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
			if tt.count > 0 {
				assert.Equal(t, "cs_test_123", result[0].SessionID)
				assert.Equal(t, domain.TransactionStatusPending, result[0].Status)
			}
		})
	}
}

func TestRepository_FindStalePendingDeposits(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	cutoff := now.Add(-10 * time.Minute)

	query := regexp.QuoteMeta(`
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE status = 'pending' AND type = 'deposit' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `)

	t.Run("Stale deposits returned across users", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(cutoff, 100).WillReturnRows(transactionRows(now))

		result, err := repo.FindStalePendingDeposits(context.Background(), cutoff, 100)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, 42, result[0].ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(cutoff, 100).WillReturnError(errors.New("database error"))

		result, err := repo.FindStalePendingDeposits(context.Background(), cutoff, 100)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `)

	t.Run("Transactions returned newest first", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1).WillReturnRows(transactionRows(now))

		result, err := repo.FindByUserID(context.Background(), 1)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.True(t, result[0].Amount.Equal(decimal.NewFromInt(25)))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))

		result, err := repo.FindByUserID(context.Background(), 1)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
