package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, user_id, stripe_account_id, created_at
        FROM connected_accounts
        WHERE user_id = $1
    `)

	t.Run("Connected account returned", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "stripe_account_id", "created_at"}).
			AddRow(1, 1, "acct_1Nv0FGQ9RKHgCVdK", now)
		mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)

		result, err := repo.GetByUserID(context.Background(), 1)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "acct_1Nv0FGQ9RKHgCVdK", result.StripeAccountID)
	})

	t.Run("No connected account returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(2).WillReturnError(pgx.ErrNoRows)

		result, err := repo.GetByUserID(context.Background(), 2)

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))

		result, err := repo.GetByUserID(context.Background(), 1)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        INSERT INTO connected_accounts (user_id, stripe_account_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET stripe_account_id = EXCLUDED.stripe_account_id
        RETURNING id, user_id, stripe_account_id, created_at
    `)

	t.Run("Account upserted", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "stripe_account_id", "created_at"}).
			AddRow(1, 1, "acct_1Nv0FGQ9RKHgCVdK", now)
		mock.ExpectQuery(query).WithArgs(1, "acct_1Nv0FGQ9RKHgCVdK").WillReturnRows(rows)

		result, err := repo.Upsert(context.Background(), 1, "acct_1Nv0FGQ9RKHgCVdK")

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 1, result.UserID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1, "acct_1Nv0FGQ9RKHgCVdK").WillReturnError(errors.New("database error"))

		result, err := repo.Upsert(context.Background(), 1, "acct_1Nv0FGQ9RKHgCVdK")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
