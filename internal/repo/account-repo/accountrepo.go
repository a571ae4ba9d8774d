package accountrepo

import (
	"context"
	"errors"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.ConnectedAccount, error) {
	query := `
        SELECT id, user_id, stripe_account_id, created_at
        FROM connected_accounts
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var account domain.ConnectedAccount
	err := row.Scan(&account.ID, &account.UserID, &account.StripeAccountID, &account.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get connected account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) Upsert(ctx context.Context, userID int, stripeAccountID string) (*domain.ConnectedAccount, error) {
	query := `
        INSERT INTO connected_accounts (user_id, stripe_account_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET stripe_account_id = EXCLUDED.stripe_account_id
        RETURNING id, user_id, stripe_account_id, created_at
    `
	row := r.db.QueryRow(ctx, query, userID, stripeAccountID)

	var account domain.ConnectedAccount
	err := row.Scan(&account.ID, &account.UserID, &account.StripeAccountID, &account.CreatedAt)
	if err != nil {
		zap.L().Error("can't upsert connected account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}
