package rolerepo

import (
	"context"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/pg"
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

func (r *Repository) GrantAdmin(ctx context.Context, userID int) error {
	query := `
        INSERT INTO user_roles (user_id, role)
        VALUES ($1, 'admin')
        ON CONFLICT (user_id, role) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't grant admin role", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IsAdmin(ctx context.Context, userID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM user_roles WHERE user_id = $1 AND role = 'admin'
        )
    `
	var isAdmin bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&isAdmin); err != nil {
		zap.L().Error("can't check admin role", zap.Error(err))
		return false, err
	}
	return isAdmin, nil
}

// SecurityStatus reports ledger anomalies worth an operator's attention.
func (r *Repository) SecurityStatus(ctx context.Context, userID int) (*domain.SecurityStatus, error) {
	isAdmin, err := r.IsAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}

	query := `
        SELECT
            COUNT(*) FILTER (WHERE status = 'pending' AND created_at < now() - INTERVAL '24 hours'),
            COUNT(*) FILTER (WHERE status = 'failed')
        FROM transactions
        WHERE user_id = $1
    `
	status := &domain.SecurityStatus{IsAdmin: isAdmin}
	if err := r.db.QueryRow(ctx, query, userID).Scan(&status.PendingOlderThanDay, &status.FailedTransactions); err != nil {
		zap.L().Error("can't compute security status", zap.Error(err))
		return nil, err
	}
	return status, nil
}
