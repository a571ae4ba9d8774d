package userrepo

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

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `
        SELECT id, email, username, display_name, password_hash, created_at
        FROM profiles
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)

	var profile domain.Profile
	err := row.Scan(&profile.ID, &profile.Email, &profile.Username, &profile.DisplayName, &profile.PasswordHash, &profile.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find profile by email", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Profile, error) {
	query := `
        SELECT id, email, username, display_name, password_hash, created_at
        FROM profiles
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var profile domain.Profile
	err := row.Scan(&profile.ID, &profile.Email, &profile.Username, &profile.DisplayName, &profile.PasswordHash, &profile.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find profile by id", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
        INSERT INTO profiles (email, username, display_name, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, profile.Email, profile.Username, profile.DisplayName, profile.PasswordHash)
	if err := row.Scan(&profile.ID, &profile.CreatedAt); err != nil {
		zap.L().Error("can't create profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}
