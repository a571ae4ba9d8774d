package objectrepo

import (
	"context"
	"errors"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Listings are read-heavy; the cap keeps map views cheap.
const listingLimit = 50

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindByType returns unsold objects of one type, newest first, enriched with
// the poster's display name and username.
func (r *Repository) FindByType(ctx context.Context, objectType string) ([]domain.StreetObject, error) {
	query := `
        SELECT o.id, o.object_type, o.title, o.description, o.image_url, o.latitude, o.longitude,
               o.price_credits, o.is_sold, o.user_id, o.created_at, p.display_name, p.username
        FROM objects o
        JOIN profiles p ON p.id = o.user_id
        WHERE o.object_type = $1 AND o.is_sold = FALSE
        ORDER BY o.created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, objectType, listingLimit)
	if err != nil {
		zap.L().Error("can't fetch objects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var objects []domain.StreetObject
	for rows.Next() {
		var obj domain.StreetObject
		err := rows.Scan(
			&obj.ID, &obj.ObjectType, &obj.Title, &obj.Description, &obj.ImageURL,
			&obj.Latitude, &obj.Longitude, &obj.PriceCredits, &obj.IsSold, &obj.UserID,
			&obj.CreatedAt, &obj.PosterDisplayName, &obj.PosterUsername,
		)
		if err != nil {
			zap.L().Error("can't scan object row", zap.Error(err))
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.StreetObject, error) {
	query := `
        SELECT o.id, o.object_type, o.title, o.description, o.image_url, o.latitude, o.longitude,
               o.price_credits, o.is_sold, o.user_id, o.created_at, p.display_name, p.username
        FROM objects o
        JOIN profiles p ON p.id = o.user_id
        WHERE o.id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var obj domain.StreetObject
	err := row.Scan(
		&obj.ID, &obj.ObjectType, &obj.Title, &obj.Description, &obj.ImageURL,
		&obj.Latitude, &obj.Longitude, &obj.PriceCredits, &obj.IsSold, &obj.UserID,
		&obj.CreatedAt, &obj.PosterDisplayName, &obj.PosterUsername,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find object", zap.Error(err))
		return nil, err
	}
	return &obj, nil
}
