package objectrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

func objectColumns() []string {
	return []string{
		"id", "object_type", "title", "description", "image_url", "latitude", "longitude",
		"price_credits", "is_sold", "user_id", "created_at", "display_name", "username",
	}
}

func TestRepository_FindByType(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT o.id, o.object_type, o.title, o.description, o.image_url, o.latitude, o.longitude,
               o.price_credits, o.is_sold, o.user_id, o.created_at, p.display_name, p.username
        FROM objects o
        JOIN profiles p ON p.id = o.user_id
        WHERE o.object_type = $1 AND o.is_sold = FALSE
        ORDER BY o.created_at DESC
        LIMIT $2
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Unsold objects returned with poster info",
			mockSetup: func() {
				rows := pgxmock.NewRows(objectColumns()).
					AddRow(7, "abandoned", "Mid-century armchair", "Left at the corner", "https://cdn.greenriot.app/objects/7.jpg",
						40.4168, -3.7038, "3", false, 1, now, "Street Finder", "streetfinder")
				mock.ExpectQuery(query).WithArgs("abandoned", listingLimit).WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name: "Empty listing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("abandoned", listingLimit).
					WillReturnRows(pgxmock.NewRows(objectColumns()))
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("abandoned", listingLimit).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByType(context.Background(), domain.ObjectTypeAbandoned)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.count)
			if tt.count > 0 {
				assert.Equal(t, "streetfinder", result[0].PosterUsername)
				assert.True(t, result[0].PriceCredits.Equal(decimal.NewFromInt(3)))
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT o.id, o.object_type, o.title, o.description, o.image_url, o.latitude, o.longitude,
               o.price_credits, o.is_sold, o.user_id, o.created_at, p.display_name, p.username
        FROM objects o
        JOIN profiles p ON p.id = o.user_id
        WHERE o.id = $1
    `)

	t.Run("Existing object returned with coordinates", func(t *testing.T) {
		rows := pgxmock.NewRows(objectColumns()).
			AddRow(7, "abandoned", "Mid-century armchair", "Left at the corner", "https://cdn.greenriot.app/objects/7.jpg",
				40.4168, -3.7038, "3", false, 1, now, "Street Finder", "streetfinder")
		mock.ExpectQuery(query).WithArgs(7).WillReturnRows(rows)

		result, err := repo.FindByID(context.Background(), 7)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 40.4168, result.Latitude)
		assert.Equal(t, -3.7038, result.Longitude)
	})

	t.Run("Unknown id returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByID(context.Background(), 99)

		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(7).WillReturnError(errors.New("database error"))

		result, err := repo.FindByID(context.Background(), 7)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
