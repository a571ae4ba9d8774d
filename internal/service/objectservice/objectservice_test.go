package objectservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/greenriot/greenriot/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	return service, repo
}

func TestListByType(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		objectType    string
		prepareMock   func()
		expectedCount int
		expectedError error
	}{
		{
			name:       "Listings returned newest first",
			objectType: domain.ObjectTypeAbandoned,
			prepareMock: func() {
				repo.EXPECT().FindByType(gomock.Any(), domain.ObjectTypeAbandoned).Return([]domain.StreetObject{
					{ID: 2, Title: "Bookshelf"},
					{ID: 1, Title: "Armchair"},
				}, nil)
			},
			expectedCount: 2,
		},
		{
			name:          "Unknown type rejected",
			objectType:    "treasure",
			expectedError: ErrUnknownObjectType,
		},
		{
			name:       "Repo error propagated",
			objectType: domain.ObjectTypeDonation,
			prepareMock: func() {
				repo.EXPECT().FindByType(gomock.Any(), domain.ObjectTypeDonation).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			objects, err := service.ListByType(context.Background(), tt.objectType)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Len(t, objects, tt.expectedCount)
			}
		})
	}
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.StreetObject{ID: 7}, nil)
	object, err := service.Get(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, object.ID)

	repo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
	_, err = service.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrObjectNotFound)
}
