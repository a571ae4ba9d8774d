package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		prepareMock   func()
		expectedError error
	}{
		{
			// Wallets are provisioned lazily on the first monetary action,
			// so signup touches nothing but the profile.
			name:  "Successful registration creates no wallet",
			email: "finder@greenriot.app",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "finder@greenriot.app").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
					profile.ID = 1
					return profile, nil
				})
			},
		},
		{
			name:  "Email already taken",
			email: "finder@greenriot.app",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "finder@greenriot.app").Return(&domain.Profile{ID: 1}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:  "Lookup failure",
			email: "finder@greenriot.app",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "finder@greenriot.app").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			profile, err := service.Register(context.Background(), tt.email, "streetfinder", "Street Finder", "testpassword")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, profile.ID)
				assert.Equal(t, "hashedpassword", profile.PasswordHash)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful authentication",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "finder@greenriot.app").Return(&domain.Profile{ID: 1, PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
		},
		{
			name: "Unknown email",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "finder@greenriot.app").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "finder@greenriot.app").Return(&domain.Profile{ID: 1, PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			profile, err := service.Authenticate(context.Background(), "finder@greenriot.app", "testpassword")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, profile.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("token", nil)
	token, err := service.GenerateToken(1)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("signing error"))
	_, err = service.GenerateToken(1)
	assert.Error(t, err)
}
