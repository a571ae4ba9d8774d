package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/pkg/auth"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}
type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func (s *Service) Register(ctx context.Context, email, username, displayName, password string) (*domain.Profile, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	profile := &domain.Profile{
		Email:        email,
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: hashedPassword,
	}
	created, err := s.userRepo.Create(ctx, profile)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	// No wallet yet: wallets are provisioned lazily on the first monetary
	// action.
	zap.L().Info("user successfully registered", zap.String("email", email))
	return created, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Profile, error) {
	profile, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || profile == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(profile.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return profile, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
