package objectservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/greenriot/greenriot/internal/domain"
)

type Repo interface {
	FindByType(ctx context.Context, objectType string) ([]domain.StreetObject, error)
	FindByID(ctx context.Context, id int) (*domain.StreetObject, error)
}
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrUnknownObjectType = errors.New("unknown object type")

// ListByType returns unsold listings of one type, newest first. Coordinates
// never leave this layer; they are only handed out by a paid unlock.
func (s *Service) ListByType(ctx context.Context, objectType string) ([]domain.StreetObject, error) {
	switch objectType {
	case domain.ObjectTypeAbandoned, domain.ObjectTypeDonation, domain.ObjectTypeProduct:
	default:
		return nil, ErrUnknownObjectType
	}
	objects, err := s.repo.FindByType(ctx, objectType)
	if err != nil {
		zap.L().Error("failed to list objects", zap.String("object_type", objectType), zap.Error(err))
		return nil, err
	}
	return objects, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.StreetObject, error) {
	object, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get object", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if object == nil {
		return nil, domain.ErrObjectNotFound
	}
	return object, nil
}
