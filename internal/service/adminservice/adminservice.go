package adminservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/greenriot/greenriot/internal/domain"
)

var ErrNotAdmin = errors.New("admin role required")

type RoleRepo interface {
	GrantAdmin(ctx context.Context, userID int) error
	IsAdmin(ctx context.Context, userID int) (bool, error)
	SecurityStatus(ctx context.Context, userID int) (*domain.SecurityStatus, error)
}
type Service struct {
	roleRepo RoleRepo
}

func New(roleRepo RoleRepo) *Service {
	return &Service{
		roleRepo: roleRepo,
	}
}

// MakeAdmin grants the admin role to targetID. Only an existing admin may
// grant it; the grant itself is idempotent, so granting a role the target
// already holds changes nothing.
func (s *Service) MakeAdmin(ctx context.Context, callerID, targetID int) error {
	isAdmin, err := s.roleRepo.IsAdmin(ctx, callerID)
	if err != nil {
		zap.L().Error("failed to check admin role", zap.Int("user_id", callerID), zap.Error(err))
		return err
	}
	if !isAdmin {
		zap.L().Warn("non-admin attempted role grant",
			zap.Int("caller_id", callerID), zap.Int("target_id", targetID))
		return ErrNotAdmin
	}

	if err := s.roleRepo.GrantAdmin(ctx, targetID); err != nil {
		zap.L().Error("failed to grant admin role", zap.Int("user_id", targetID), zap.Error(err))
		return err
	}
	zap.L().Info("admin role granted", zap.Int("caller_id", callerID), zap.Int("target_id", targetID))
	return nil
}

func (s *Service) SecurityStatus(ctx context.Context, userID int) (*domain.SecurityStatus, error) {
	status, err := s.roleRepo.SecurityStatus(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load security status", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return status, nil
}
