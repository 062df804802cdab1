package services

import (
	"civilprotection-backend/models"
	"civilprotection-backend/repository"
	"civilprotection-backend/utils/logger"
	"context"
	"errors"
)

type RoleService struct {
	roleRepo repository.RoleRepositoryInterface
	logger   logger.Logger
}

func NewRoleService(roleRepo repository.RoleRepositoryInterface, logger logger.Logger) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (s *RoleService) ListRoles(ctx context.Context) ([]*models.Role, error) {
	return s.roleRepo.ListRoles(ctx)
}

func (s *RoleService) GetRole(ctx context.Context, id uint) (*models.Role, error) {
	role, err := s.roleRepo.GetRole(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.ErrRoleNotFound
	}
	return role, err
}
