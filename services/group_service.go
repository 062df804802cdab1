package services

import (
	"civilprotection-backend/models"
	"civilprotection-backend/repository"
	"civilprotection-backend/utils/logger"
	"context"
	"errors"
)

type GroupService struct {
	groupRepo repository.GroupRepositoryInterface
	logger    logger.Logger
}

func NewGroupService(groupRepo repository.GroupRepositoryInterface, logger logger.Logger) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		logger:    logger,
	}
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.groupRepo.ListGroups(ctx)
}

func (s *GroupService) GetGroup(ctx context.Context, id uint) (*models.Group, error) {
	group, err := s.groupRepo.GetGroup(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.ErrGroupNotFound
	}
	return group, err
}
