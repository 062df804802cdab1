package repository

import (
	"civilprotection-backend/dal"
	"civilprotection-backend/models"
	"context"
	"fmt"

	"civilprotection-backend/utils/logger"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db     dal.DatabaseClientInterface
	logger logger.Logger
}

func NewGroupRepository(db dal.DatabaseClientInterface, log logger.Logger) *GroupRepository {
	return &GroupRepository{
		db:     db,
		logger: log,
	}
}

func withRankedMembers(db *gorm.DB) *gorm.DB {
	return db.Preload("Volunteers", byID).Preload("Volunteers.Role")
}

func (r *GroupRepository) ListGroups(ctx context.Context) ([]*models.Group, error) {
	var groups []*models.Group
	if err := r.db.DB(ctx).Scopes(byID, withRankedMembers).Find(&groups).Error; err != nil {
		r.logger.Errorf("Failed to list groups: %v", err)
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	r.logger.Debugf("Found %d groups", len(groups))
	return groups, nil
}

func (r *GroupRepository) GetGroup(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.DB(ctx).Scopes(withRankedMembers).First(&group, id).Error; err != nil {
		return nil, translate(err)
	}
	return &group, nil
}

func (r *GroupRepository) FindGroups(ctx context.Context, ids []uint) ([]models.Group, error) {
	groups := []models.Group{}
	if len(ids) == 0 {
		return groups, nil
	}
	if err := r.db.DB(ctx).Where("id IN ?", ids).Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
