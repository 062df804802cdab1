package repository

import (
	"civilprotection-backend/dal"
	"civilprotection-backend/models"
	"context"
	"fmt"

	"civilprotection-backend/utils/logger"

	"gorm.io/gorm"
)

type RoleRepository struct {
	db     dal.DatabaseClientInterface
	logger logger.Logger
}

func NewRoleRepository(db dal.DatabaseClientInterface, log logger.Logger) *RoleRepository {
	return &RoleRepository{
		db:     db,
		logger: log,
	}
}

func withMembers(db *gorm.DB) *gorm.DB {
	return db.Preload("Volunteers", byID).Preload("Volunteers.Groups", byID)
}

func (r *RoleRepository) ListRoles(ctx context.Context) ([]*models.Role, error) {
	var roles []*models.Role
	if err := r.db.DB(ctx).Scopes(byID, withMembers).Find(&roles).Error; err != nil {
		r.logger.Errorf("Failed to list roles: %v", err)
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	r.logger.Debugf("Found %d roles", len(roles))
	return roles, nil
}

// FindRole loads the role row alone, without its members
func (r *RoleRepository) FindRole(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := r.db.DB(ctx).Select("id", "name").First(&role, id).Error; err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

func (r *RoleRepository) GetRole(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := r.db.DB(ctx).Scopes(withMembers).First(&role, id).Error; err != nil {
		return nil, translate(err)
	}
	return &role, nil
}
