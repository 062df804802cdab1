package repository

import (
	"civilprotection-backend/dal"
	"civilprotection-backend/models"
	"context"
	"fmt"

	"civilprotection-backend/utils/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VolunteerRepository struct {
	db     dal.DatabaseClientInterface
	logger logger.Logger
}

func NewVolunteerRepository(db dal.DatabaseClientInterface, log logger.Logger) *VolunteerRepository {
	return &VolunteerRepository{
		db:     db,
		logger: log,
	}
}

func (r *VolunteerRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Role").Preload("Groups", byID).Preload("Services", byID)
}

func (r *VolunteerRepository) ListVolunteers(ctx context.Context, page models.Pagination) ([]*models.Volunteer, error) {
	var volunteers []*models.Volunteer
	err := r.db.DB(ctx).Scopes(paginate(page), byID, r.withRelations).Find(&volunteers).Error
	if err != nil {
		r.logger.Errorf("Failed to list volunteers: %v", err)
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	return volunteers, nil
}

func (r *VolunteerRepository) GetVolunteer(ctx context.Context, id uint) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	if err := r.db.DB(ctx).Scopes(r.withRelations).First(&volunteer, id).Error; err != nil {
		return nil, translate(err)
	}
	return &volunteer, nil
}

func (r *VolunteerRepository) FindVolunteers(ctx context.Context, ids []uint) ([]models.Volunteer, error) {
	volunteers := []models.Volunteer{}
	if len(ids) == 0 {
		return volunteers, nil
	}
	if err := r.db.DB(ctx).Where("id IN ?", ids).Order("id").Find(&volunteers).Error; err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (r *VolunteerRepository) CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) (*models.Volunteer, error) {
	r.logger.Infof("Creating volunteer: %s %s", volunteer.Name, volunteer.Surnames)

	groups := append([]models.Group{}, volunteer.Groups...)
	err := r.db.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(volunteer).Error; err != nil {
			return err
		}
		return tx.Model(volunteer).Association("Groups").Replace(groups)
	})
	if err != nil {
		r.logger.Errorf("Failed to create volunteer: %v", err)
		return nil, err
	}

	r.logger.Infof("Volunteer created successfully: %d", volunteer.ID)
	return r.GetVolunteer(ctx, volunteer.ID)
}

func (r *VolunteerRepository) UpdateVolunteer(ctx context.Context, volunteer *models.Volunteer) (*models.Volunteer, error) {
	r.logger.Infof("Updating volunteer: %d", volunteer.ID)

	groups := append([]models.Group{}, volunteer.Groups...)
	err := r.db.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(volunteer).Error; err != nil {
			return err
		}
		return tx.Model(volunteer).Association("Groups").Replace(groups)
	})
	if err != nil {
		r.logger.Errorf("Failed to update volunteer %d: %v", volunteer.ID, err)
		return nil, err
	}

	return r.GetVolunteer(ctx, volunteer.ID)
}

func (r *VolunteerRepository) DeleteVolunteer(ctx context.Context, id uint) error {
	r.logger.Infof("Deleting volunteer: %d", id)

	return r.db.DB(ctx).Transaction(func(tx *gorm.DB) error {
		target := &models.Volunteer{ID: id}
		if err := tx.Model(target).Association("Groups").Clear(); err != nil {
			return err
		}
		if err := tx.Model(target).Association("Services").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.Volunteer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
