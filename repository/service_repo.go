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

type ServiceRepository struct {
	db     dal.DatabaseClientInterface
	logger logger.Logger
}

func NewServiceRepository(db dal.DatabaseClientInterface, log logger.Logger) *ServiceRepository {
	return &ServiceRepository{
		db:     db,
		logger: log,
	}
}

func withCrew(db *gorm.DB) *gorm.DB {
	return db.Preload("Vehicles", byID).Preload("Volunteers", byID)
}

func (r *ServiceRepository) ListServices(ctx context.Context, page models.Pagination) ([]*models.Service, error) {
	var services []*models.Service
	if err := r.db.DB(ctx).Scopes(paginate(page), byID, withCrew).Find(&services).Error; err != nil {
		r.logger.Errorf("Failed to list services: %v", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *ServiceRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.DB(ctx).Scopes(withCrew).First(&service, id).Error; err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *ServiceRepository) CreateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	r.logger.Infof("Creating service: %s", service.Name)

	err := r.db.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(service).Error; err != nil {
			return err
		}
		return replaceCrew(tx, service)
	})
	if err != nil {
		r.logger.Errorf("Failed to create service: %v", err)
		return nil, err
	}

	r.logger.Infof("Service created successfully: %d", service.ID)
	return r.GetService(ctx, service.ID)
}

func (r *ServiceRepository) UpdateService(ctx context.Context, service *models.Service) (*models.Service, error) {
	r.logger.Infof("Updating service: %d", service.ID)

	err := r.db.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(service).Error; err != nil {
			return err
		}
		return replaceCrew(tx, service)
	})
	if err != nil {
		r.logger.Errorf("Failed to update service %d: %v", service.ID, err)
		return nil, err
	}

	return r.GetService(ctx, service.ID)
}

func (r *ServiceRepository) DeleteService(ctx context.Context, id uint) error {
	r.logger.Infof("Deleting service: %d", id)

	return r.db.DB(ctx).Transaction(func(tx *gorm.DB) error {
		target := &models.Service{ID: id}
		if err := tx.Model(target).Association("Vehicles").Clear(); err != nil {
			return err
		}
		if err := tx.Model(target).Association("Volunteers").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.Service{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func replaceCrew(tx *gorm.DB, service *models.Service) error {
	vehicles := append([]models.Vehicle{}, service.Vehicles...)
	volunteers := append([]models.Volunteer{}, service.Volunteers...)
	if err := tx.Model(service).Association("Vehicles").Replace(vehicles); err != nil {
		return err
	}
	return tx.Model(service).Association("Volunteers").Replace(volunteers)
}
