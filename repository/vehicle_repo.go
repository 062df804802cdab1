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

type VehicleRepository struct {
	db     dal.DatabaseClientInterface
	logger logger.Logger
}

func NewVehicleRepository(db dal.DatabaseClientInterface, log logger.Logger) *VehicleRepository {
	return &VehicleRepository{
		db:     db,
		logger: log,
	}
}

func withServices(db *gorm.DB) *gorm.DB {
	return db.Preload("Services", byID)
}

func (r *VehicleRepository) ListVehicles(ctx context.Context, page models.Pagination) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	if err := r.db.DB(ctx).Scopes(paginate(page), byID, withServices).Find(&vehicles).Error; err != nil {
		r.logger.Errorf("Failed to list vehicles: %v", err)
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.DB(ctx).Scopes(withServices).First(&vehicle, id).Error; err != nil {
		return nil, translate(err)
	}
	return &vehicle, nil
}

func (r *VehicleRepository) FindVehicles(ctx context.Context, ids []uint) ([]models.Vehicle, error) {
	vehicles := []models.Vehicle{}
	if len(ids) == 0 {
		return vehicles, nil
	}
	if err := r.db.DB(ctx).Where("id IN ?", ids).Order("id").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	r.logger.Infof("Creating vehicle: %s (%s)", vehicle.Name, vehicle.License)

	if err := r.db.DB(ctx).Omit(clause.Associations).Create(vehicle).Error; err != nil {
		r.logger.Errorf("Failed to create vehicle: %v", err)
		return nil, err
	}

	r.logger.Infof("Vehicle created successfully: %d", vehicle.ID)
	return r.GetVehicle(ctx, vehicle.ID)
}

func (r *VehicleRepository) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	r.logger.Infof("Updating vehicle: %d", vehicle.ID)

	if err := r.db.DB(ctx).Omit(clause.Associations).Save(vehicle).Error; err != nil {
		r.logger.Errorf("Failed to update vehicle %d: %v", vehicle.ID, err)
		return nil, err
	}

	return r.GetVehicle(ctx, vehicle.ID)
}

func (r *VehicleRepository) DeleteVehicle(ctx context.Context, id uint) error {
	r.logger.Infof("Deleting vehicle: %d", id)

	return r.db.DB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Vehicle{ID: id}).Association("Services").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.Vehicle{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
