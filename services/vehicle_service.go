package services

import (
	"civilprotection-backend/models"
	"civilprotection-backend/repository"
	"civilprotection-backend/utils/logger"
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

type VehicleService struct {
	vehicleRepo repository.VehicleRepositoryInterface
	logger      logger.Logger
	validator   *validator.Validate
}

func NewVehicleService(vehicleRepo repository.VehicleRepositoryInterface, logger logger.Logger) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
		validator:   newValidator(),
	}
}

func (s *VehicleService) ListVehicles(ctx context.Context, page models.Pagination) ([]*models.Vehicle, error) {
	return s.vehicleRepo.ListVehicles(ctx, page)
}

func (s *VehicleService) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetVehicle(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.ErrVehicleNotFound
	}
	return vehicle, err
}

// CreateVehicle stores a new, active vehicle
func (s *VehicleService) CreateVehicle(ctx context.Context, raw []byte) (*models.Vehicle, error) {
	r, err := readBody(raw, "name", "brand", "license", "year", "next_itv")
	if err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		Name:      r.str("name"),
		Brand:     r.str("brand"),
		License:   r.str("license"),
		Year:      r.integer("year"),
		Incidents: r.optStr("incidents"),
		Active:    true,
	}
	vehicle.NextITV = r.date("next_itv", models.DateFormat, models.ErrBadDate)
	if r.err != nil {
		return nil, r.err
	}

	if err := validateStruct(s.validator, vehicle); err != nil {
		return nil, err
	}
	return s.vehicleRepo.CreateVehicle(ctx, vehicle)
}

// UpdateVehicle replaces every field of the vehicle. updated is false when
// the body matches the stored record.
func (s *VehicleService) UpdateVehicle(ctx context.Context, id uint, raw []byte) (vehicle *models.Vehicle, updated bool, err error) {
	if models.VehicleUpdateProtected(id) {
		return nil, false, models.ErrForbiddenUpdate
	}

	existing, err := s.GetVehicle(ctx, id)
	if err != nil {
		return nil, false, err
	}

	r, err := readBody(raw, "name", "brand", "license", "year", "next_itv", "active")
	if err != nil {
		return nil, false, err
	}

	vehicle = &models.Vehicle{
		ID:        existing.ID,
		Name:      r.str("name"),
		Brand:     r.str("brand"),
		License:   r.str("license"),
		Year:      r.integer("year"),
		Incidents: r.optStr("incidents"),
		Active:    r.boolean("active"),
	}
	vehicle.NextITV = r.date("next_itv", models.DateFormat, models.ErrBadDate)
	if r.err != nil {
		return nil, false, r.err
	}

	if unchangedVehicle(existing, vehicle) {
		return existing, false, nil
	}
	if err := validateStruct(s.validator, vehicle); err != nil {
		return nil, false, err
	}

	vehicle, err = s.vehicleRepo.UpdateVehicle(ctx, vehicle)
	if err != nil {
		return nil, false, err
	}
	return vehicle, true, nil
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, id uint) error {
	if models.VehicleDeleteProtected(id) {
		return models.ErrForbiddenDelete
	}
	err := s.vehicleRepo.DeleteVehicle(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.ErrVehicleNotFound
	}
	return err
}

func unchangedVehicle(existing, incoming *models.Vehicle) bool {
	return existing.Name == incoming.Name &&
		existing.Brand == incoming.Brand &&
		existing.License == incoming.License &&
		existing.Year == incoming.Year &&
		models.FormatDate(existing.NextITV) == models.FormatDate(incoming.NextITV) &&
		equalPtr(existing.Incidents, incoming.Incidents) &&
		existing.Active == incoming.Active
}
