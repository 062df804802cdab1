package services

import (
	"civilprotection-backend/models"
	"civilprotection-backend/repository"
	"civilprotection-backend/utils/logger"
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// ServiceService manages services, the events volunteers and vehicles are
// assigned to.
type ServiceService struct {
	serviceRepo   repository.ServiceRepositoryInterface
	vehicleRepo   repository.VehicleRepositoryInterface
	volunteerRepo repository.VolunteerRepositoryInterface
	logger        logger.Logger
	validator     *validator.Validate
	now           func() time.Time
}

func NewServiceService(
	serviceRepo repository.ServiceRepositoryInterface,
	vehicleRepo repository.VehicleRepositoryInterface,
	volunteerRepo repository.VolunteerRepositoryInterface,
	logger logger.Logger,
) *ServiceService {
	return &ServiceService{
		serviceRepo:   serviceRepo,
		vehicleRepo:   vehicleRepo,
		volunteerRepo: volunteerRepo,
		logger:        logger,
		validator:     newValidator(),
		now:           time.Now,
	}
}

func (s *ServiceService) ListServices(ctx context.Context, page models.Pagination) ([]*models.Service, error) {
	return s.serviceRepo.ListServices(ctx, page)
}

func (s *ServiceService) GetService(ctx context.Context, id uint) (*models.Service, error) {
	service, err := s.serviceRepo.GetService(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.ErrServiceNotFound
	}
	return service, err
}

func (s *ServiceService) CreateService(ctx context.Context, raw []byte) (*models.Service, error) {
	r, err := readBody(raw, "name", "place", "date", "vehicles_num", "volunteers_num")
	if err != nil {
		return nil, err
	}

	service := &models.Service{
		Name:          r.str("name"),
		Place:         r.str("place"),
		VehiclesNum:   r.integer("vehicles_num"),
		VolunteersNum: r.integer("volunteers_num"),
		ContactName:   r.optStr("contact_name"),
		ContactPhone:  r.optInt("contact_phone"),
	}
	var vehicleIDs, volunteerIDs []uint
	if !r.isNull("vehicles") {
		vehicleIDs, _ = r.ids("vehicles")
	}
	if !r.isNull("volunteers") {
		volunteerIDs, _ = r.ids("volunteers")
	}
	service.Date = r.date("date", models.FullDateFormat, models.ErrBadFullDate)
	if r.err != nil {
		return nil, r.err
	}

	if err := validateStruct(s.validator, service); err != nil {
		return nil, err
	}
	if err := s.resolveCrew(ctx, service, vehicleIDs, volunteerIDs); err != nil {
		return nil, err
	}
	return s.serviceRepo.CreateService(ctx, service)
}

// UpdateService replaces every field of a service that has not happened
// yet. updated is false when the body matches the stored record.
func (s *ServiceService) UpdateService(ctx context.Context, id uint, raw []byte) (service *models.Service, updated bool, err error) {
	if models.ServiceUpdateProtected(id) {
		return nil, false, models.ErrForbiddenUpdate
	}

	existing, err := s.GetService(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if existing.HasPassed(s.now()) {
		return nil, false, models.ErrForbiddenDateUpdate
	}

	r, err := readBody(raw, "name", "place", "date", "vehicles_num", "volunteers_num", "vehicles", "volunteers")
	if err != nil {
		return nil, false, err
	}

	service = &models.Service{
		ID:            existing.ID,
		Name:          r.str("name"),
		Place:         r.str("place"),
		VehiclesNum:   r.integer("vehicles_num"),
		VolunteersNum: r.integer("volunteers_num"),
		ContactName:   r.optStr("contact_name"),
		ContactPhone:  r.optInt("contact_phone"),
	}
	vehicleIDs, _ := r.ids("vehicles")
	volunteerIDs, _ := r.ids("volunteers")
	service.Date = r.date("date", models.FullDateFormat, models.ErrBadFullDate)
	if r.err != nil {
		return nil, false, r.err
	}

	if unchangedService(existing, service, vehicleIDs, volunteerIDs) {
		return existing, false, nil
	}
	if err := validateStruct(s.validator, service); err != nil {
		return nil, false, err
	}
	if err := s.resolveCrew(ctx, service, vehicleIDs, volunteerIDs); err != nil {
		return nil, false, err
	}

	service, err = s.serviceRepo.UpdateService(ctx, service)
	if err != nil {
		return nil, false, err
	}
	return service, true, nil
}

func (s *ServiceService) DeleteService(ctx context.Context, id uint) error {
	if models.ServiceDeleteProtected(id) {
		return models.ErrForbiddenDelete
	}
	err := s.serviceRepo.DeleteService(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.ErrServiceNotFound
	}
	return err
}

// resolveCrew looks up the vehicles and volunteers by id and attaches them.
// Any unknown id fails the whole request.
func (s *ServiceService) resolveCrew(ctx context.Context, service *models.Service, vehicleIDs, volunteerIDs []uint) error {
	vehicleIDs = normalizeIDs(vehicleIDs)
	vehicles, err := s.vehicleRepo.FindVehicles(ctx, vehicleIDs)
	if err != nil {
		return err
	}
	if len(vehicles) != len(vehicleIDs) {
		return models.ErrInvalidList
	}

	volunteerIDs = normalizeIDs(volunteerIDs)
	volunteers, err := s.volunteerRepo.FindVolunteers(ctx, volunteerIDs)
	if err != nil {
		return err
	}
	if len(volunteers) != len(volunteerIDs) {
		return models.ErrInvalidList
	}

	service.Vehicles = vehicles
	service.Volunteers = volunteers
	return nil
}

func unchangedService(existing, incoming *models.Service, vehicleIDs, volunteerIDs []uint) bool {
	return existing.Name == incoming.Name &&
		existing.Place == incoming.Place &&
		models.FormatFullDate(existing.Date) == models.FormatFullDate(incoming.Date) &&
		existing.VehiclesNum == incoming.VehiclesNum &&
		existing.VolunteersNum == incoming.VolunteersNum &&
		equalPtr(existing.ContactName, incoming.ContactName) &&
		equalPtr(existing.ContactPhone, incoming.ContactPhone) &&
		sameIDs(existing.VehicleIDs(), vehicleIDs) &&
		sameIDs(existing.VolunteerIDs(), volunteerIDs)
}
