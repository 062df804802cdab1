package repository

import (
	"civilprotection-backend/dal"
	"civilprotection-backend/models"
	"errors"

	"civilprotection-backend/utils/logger"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the requested id
var ErrNotFound = errors.New("record not found")

// Repository implements RepositoryContainerInterface
type Repository struct {
	volunteer *VolunteerRepository
	vehicle   *VehicleRepository
	service   *ServiceRepository
	role      *RoleRepository
	group     *GroupRepository
}

// NewRepository builds every repository over the same database client
func NewRepository(db dal.DatabaseClientInterface, log logger.Logger) *Repository {
	return &Repository{
		volunteer: NewVolunteerRepository(db, log),
		vehicle:   NewVehicleRepository(db, log),
		service:   NewServiceRepository(db, log),
		role:      NewRoleRepository(db, log),
		group:     NewGroupRepository(db, log),
	}
}

func (r *Repository) GetVolunteerRepository() VolunteerRepositoryInterface { return r.volunteer }
func (r *Repository) GetVehicleRepository() VehicleRepositoryInterface     { return r.vehicle }
func (r *Repository) GetServiceRepository() ServiceRepositoryInterface     { return r.service }
func (r *Repository) GetRoleRepository() RoleRepositoryInterface           { return r.role }
func (r *Repository) GetGroupRepository() GroupRepositoryInterface         { return r.group }

// translate maps driver errors onto repository errors
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// paginate applies page when it carries a limit
func paginate(page models.Pagination) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.Limit <= 0 {
			return db
		}
		return db.Offset(page.Offset()).Limit(page.Limit)
	}
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
