package repository

import (
	"civilprotection-backend/models"
	"context"
)

// VolunteerRepositoryInterface defines the contract for volunteer repository operations
type VolunteerRepositoryInterface interface {
	ListVolunteers(ctx context.Context, page models.Pagination) ([]*models.Volunteer, error)
	GetVolunteer(ctx context.Context, id uint) (*models.Volunteer, error)
	FindVolunteers(ctx context.Context, ids []uint) ([]models.Volunteer, error)
	CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) (*models.Volunteer, error)
	UpdateVolunteer(ctx context.Context, volunteer *models.Volunteer) (*models.Volunteer, error)
	DeleteVolunteer(ctx context.Context, id uint) error
}

// VehicleRepositoryInterface defines the contract for vehicle repository operations
type VehicleRepositoryInterface interface {
	ListVehicles(ctx context.Context, page models.Pagination) ([]*models.Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error)
	FindVehicles(ctx context.Context, ids []uint) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uint) error
}

// ServiceRepositoryInterface defines the contract for service repository operations
type ServiceRepositoryInterface interface {
	ListServices(ctx context.Context, page models.Pagination) ([]*models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, service *models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, service *models.Service) (*models.Service, error)
	DeleteService(ctx context.Context, id uint) error
}

// RoleRepositoryInterface defines the contract for role repository operations
type RoleRepositoryInterface interface {
	ListRoles(ctx context.Context) ([]*models.Role, error)
	GetRole(ctx context.Context, id uint) (*models.Role, error)
	FindRole(ctx context.Context, id uint) (*models.Role, error)
}

// GroupRepositoryInterface defines the contract for group repository operations
type GroupRepositoryInterface interface {
	ListGroups(ctx context.Context) ([]*models.Group, error)
	GetGroup(ctx context.Context, id uint) (*models.Group, error)
	FindGroups(ctx context.Context, ids []uint) ([]models.Group, error)
}

// RepositoryContainerInterface defines the contract for the repository container
type RepositoryContainerInterface interface {
	GetVolunteerRepository() VolunteerRepositoryInterface
	GetVehicleRepository() VehicleRepositoryInterface
	GetServiceRepository() ServiceRepositoryInterface
	GetRoleRepository() RoleRepositoryInterface
	GetGroupRepository() GroupRepositoryInterface
}
