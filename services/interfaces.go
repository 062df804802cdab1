package services

import (
	"civilprotection-backend/models"
	"context"
)

// VolunteerServiceInterface defines the contract for volunteer service
type VolunteerServiceInterface interface {
	ListVolunteers(ctx context.Context, page models.Pagination) ([]*models.Volunteer, error)
	GetVolunteer(ctx context.Context, id uint) (*models.Volunteer, error)
	CreateVolunteer(ctx context.Context, raw []byte) (*models.Volunteer, bool, error)
	UpdateVolunteer(ctx context.Context, id uint, raw []byte) (*models.Volunteer, bool, error)
	DeleteVolunteer(ctx context.Context, id uint) error
}

// VehicleServiceInterface defines the contract for vehicle service
type VehicleServiceInterface interface {
	ListVehicles(ctx context.Context, page models.Pagination) ([]*models.Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error)
	CreateVehicle(ctx context.Context, raw []byte) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id uint, raw []byte) (*models.Vehicle, bool, error)
	DeleteVehicle(ctx context.Context, id uint) error
}

// ServiceServiceInterface defines the contract for service (event) service
type ServiceServiceInterface interface {
	ListServices(ctx context.Context, page models.Pagination) ([]*models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, raw []byte) (*models.Service, error)
	UpdateService(ctx context.Context, id uint, raw []byte) (*models.Service, bool, error)
	DeleteService(ctx context.Context, id uint) error
}

// RoleServiceInterface defines the contract for role service
type RoleServiceInterface interface {
	ListRoles(ctx context.Context) ([]*models.Role, error)
	GetRole(ctx context.Context, id uint) (*models.Role, error)
}

// GroupServiceInterface defines the contract for group service
type GroupServiceInterface interface {
	ListGroups(ctx context.Context) ([]*models.Group, error)
	GetGroup(ctx context.Context, id uint) (*models.Group, error)
}

// ServiceContainerInterface defines the main service container contract
type ServiceContainerInterface interface {
	GetVolunteerService() VolunteerServiceInterface
	GetVehicleService() VehicleServiceInterface
	GetServiceService() ServiceServiceInterface
	GetRoleService() RoleServiceInterface
	GetGroupService() GroupServiceInterface
}
