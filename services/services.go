package services

import (
	"civilprotection-backend/models"
	"civilprotection-backend/repository"
	"civilprotection-backend/utils/logger"
)

// Service implements ServiceContainerInterface
type Service struct {
	volunteerService VolunteerServiceInterface
	vehicleService   VehicleServiceInterface
	serviceService   ServiceServiceInterface
	roleService      RoleServiceInterface
	groupService     GroupServiceInterface
}

// NewService creates a new service container with all dependencies injected
func NewService(
	repoContainer repository.RepositoryContainerInterface,
	logger logger.Logger,
	config *models.Config,
) ServiceContainerInterface {
	defaults := Defaults{RoleID: config.DefaultRoleID, GroupID: config.DefaultGroupID}
	return &Service{
		volunteerService: NewVolunteerService(
			repoContainer.GetVolunteerRepository(),
			repoContainer.GetRoleRepository(),
			repoContainer.GetGroupRepository(),
			defaults,
			logger,
		),
		vehicleService: NewVehicleService(repoContainer.GetVehicleRepository(), logger),
		serviceService: NewServiceService(
			repoContainer.GetServiceRepository(),
			repoContainer.GetVehicleRepository(),
			repoContainer.GetVolunteerRepository(),
			logger,
		),
		roleService:  NewRoleService(repoContainer.GetRoleRepository(), logger),
		groupService: NewGroupService(repoContainer.GetGroupRepository(), logger),
	}
}

// GetVolunteerService returns the volunteer service interface
func (s *Service) GetVolunteerService() VolunteerServiceInterface {
	return s.volunteerService
}

// GetVehicleService returns the vehicle service interface
func (s *Service) GetVehicleService() VehicleServiceInterface {
	return s.vehicleService
}

// GetServiceService returns the service (event) service interface
func (s *Service) GetServiceService() ServiceServiceInterface {
	return s.serviceService
}

// GetRoleService returns the role service interface
func (s *Service) GetRoleService() RoleServiceInterface {
	return s.roleService
}

// GetGroupService returns the group service interface
func (s *Service) GetGroupService() GroupServiceInterface {
	return s.groupService
}
