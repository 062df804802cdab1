package services

import (
	"civilprotection-backend/models"
	"civilprotection-backend/repository"
	"civilprotection-backend/utils/logger"
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

// Defaults are applied to volunteers created without role or groups
type Defaults struct {
	RoleID  uint
	GroupID uint
}

type VolunteerService struct {
	volunteerRepo repository.VolunteerRepositoryInterface
	roleRepo      repository.RoleRepositoryInterface
	groupRepo     repository.GroupRepositoryInterface
	defaults      Defaults
	logger        logger.Logger
	validator     *validator.Validate
}

func NewVolunteerService(
	volunteerRepo repository.VolunteerRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	defaults Defaults,
	logger logger.Logger,
) *VolunteerService {
	return &VolunteerService{
		volunteerRepo: volunteerRepo,
		roleRepo:      roleRepo,
		groupRepo:     groupRepo,
		defaults:      defaults,
		logger:        logger,
		validator:     newValidator(),
	}
}

func (s *VolunteerService) ListVolunteers(ctx context.Context, page models.Pagination) ([]*models.Volunteer, error) {
	return s.volunteerRepo.ListVolunteers(ctx, page)
}

func (s *VolunteerService) GetVolunteer(ctx context.Context, id uint) (*models.Volunteer, error) {
	volunteer, err := s.volunteerRepo.GetVolunteer(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.ErrVolunteerNotFound
	}
	return volunteer, err
}

// CreateVolunteer validates raw and stores the volunteer. When the body sets
// dummy_data the volunteer is fully validated but not stored, and created is
// false.
func (s *VolunteerService) CreateVolunteer(ctx context.Context, raw []byte) (volunteer *models.Volunteer, created bool, err error) {
	r, err := readBody(raw, "name", "surnames", "birthday", "document", "address", "phone1")
	if err != nil {
		return nil, false, err
	}

	volunteer = &models.Volunteer{
		Name:     r.str("name"),
		Surnames: r.str("surnames"),
		Document: r.str("document"),
		Address:  r.str("address"),
		Email:    r.optStr("email"),
		Phone1:   r.integer("phone1"),
		Phone2:   r.optInt("phone2"),
		Active:   true,
	}
	dummy := r.optBool("dummy_data")

	roleID := s.defaults.RoleID
	if !r.isNull("role") {
		roleID = uint(max(r.integer("role"), 0))
	}
	groupIDs, single := []uint{s.defaults.GroupID}, true
	if !r.isNull("groups") {
		groupIDs, single = r.ids("groups")
	}
	volunteer.Birthday = r.date("birthday", models.DateFormat, models.ErrBadDate)
	if r.err != nil {
		return nil, false, r.err
	}

	if err := validateStruct(s.validator, volunteer); err != nil {
		return nil, false, err
	}
	if err := s.resolveRelations(ctx, volunteer, roleID, groupIDs, single); err != nil {
		return nil, false, err
	}

	if dummy {
		s.logger.Infof("Dry run volunteer creation for %s %s", volunteer.Name, volunteer.Surnames)
		return volunteer, false, nil
	}

	volunteer, err = s.volunteerRepo.CreateVolunteer(ctx, volunteer)
	if err != nil {
		return nil, false, err
	}
	return volunteer, true, nil
}

// UpdateVolunteer replaces every field of the volunteer with the body's
// values. updated is false when the body matches the stored record.
func (s *VolunteerService) UpdateVolunteer(ctx context.Context, id uint, raw []byte) (volunteer *models.Volunteer, updated bool, err error) {
	if models.VolunteerUpdateProtected(id) {
		return nil, false, models.ErrForbiddenUpdate
	}

	existing, err := s.GetVolunteer(ctx, id)
	if err != nil {
		return nil, false, err
	}

	r, err := readBody(raw, "name", "surnames", "birthday", "document", "address", "email", "phone1", "role", "groups", "active")
	if err != nil {
		return nil, false, err
	}

	volunteer = &models.Volunteer{
		ID:       existing.ID,
		Name:     r.str("name"),
		Surnames: r.str("surnames"),
		Document: r.str("document"),
		Address:  r.str("address"),
		Email:    r.optStr("email"),
		Phone1:   r.integer("phone1"),
		Phone2:   r.optInt("phone2"),
		Active:   r.boolean("active"),
	}
	roleID := uint(max(r.integer("role"), 0))
	groupIDs, single := r.ids("groups")
	volunteer.Birthday = r.date("birthday", models.DateFormat, models.ErrBadDate)
	if r.err != nil {
		return nil, false, r.err
	}

	if unchangedVolunteer(existing, volunteer, roleID, groupIDs) {
		return existing, false, nil
	}

	if err := validateStruct(s.validator, volunteer); err != nil {
		return nil, false, err
	}
	if err := s.resolveRelations(ctx, volunteer, roleID, groupIDs, single); err != nil {
		return nil, false, err
	}

	volunteer, err = s.volunteerRepo.UpdateVolunteer(ctx, volunteer)
	if err != nil {
		return nil, false, err
	}
	return volunteer, true, nil
}

func (s *VolunteerService) DeleteVolunteer(ctx context.Context, id uint) error {
	if models.VolunteerDeleteProtected(id) {
		return models.ErrForbiddenDelete
	}
	err := s.volunteerRepo.DeleteVolunteer(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.ErrVolunteerNotFound
	}
	return err
}

// resolveRelations looks up the role and groups by id and attaches them
func (s *VolunteerService) resolveRelations(ctx context.Context, volunteer *models.Volunteer, roleID uint, groupIDs []uint, single bool) error {
	role, err := s.roleRepo.FindRole(ctx, roleID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.ErrInvalidRole
	}
	if err != nil {
		return err
	}
	volunteer.RoleID = role.ID
	volunteer.Role = models.Role{ID: role.ID, Name: role.Name}

	if len(groupIDs) > models.MaxVolunteerGroups {
		return models.ErrMaxGroups
	}
	wanted := normalizeIDs(groupIDs)
	groups, err := s.groupRepo.FindGroups(ctx, wanted)
	if err != nil {
		return err
	}
	if len(groups) != len(wanted) {
		if single {
			return models.ErrInvalidGroup
		}
		return models.ErrInvalidList
	}
	volunteer.Groups = groups
	return nil
}

func unchangedVolunteer(existing, incoming *models.Volunteer, roleID uint, groupIDs []uint) bool {
	return existing.Name == incoming.Name &&
		existing.Surnames == incoming.Surnames &&
		models.FormatDate(existing.Birthday) == models.FormatDate(incoming.Birthday) &&
		existing.Document == incoming.Document &&
		existing.Address == incoming.Address &&
		equalPtr(existing.Email, incoming.Email) &&
		existing.Phone1 == incoming.Phone1 &&
		equalPtr(existing.Phone2, incoming.Phone2) &&
		existing.Active == incoming.Active &&
		existing.RoleID == roleID &&
		sameIDs(existing.GroupIDs(), groupIDs)
}
