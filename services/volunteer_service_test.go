package services

import (
	"civilprotection-backend/models"
	"civilprotection-backend/repository"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// VolunteerServiceTestSuite defines a test suite for VolunteerService functions
type VolunteerServiceTestSuite struct {
	suite.Suite
	ctx              context.Context
	volunteerRepo    *MockVolunteerRepository
	roleRepo         *MockRoleRepository
	groupRepo        *MockGroupRepository
	volunteerService *VolunteerService
}

// SetupTest runs before each test
func (suite *VolunteerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.volunteerRepo = &MockVolunteerRepository{}
	suite.roleRepo = &MockRoleRepository{}
	suite.groupRepo = &MockGroupRepository{}
	suite.volunteerService = NewVolunteerService(
		suite.volunteerRepo,
		suite.roleRepo,
		suite.groupRepo,
		Defaults{RoleID: 1, GroupID: 7},
		newMockLogger(),
	)
}

// TearDownTest runs after each test
func (suite *VolunteerServiceTestSuite) TearDownTest() {
	suite.volunteerRepo.AssertExpectations(suite.T())
	suite.roleRepo.AssertExpectations(suite.T())
	suite.groupRepo.AssertExpectations(suite.T())
}

func (suite *VolunteerServiceTestSuite) storedVolunteer() *models.Volunteer {
	return &models.Volunteer{
		ID:       5,
		Name:     "Ana",
		Surnames: "Lopez Garcia",
		Birthday: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Document: "12345678A",
		Address:  "Calle Mayor 1",
		Phone1:   600000000,
		Active:   true,
		RoleID:   1,
		Role:     models.Role{ID: 1, Name: "Volunteer"},
		Groups:   []models.Group{{ID: 7, Name: "Generic"}, {ID: 1, Name: "EMS"}},
	}
}

const volunteerUpdateBody = `{
	"name": "Ana",
	"surnames": "Lopez Garcia",
	"birthday": "1990-05-01",
	"document": "12345678A",
	"address": "Calle Mayor 1",
	"email": null,
	"phone1": 600000000,
	"role": 1,
	"groups": [1, 7],
	"active": true
}`

func (suite *VolunteerServiceTestSuite) TestGetVolunteerNotFound() {
	suite.volunteerRepo.On("GetVolunteer", suite.ctx, uint(42)).Return(nil, repository.ErrNotFound)

	volunteer, err := suite.volunteerService.GetVolunteer(suite.ctx, 42)

	assert.Nil(suite.T(), volunteer)
	assert.ErrorIs(suite.T(), err, models.ErrVolunteerNotFound)
}

func (suite *VolunteerServiceTestSuite) TestCreateVolunteerAppliesDefaults() {
	suite.roleRepo.On("FindRole", suite.ctx, uint(1)).Return(&models.Role{ID: 1, Name: "Volunteer"}, nil)
	suite.groupRepo.On("FindGroups", suite.ctx, []uint{7}).Return([]models.Group{{ID: 7, Name: "Generic"}}, nil)
	suite.volunteerRepo.On("CreateVolunteer", suite.ctx, mock.MatchedBy(func(v *models.Volunteer) bool {
		return v.Name == "Ana" && v.Active && v.RoleID == 1 && len(v.Groups) == 1 &&
			v.Phone2 == nil && v.Email != nil && *v.Email == "ana@example.com" &&
			v.Birthday.Equal(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC))
	})).Return(&models.Volunteer{ID: 5, Name: "Ana"}, nil)

	volunteer, created, err := suite.volunteerService.CreateVolunteer(suite.ctx, []byte(`{
		"name": "Ana", "surnames": "Lopez Garcia", "birthday": "1990-05-01",
		"document": "12345678A", "address": "Calle Mayor 1",
		"email": "ana@example.com", "phone1": 600000000
	}`))

	require.NoError(suite.T(), err)
	assert.True(suite.T(), created)
	assert.Equal(suite.T(), uint(5), volunteer.ID)
}

func (suite *VolunteerServiceTestSuite) TestCreateVolunteerDummyDataIsNotStored() {
	suite.roleRepo.On("FindRole", suite.ctx, uint(2)).Return(&models.Role{ID: 2, Name: "Team Leader"}, nil)
	suite.groupRepo.On("FindGroups", suite.ctx, []uint{1, 2}).
		Return([]models.Group{{ID: 1, Name: "EMS"}, {ID: 2, Name: "Logistics"}}, nil)

	volunteer, created, err := suite.volunteerService.CreateVolunteer(suite.ctx, []byte(`{
		"name": "Ana", "surnames": "Lopez Garcia", "birthday": "1990-05-01",
		"document": "12345678A", "address": "Calle Mayor 1", "phone1": 600000000,
		"role": 2, "groups": [2, 1, 2], "dummy_data": true
	}`))

	require.NoError(suite.T(), err)
	assert.False(suite.T(), created)
	assert.Equal(suite.T(), uint(0), volunteer.ID)
	assert.Equal(suite.T(), "Team Leader", volunteer.Role.Name)
	assert.Equal(suite.T(), []string{"EMS", "Logistics"}, volunteer.GroupNames())
	suite.volunteerRepo.AssertNotCalled(suite.T(), "CreateVolunteer", mock.Anything, mock.Anything)
}

func (suite *VolunteerServiceTestSuite) TestCreateVolunteerValidation() {
	tests := []struct {
		name string
		body string
		want *models.AppError
	}{
		{"empty body", ``, models.ErrBodyNeeded},
		{"array body", `[1, 2]`, models.ErrBodyNeeded},
		{"missing phone", `{"name":"Ana","surnames":"L","birthday":"1990-05-01","document":"1","address":"a"}`, models.ErrMissingData},
		{"phone as string", `{"name":"Ana","surnames":"L","birthday":"1990-05-01","document":"1","address":"a","phone1":"600"}`, models.ErrWrongType},
		{"name as number", `{"name":1,"surnames":"L","birthday":"1990-05-01","document":"1","address":"a","phone1":600}`, models.ErrWrongType},
		{"fractional phone", `{"name":"Ana","surnames":"L","birthday":"1990-05-01","document":"1","address":"a","phone1":6.5}`, models.ErrWrongType},
		{"bad birthday", `{"name":"Ana","surnames":"L","birthday":"01/05/1990","document":"1","address":"a","phone1":600}`, models.ErrBadDate},
		{"groups as string", `{"name":"Ana","surnames":"L","birthday":"1990-05-01","document":"1","address":"a","phone1":600,"groups":"1"}`, models.ErrWrongType},
		{"name too long", `{"name":"` + strings.Repeat("a", 13) + `","surnames":"L","birthday":"1990-05-01","document":"1","address":"a","phone1":600}`, models.ErrUnprocessable},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, _, err := suite.volunteerService.CreateVolunteer(suite.ctx, []byte(tt.body))
			assert.ErrorIs(suite.T(), err, tt.want)
		})
	}
}

func (suite *VolunteerServiceTestSuite) TestCreateVolunteerTooManyGroups() {
	suite.roleRepo.On("FindRole", suite.ctx, uint(1)).Return(&models.Role{ID: 1, Name: "Volunteer"}, nil)

	_, _, err := suite.volunteerService.CreateVolunteer(suite.ctx, []byte(`{
		"name": "Ana", "surnames": "L", "birthday": "1990-05-01", "document": "1",
		"address": "a", "phone1": 600, "groups": [1, 2, 3, 4, 5, 6]
	}`))

	assert.ErrorIs(suite.T(), err, models.ErrMaxGroups)
	suite.groupRepo.AssertNotCalled(suite.T(), "FindGroups", mock.Anything, mock.Anything)
}

func (suite *VolunteerServiceTestSuite) TestCreateVolunteerInvalidRelations() {
	suite.Run("unknown role", func() {
		suite.roleRepo.On("FindRole", suite.ctx, uint(99)).Return(nil, repository.ErrNotFound).Once()

		_, _, err := suite.volunteerService.CreateVolunteer(suite.ctx, []byte(`{
			"name": "Ana", "surnames": "L", "birthday": "1990-05-01", "document": "1",
			"address": "a", "phone1": 600, "role": 99
		}`))
		assert.ErrorIs(suite.T(), err, models.ErrInvalidRole)
	})

	suite.Run("unknown single group", func() {
		suite.roleRepo.On("FindRole", suite.ctx, uint(1)).Return(&models.Role{ID: 1}, nil).Once()
		suite.groupRepo.On("FindGroups", suite.ctx, []uint{99}).Return([]models.Group{}, nil).Once()

		_, _, err := suite.volunteerService.CreateVolunteer(suite.ctx, []byte(`{
			"name": "Ana", "surnames": "L", "birthday": "1990-05-01", "document": "1",
			"address": "a", "phone1": 600, "groups": 99
		}`))
		assert.ErrorIs(suite.T(), err, models.ErrInvalidGroup)
	})

	suite.Run("unknown group in list", func() {
		suite.roleRepo.On("FindRole", suite.ctx, uint(1)).Return(&models.Role{ID: 1}, nil).Once()
		suite.groupRepo.On("FindGroups", suite.ctx, []uint{1, 99}).Return([]models.Group{{ID: 1}}, nil).Once()

		_, _, err := suite.volunteerService.CreateVolunteer(suite.ctx, []byte(`{
			"name": "Ana", "surnames": "L", "birthday": "1990-05-01", "document": "1",
			"address": "a", "phone1": 600, "groups": [1, 99]
		}`))
		assert.ErrorIs(suite.T(), err, models.ErrInvalidList)
	})
}

func (suite *VolunteerServiceTestSuite) TestUpdateVolunteerProtected() {
	_, _, err := suite.volunteerService.UpdateVolunteer(suite.ctx, 3, []byte(volunteerUpdateBody))

	assert.ErrorIs(suite.T(), err, models.ErrForbiddenUpdate)
	suite.volunteerRepo.AssertNotCalled(suite.T(), "GetVolunteer", mock.Anything, mock.Anything)
}

func (suite *VolunteerServiceTestSuite) TestUpdateVolunteerNotFoundBeforeBody() {
	suite.volunteerRepo.On("GetVolunteer", suite.ctx, uint(50)).Return(nil, repository.ErrNotFound)

	_, _, err := suite.volunteerService.UpdateVolunteer(suite.ctx, 50, []byte(`{}`))

	assert.ErrorIs(suite.T(), err, models.ErrVolunteerNotFound)
}

func (suite *VolunteerServiceTestSuite) TestUpdateVolunteerNoChange() {
	suite.volunteerRepo.On("GetVolunteer", suite.ctx, uint(5)).Return(suite.storedVolunteer(), nil)

	volunteer, updated, err := suite.volunteerService.UpdateVolunteer(suite.ctx, 5, []byte(volunteerUpdateBody))

	require.NoError(suite.T(), err)
	assert.False(suite.T(), updated)
	assert.Equal(suite.T(), uint(5), volunteer.ID)
	suite.volunteerRepo.AssertNotCalled(suite.T(), "UpdateVolunteer", mock.Anything, mock.Anything)
}

func (suite *VolunteerServiceTestSuite) TestUpdateVolunteerRequiresEmail() {
	suite.volunteerRepo.On("GetVolunteer", suite.ctx, uint(5)).Return(suite.storedVolunteer(), nil)

	_, _, err := suite.volunteerService.UpdateVolunteer(suite.ctx, 5, []byte(`{
		"name": "Ana", "surnames": "Lopez Garcia", "birthday": "1990-05-01",
		"document": "12345678A", "address": "Calle Mayor 1", "phone1": 600000000,
		"role": 1, "groups": [1, 7], "active": true
	}`))

	assert.ErrorIs(suite.T(), err, models.ErrMissingData)
}

func (suite *VolunteerServiceTestSuite) TestUpdateVolunteerReplacesFields() {
	suite.volunteerRepo.On("GetVolunteer", suite.ctx, uint(5)).Return(suite.storedVolunteer(), nil)
	suite.roleRepo.On("FindRole", suite.ctx, uint(2)).Return(&models.Role{ID: 2, Name: "Team Leader"}, nil)
	suite.groupRepo.On("FindGroups", suite.ctx, []uint{3}).Return([]models.Group{{ID: 3, Name: "Communications"}}, nil)
	suite.volunteerRepo.On("UpdateVolunteer", suite.ctx, mock.MatchedBy(func(v *models.Volunteer) bool {
		return v.ID == 5 && v.Surnames == "Lopez" && !v.Active && v.RoleID == 2 &&
			len(v.Groups) == 1 && v.Groups[0].ID == 3
	})).Return(&models.Volunteer{ID: 5, Surnames: "Lopez"}, nil)

	volunteer, updated, err := suite.volunteerService.UpdateVolunteer(suite.ctx, 5, []byte(`{
		"name": "Ana", "surnames": "Lopez", "birthday": "1990-05-01",
		"document": "12345678A", "address": "Calle Mayor 1", "email": null,
		"phone1": 600000000, "role": 2, "groups": 3, "active": false
	}`))

	require.NoError(suite.T(), err)
	assert.True(suite.T(), updated)
	assert.Equal(suite.T(), "Lopez", volunteer.Surnames)
}

func (suite *VolunteerServiceTestSuite) TestDeleteVolunteer() {
	suite.Run("protected", func() {
		err := suite.volunteerService.DeleteVolunteer(suite.ctx, 4)
		assert.ErrorIs(suite.T(), err, models.ErrForbiddenDelete)
	})

	suite.Run("not found", func() {
		suite.volunteerRepo.On("DeleteVolunteer", suite.ctx, uint(77)).Return(repository.ErrNotFound).Once()
		err := suite.volunteerService.DeleteVolunteer(suite.ctx, 77)
		assert.ErrorIs(suite.T(), err, models.ErrVolunteerNotFound)
	})

	suite.Run("deleted", func() {
		suite.volunteerRepo.On("DeleteVolunteer", suite.ctx, uint(5)).Return(nil).Once()
		assert.NoError(suite.T(), suite.volunteerService.DeleteVolunteer(suite.ctx, 5))
	})
}

// TestVolunteerServiceTestSuite runs the test suite
func TestVolunteerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VolunteerServiceTestSuite))
}
