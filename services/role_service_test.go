package services

import (
	"civilprotection-backend/models"
	"civilprotection-backend/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ReadOnlyServiceTestSuite covers the role and group services
type ReadOnlyServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	roleRepo     *MockRoleRepository
	groupRepo    *MockGroupRepository
	roleService  *RoleService
	groupService *GroupService
}

// SetupTest runs before each test
func (suite *ReadOnlyServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.roleRepo = &MockRoleRepository{}
	suite.groupRepo = &MockGroupRepository{}
	log := newMockLogger()
	suite.roleService = NewRoleService(suite.roleRepo, log)
	suite.groupService = NewGroupService(suite.groupRepo, log)
}

// TearDownTest runs after each test
func (suite *ReadOnlyServiceTestSuite) TearDownTest() {
	suite.roleRepo.AssertExpectations(suite.T())
	suite.groupRepo.AssertExpectations(suite.T())
}

func (suite *ReadOnlyServiceTestSuite) TestNewRoleService() {
	service := NewRoleService(suite.roleRepo, nil)

	assert.NotNil(suite.T(), service)
	assert.Equal(suite.T(), suite.roleRepo, service.roleRepo)
}

func (suite *ReadOnlyServiceTestSuite) TestListRoles() {
	roles := []*models.Role{{ID: 1, Name: "Volunteer"}, {ID: 2, Name: "Team Leader"}}
	suite.roleRepo.On("ListRoles", suite.ctx).Return(roles, nil)

	result, err := suite.roleService.ListRoles(suite.ctx)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
}

func (suite *ReadOnlyServiceTestSuite) TestGetRoleNotFound() {
	suite.roleRepo.On("GetRole", suite.ctx, uint(9)).Return(nil, repository.ErrNotFound)

	_, err := suite.roleService.GetRole(suite.ctx, 9)

	assert.ErrorIs(suite.T(), err, models.ErrRoleNotFound)
}

func (suite *ReadOnlyServiceTestSuite) TestGetGroup() {
	suite.groupRepo.On("GetGroup", suite.ctx, uint(7)).Return(&models.Group{ID: 7, Name: "Generic"}, nil)
	suite.groupRepo.On("GetGroup", suite.ctx, uint(8)).Return(nil, repository.ErrNotFound)

	group, err := suite.groupService.GetGroup(suite.ctx, 7)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Generic", group.Name)

	_, err = suite.groupService.GetGroup(suite.ctx, 8)
	assert.ErrorIs(suite.T(), err, models.ErrGroupNotFound)
}

// TestReadOnlyServiceTestSuite runs the test suite
func TestReadOnlyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReadOnlyServiceTestSuite))
}
