package services

import (
	"civilprotection-backend/models"
	"civilprotection-backend/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// VehicleServiceTestSuite defines a test suite for VehicleService functions
type VehicleServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	vehicleRepo    *MockVehicleRepository
	vehicleService *VehicleService
}

// SetupTest runs before each test
func (suite *VehicleServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.vehicleRepo = &MockVehicleRepository{}
	suite.vehicleService = NewVehicleService(suite.vehicleRepo, newMockLogger())
}

// TearDownTest runs after each test
func (suite *VehicleServiceTestSuite) TearDownTest() {
	suite.vehicleRepo.AssertExpectations(suite.T())
}

func storedVehicle() *models.Vehicle {
	incidents := "Broken mirror"
	return &models.Vehicle{
		ID:        3,
		Name:      "Van",
		Brand:     "Ford",
		License:   "1234ABC",
		Year:      2020,
		NextITV:   time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
		Incidents: &incidents,
		Active:    true,
	}
}

func (suite *VehicleServiceTestSuite) TestCreateVehicleIsActive() {
	suite.vehicleRepo.On("CreateVehicle", suite.ctx, mock.MatchedBy(func(v *models.Vehicle) bool {
		return v.Active && v.Incidents == nil && v.Year == 2020 &&
			models.FormatDate(v.NextITV) == "2099-01-01"
	})).Return(&models.Vehicle{ID: 3, Active: true}, nil)

	vehicle, err := suite.vehicleService.CreateVehicle(suite.ctx, []byte(
		`{"name":"Van","brand":"Ford","license":"1234ABC","year":2020,"next_itv":"2099-01-01"}`))

	require.NoError(suite.T(), err)
	assert.True(suite.T(), vehicle.Active)
}

func (suite *VehicleServiceTestSuite) TestCreateVehicleValidation() {
	tests := []struct {
		name string
		body string
		want *models.AppError
	}{
		{"missing year", `{"name":"Van","brand":"Ford","license":"1234ABC","next_itv":"2099-01-01"}`, models.ErrMissingData},
		{"year as string", `{"name":"Van","brand":"Ford","license":"1234ABC","year":"2020","next_itv":"2099-01-01"}`, models.ErrWrongType},
		{"incidents as number", `{"name":"Van","brand":"Ford","license":"1234ABC","year":2020,"next_itv":"2099-01-01","incidents":3}`, models.ErrWrongType},
		{"bad inspection date", `{"name":"Van","brand":"Ford","license":"1234ABC","year":2020,"next_itv":"2099-13-01"}`, models.ErrBadDate},
		{"license too long", `{"name":"Van","brand":"Ford","license":"1234ABCD","year":2020,"next_itv":"2099-01-01"}`, models.ErrUnprocessable},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.vehicleService.CreateVehicle(suite.ctx, []byte(tt.body))
			assert.ErrorIs(suite.T(), err, tt.want)
		})
	}
}

func (suite *VehicleServiceTestSuite) TestUpdateVehicleProtected() {
	_, _, err := suite.vehicleService.UpdateVehicle(suite.ctx, 1, []byte(`{}`))
	assert.ErrorIs(suite.T(), err, models.ErrForbiddenUpdate)
}

func (suite *VehicleServiceTestSuite) TestUpdateVehicleNoChange() {
	suite.vehicleRepo.On("GetVehicle", suite.ctx, uint(3)).Return(storedVehicle(), nil)

	_, updated, err := suite.vehicleService.UpdateVehicle(suite.ctx, 3, []byte(`{
		"name":"Van","brand":"Ford","license":"1234ABC","year":2020,
		"next_itv":"2099-01-01","incidents":"Broken mirror","active":true
	}`))

	require.NoError(suite.T(), err)
	assert.False(suite.T(), updated)
}

func (suite *VehicleServiceTestSuite) TestUpdateVehicleDroppingIncidentsIsAChange() {
	suite.vehicleRepo.On("GetVehicle", suite.ctx, uint(3)).Return(storedVehicle(), nil)
	suite.vehicleRepo.On("UpdateVehicle", suite.ctx, mock.MatchedBy(func(v *models.Vehicle) bool {
		return v.ID == 3 && v.Incidents == nil
	})).Return(&models.Vehicle{ID: 3}, nil)

	_, updated, err := suite.vehicleService.UpdateVehicle(suite.ctx, 3, []byte(`{
		"name":"Van","brand":"Ford","license":"1234ABC","year":2020,
		"next_itv":"2099-01-01","active":true
	}`))

	require.NoError(suite.T(), err)
	assert.True(suite.T(), updated)
}

func (suite *VehicleServiceTestSuite) TestGetAndDeleteVehicle() {
	suite.vehicleRepo.On("GetVehicle", suite.ctx, uint(9)).Return(nil, repository.ErrNotFound)
	suite.vehicleRepo.On("DeleteVehicle", suite.ctx, uint(9)).Return(repository.ErrNotFound)

	_, err := suite.vehicleService.GetVehicle(suite.ctx, 9)
	assert.ErrorIs(suite.T(), err, models.ErrVehicleNotFound)

	assert.ErrorIs(suite.T(), suite.vehicleService.DeleteVehicle(suite.ctx, 9), models.ErrVehicleNotFound)
	assert.ErrorIs(suite.T(), suite.vehicleService.DeleteVehicle(suite.ctx, 2), models.ErrForbiddenDelete)
}

// TestVehicleServiceTestSuite runs the test suite
func TestVehicleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleServiceTestSuite))
}
