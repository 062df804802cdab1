package controller

import (
	"civilprotection-backend/middelware"
	"civilprotection-backend/models"
	"civilprotection-backend/services"
	"civilprotection-backend/utils/logger"
	"civilprotection-backend/visibility"
	"net/http"

	"github.com/gin-gonic/gin"
)

type VehicleController struct {
	vehicleService services.VehicleServiceInterface
	logger         logger.Logger
}

func NewVehicleController(vehicleService services.VehicleServiceInterface, logger logger.Logger) *VehicleController {
	return &VehicleController{
		vehicleService: vehicleService,
		logger:         logger,
	}
}

func vehicleTier(c *gin.Context) visibility.Tier {
	return visibility.TierFor(middelware.ClaimsFromContext(c), models.PermGetVehiclesDetails, models.PermGetVehiclesFull)
}

// ListVehicles handles GET /vehicles
// @Summary List vehicles
// @Tags Vehicles
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Vehicles per page (max 100)"
// @Success 200 {object} map[string]interface{}
// @Router /vehicles [get]
func (h *VehicleController) ListVehicles(c *gin.Context) {
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"vehicles": visibility.Vehicle.ProjectAll(vehicles, vehicleTier(c)),
	})
}

// GetVehicle handles GET /vehicles/:id
// @Summary Get a vehicle
// @Tags Vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Router /vehicles/{id} [get]
func (h *VehicleController) GetVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"vehicle": visibility.Vehicle.Project(vehicle, vehicleTier(c)),
	})
}

// CreateVehicle handles POST /vehicles
// @Summary Create a vehicle
// @Tags Vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Router /vehicles [post]
func (h *VehicleController) CreateVehicle(c *gin.Context) {
	raw, ok := readBody(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), raw)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infof("Vehicle %d created", vehicle.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"created": true,
		"vehicle": visibility.Vehicle.Project(vehicle, visibility.Full),
	})
}

// UpdateVehicle handles PATCH /vehicles/:id
// @Summary Replace a vehicle
// @Tags Vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Router /vehicles/{id} [patch]
func (h *VehicleController) UpdateVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	raw, ok := readBody(c)
	if !ok {
		return
	}

	vehicle, updated, err := h.vehicleService.UpdateVehicle(c.Request.Context(), id, raw)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !updated {
		noChange(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"updated": true,
		"vehicle": visibility.Vehicle.Project(vehicle, visibility.Full),
	})
}

// DeleteVehicle handles DELETE /vehicles/:id
// @Summary Delete a vehicle
// @Tags Vehicles
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 204
// @Router /vehicles/{id} [delete]
func (h *VehicleController) DeleteVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infof("Vehicle %d deleted", id)
	c.Status(http.StatusNoContent)
}
