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

type ServiceController struct {
	serviceService services.ServiceServiceInterface
	logger         logger.Logger
}

func NewServiceController(serviceService services.ServiceServiceInterface, logger logger.Logger) *ServiceController {
	return &ServiceController{
		serviceService: serviceService,
		logger:         logger,
	}
}

func serviceTier(c *gin.Context) visibility.Tier {
	return visibility.TierFor(middelware.ClaimsFromContext(c), models.PermGetServicesDetails, models.PermGetServicesFull)
}

// ListServices handles GET /services
// @Summary List services
// @Tags Services
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Services per page (max 100)"
// @Success 200 {object} map[string]interface{}
// @Router /services [get]
func (h *ServiceController) ListServices(c *gin.Context) {
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	list, err := h.serviceService.ListServices(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"services": visibility.Service.ProjectAll(list, serviceTier(c)),
	})
}

// GetService handles GET /services/:id
// @Summary Get a service
// @Tags Services
// @Produce json
// @Param id path int true "Service ID"
// @Router /services/{id} [get]
func (h *ServiceController) GetService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	service, err := h.serviceService.GetService(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": visibility.Service.Project(service, serviceTier(c)),
	})
}

// CreateService handles POST /services
// @Summary Create a service
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Router /services [post]
func (h *ServiceController) CreateService(c *gin.Context) {
	raw, ok := readBody(c)
	if !ok {
		return
	}

	service, err := h.serviceService.CreateService(c.Request.Context(), raw)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infof("Service %d created", service.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"created": true,
		"service": visibility.Service.Project(service, visibility.Full),
	})
}

// UpdateService handles PATCH /services/:id
// @Summary Replace a service
// @Description Services whose date has passed can no longer be changed
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Router /services/{id} [patch]
func (h *ServiceController) UpdateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	raw, ok := readBody(c)
	if !ok {
		return
	}

	service, updated, err := h.serviceService.UpdateService(c.Request.Context(), id, raw)
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
		"service": visibility.Service.Project(service, visibility.Full),
	})
}

// DeleteService handles DELETE /services/:id
// @Summary Delete a service
// @Tags Services
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 204
// @Router /services/{id} [delete]
func (h *ServiceController) DeleteService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.serviceService.DeleteService(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infof("Service %d deleted", id)
	c.Status(http.StatusNoContent)
}
