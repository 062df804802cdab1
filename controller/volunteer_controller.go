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

type VolunteerController struct {
	volunteerService services.VolunteerServiceInterface
	logger           logger.Logger
}

func NewVolunteerController(volunteerService services.VolunteerServiceInterface, logger logger.Logger) *VolunteerController {
	return &VolunteerController{
		volunteerService: volunteerService,
		logger:           logger,
	}
}

func volunteerTier(c *gin.Context) visibility.Tier {
	return visibility.TierFor(middelware.ClaimsFromContext(c), models.PermGetVolunteersDetails, models.PermGetVolunteersFull)
}

// ListVolunteers handles GET /volunteers
// @Summary List volunteers
// @Description Fields returned depend on the get:volunteers-details and get:volunteers-full permissions
// @Tags Volunteers
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Volunteers per page (max 100)"
// @Success 200 {object} map[string]interface{}
// @Router /volunteers [get]
func (h *VolunteerController) ListVolunteers(c *gin.Context) {
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	volunteers, err := h.volunteerService.ListVolunteers(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"volunteers": visibility.Volunteer.ProjectAll(volunteers, volunteerTier(c)),
	})
}

// GetVolunteer handles GET /volunteers/:id
// @Summary Get a volunteer
// @Tags Volunteers
// @Produce json
// @Param id path int true "Volunteer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /volunteers/{id} [get]
func (h *VolunteerController) GetVolunteer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	volunteer, err := h.volunteerService.GetVolunteer(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"volunteer": visibility.Volunteer.Project(volunteer, volunteerTier(c)),
	})
}

// CreateVolunteer handles POST /volunteers
// @Summary Create a volunteer
// @Description With dummy_data set the volunteer is validated but not stored
// @Tags Volunteers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Success 200 {object} map[string]interface{} "Dry run"
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /volunteers [post]
func (h *VolunteerController) CreateVolunteer(c *gin.Context) {
	raw, ok := readBody(c)
	if !ok {
		return
	}

	volunteer, created, err := h.volunteerService.CreateVolunteer(c.Request.Context(), raw)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	} else {
		h.logger.Infof("Volunteer %d created", volunteer.ID)
	}

	c.JSON(status, gin.H{
		"success":   true,
		"created":   created,
		"volunteer": visibility.Volunteer.Project(volunteer, visibility.Full),
	})
}

// UpdateVolunteer handles PATCH /volunteers/:id
// @Summary Replace a volunteer
// @Tags Volunteers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Volunteer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /volunteers/{id} [patch]
func (h *VolunteerController) UpdateVolunteer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	raw, ok := readBody(c)
	if !ok {
		return
	}

	volunteer, updated, err := h.volunteerService.UpdateVolunteer(c.Request.Context(), id, raw)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !updated {
		noChange(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"updated":   true,
		"volunteer": visibility.Volunteer.Project(volunteer, visibility.Full),
	})
}

// DeleteVolunteer handles DELETE /volunteers/:id
// @Summary Delete a volunteer
// @Tags Volunteers
// @Security BearerAuth
// @Param id path int true "Volunteer ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /volunteers/{id} [delete]
func (h *VolunteerController) DeleteVolunteer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.volunteerService.DeleteVolunteer(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infof("Volunteer %d deleted", id)
	c.Status(http.StatusNoContent)
}
