package controller

import (
	"civilprotection-backend/services"
	"civilprotection-backend/utils/logger"
	"civilprotection-backend/visibility"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RoleController struct {
	roleService services.RoleServiceInterface
	logger      logger.Logger
}

func NewRoleController(roleService services.RoleServiceInterface, logger logger.Logger) *RoleController {
	return &RoleController{
		roleService: roleService,
		logger:      logger,
	}
}

// GetRoles handles GET /roles
// @Summary Get all roles
// @Description Retrieve every role with the volunteers holding it
// @Tags Roles
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /roles [get]
func (h *RoleController) GetRoles(c *gin.Context) {
	roles, err := h.roleService.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"roles":   visibility.Role.ProjectAll(roles, visibility.Info),
	})
}

// GetRole handles GET /roles/:id
// @Summary Get role by ID
// @Tags Roles
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /roles/{id} [get]
func (h *RoleController) GetRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	role, err := h.roleService.GetRole(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"role":    visibility.Role.Project(role, visibility.Info),
	})
}
