package controller

import (
	"civilprotection-backend/services"
	"civilprotection-backend/utils/logger"
	"civilprotection-backend/visibility"
	"net/http"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	groupService services.GroupServiceInterface
	logger       logger.Logger
}

func NewGroupController(groupService services.GroupServiceInterface, logger logger.Logger) *GroupController {
	return &GroupController{
		groupService: groupService,
		logger:       logger,
	}
}

// GetGroups handles GET /groups
// @Summary Get all groups
// @Tags Groups
// @Produce json
// @Router /groups [get]
func (h *GroupController) GetGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"groups":  visibility.Group.ProjectAll(groups, visibility.Info),
	})
}

// GetGroup handles GET /groups/:id
// @Summary Get group by ID
// @Tags Groups
// @Produce json
// @Param id path int true "Group ID"
// @Router /groups/{id} [get]
func (h *GroupController) GetGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	group, err := h.groupService.GetGroup(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"group":   visibility.Group.Project(group, visibility.Info),
	})
}
