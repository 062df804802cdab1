package controller

import (
	"civilprotection-backend/models"
	"civilprotection-backend/utils/logger"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxPageLimit caps the limit query parameter
const MaxPageLimit = 100

// respondError writes err as an error body. Errors outside the catalog are
// logged and reported as unprocessable.
func respondError(c *gin.Context, log logger.Logger, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		log.Errorf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		appErr = models.AsAppError(err)
	}
	c.AbortWithStatusJSON(appErr.Status, models.NewErrorResponse(appErr))
}

// parseID reads the :id path parameter. Ids that are not positive integers
// cannot match any record and are answered with 404.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, models.NewErrorResponse(models.ErrNotFound))
		return 0, false
	}
	return uint(id), true
}

// protectID answers err for seed record ids before any other handler runs,
// so they are rejected whatever the caller's credentials
func protectID(isProtected func(uint) bool, err *models.AppError) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, parseErr := strconv.ParseUint(c.Param("id"), 10, 32)
		if parseErr == nil && id > 0 && isProtected(uint(id)) {
			c.AbortWithStatusJSON(err.Status, models.NewErrorResponse(err))
			return
		}
		c.Next()
	}
}

// parsePagination reads the optional page and limit query parameters
func parsePagination(c *gin.Context) (models.Pagination, bool) {
	var page models.Pagination

	if limitParam := c.Query("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.NewErrorResponse(models.ErrBadRequest))
			return page, false
		}
		page.Limit = min(limit, MaxPageLimit)
	}

	if pageParam := c.Query("page"); pageParam != "" {
		p, err := strconv.Atoi(pageParam)
		if err != nil || p < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.NewErrorResponse(models.ErrBadRequest))
			return page, false
		}
		page.Page = p
	}

	return page, true
}

// readBody returns the raw request body
func readBody(c *gin.Context) ([]byte, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.NewErrorResponse(models.ErrBodyNeeded))
		return nil, false
	}
	return raw, true
}

// noChange answers an update that would not modify the record
func noChange(c *gin.Context) {
	c.JSON(http.StatusOK, models.NoChangeResponse{
		Success: true,
		Updated: false,
		Message: models.NoChangeMessage,
	})
}
