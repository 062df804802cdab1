package middelware

import (
	"civilprotection-backend/models"
	"civilprotection-backend/utils"
	"civilprotection-backend/utils/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

// LoggingMiddleware provides request logging
type LoggingMiddleware struct {
	logger    logger.Logger
	skipPaths map[string]bool
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(log logger.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger:    log,
		skipPaths: map[string]bool{"/health": true, "/metrics": true},
	}
}

// RequestID keeps an incoming X-Request-ID or assigns a new one
func (m *LoggingMiddleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = utils.GenerateUUID()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// StructuredLogger provides structured logging for requests
func (m *LoggingMiddleware) StructuredLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if m.skipPaths[path] {
			return
		}

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"query":      c.Request.URL.RawQuery,
			"status":     status,
			"latency":    time.Since(start).String(),
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
			"request_id": c.GetString("request_id"),
		}
		if claims := ClaimsFromContext(c); claims != nil && claims.Subject != "" {
			fields["subject"] = claims.Subject
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		log := m.logger.WithFields(fields)
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("HTTP request completed with error")
		case status >= http.StatusBadRequest:
			log.Warn("HTTP request completed with client error")
		default:
			log.Info("HTTP request completed successfully")
		}
	}
}

// Recovery middleware with logging
func (m *LoggingMiddleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(gin.DefaultErrorWriter, func(c *gin.Context, recovered interface{}) {
		m.logger.Errorf("Panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewErrorResponse(models.ErrServerError))
	})
}
