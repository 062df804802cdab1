package middelware

import (
	"civilprotection-backend/models"
	"civilprotection-backend/utils/logger"
	"context"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key holding the caller's *models.Claims
const ClaimsKey = "claims"

// Verifier turns a bearer token into claims
type Verifier interface {
	Verify(ctx context.Context, token string) (*models.Claims, *models.AppError)
}

// Authenticator gates routes on the permissions carried by access tokens
type Authenticator struct {
	verifier Verifier
	logger   logger.Logger
}

// NewAuthenticator creates a new authenticator
func NewAuthenticator(verifier Verifier, log logger.Logger) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		logger:   log,
	}
}

// CheckPermission reports why claims do not grant permission, or nil when
// they do. An empty permission is always granted.
func CheckPermission(permission string, claims *models.Claims) *models.AppError {
	if permission == "" {
		return nil
	}
	if claims == nil || claims.Permissions == nil {
		return models.ErrPermissionsFailed
	}
	if !claims.HasPermission(permission) {
		return models.ErrNoPermission
	}
	return nil
}

// RequireAuth rejects requests without a valid token granting permission
func (a *Authenticator) RequireAuth(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, appErr := ExtractBearerToken(c.GetHeader("Authorization"))
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}

		claims, appErr := a.verifier.Verify(c.Request.Context(), token)
		if appErr != nil {
			a.logger.Warnf("Token rejected on %s %s: %s", c.Request.Method, c.Request.URL.Path, appErr.Key)
			abortWithError(c, appErr)
			return
		}

		if appErr := CheckPermission(permission, claims); appErr != nil {
			abortWithError(c, appErr)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuth lets anonymous callers through with nil claims. A present but
// malformed Authorization header is still rejected, while a well formed one
// whose token fails verification is treated as anonymous.
func (a *Authenticator) OptionalAuth(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var claims *models.Claims

		if header := c.GetHeader("Authorization"); header != "" {
			token, appErr := ExtractBearerToken(header)
			if appErr != nil {
				abortWithError(c, appErr)
				return
			}

			verified, appErr := a.verifier.Verify(c.Request.Context(), token)
			if appErr != nil {
				a.logger.Warnf("Serving %s anonymously, token rejected: %s", c.Request.URL.Path, appErr.Key)
			} else {
				claims = verified
			}
		}

		if appErr := CheckPermission(permission, claims); appErr != nil {
			abortWithError(c, appErr)
			return
		}

		if claims != nil {
			c.Set(ClaimsKey, claims)
		}
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by the auth middleware, or nil
// for anonymous callers.
func ClaimsFromContext(c *gin.Context) *models.Claims {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*models.Claims)
	return claims
}

func abortWithError(c *gin.Context, err *models.AppError) {
	c.AbortWithStatusJSON(err.Status, models.NewErrorResponse(err))
}
