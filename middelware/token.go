package middelware

import (
	"civilprotection-backend/models"
	"civilprotection-backend/utils/logger"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>"
// header value.
func ExtractBearerToken(header string) (string, *models.AppError) {
	parts := strings.Fields(header)
	switch {
	case len(parts) == 0:
		return "", models.ErrAuthHeaderMissing
	case !strings.EqualFold(parts[0], "bearer"):
		return "", models.ErrNoBearer
	case len(parts) == 1:
		return "", models.ErrTokenNotFound
	case len(parts) > 2:
		return "", models.ErrNoBearerToken
	}
	return parts[1], nil
}

// TokenVerifier checks access tokens against the identity provider's keys
type TokenVerifier struct {
	keys       KeySetProvider
	algorithms []string
	audience   string
	issuer     string
	logger     logger.Logger
}

// NewTokenVerifier creates a verifier for the configured provider
func NewTokenVerifier(cfg *models.Config, keys KeySetProvider, log logger.Logger) *TokenVerifier {
	algorithms := cfg.Algorithms
	if len(algorithms) == 0 {
		algorithms = []string{"RS256"}
	}
	return &TokenVerifier{
		keys:       keys,
		algorithms: algorithms,
		audience:   cfg.Auth0Audience,
		issuer:     cfg.Issuer(),
		logger:     log,
	}
}

func (v *TokenVerifier) parser() *jwt.Parser {
	opts := []jwt.ParserOption{jwt.WithValidMethods(v.algorithms), jwt.WithIssuedAt()}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	return jwt.NewParser(opts...)
}

// Verify validates the token and returns its claims
func (v *TokenVerifier) Verify(ctx context.Context, tokenString string) (*models.Claims, *models.AppError) {
	parser := v.parser()

	unverified, _, err := parser.ParseUnverified(tokenString, &models.Claims{})
	if err != nil {
		return nil, models.ErrParsingFailed
	}
	kid, _ := unverified.Header["kid"].(string)
	if kid == "" {
		return nil, models.ErrAuthMalformed
	}

	set, err := v.keys.KeySet(ctx)
	if err != nil {
		v.logger.Errorf("Unable to load signing keys: %v", err)
		return nil, models.ErrUnprocessable
	}
	keys := set.Key(kid)
	if len(keys) == 0 {
		return nil, models.ErrKeyNotFound
	}

	claims := &models.Claims{}
	_, err = parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if !keys[0].Valid() {
			return nil, fmt.Errorf("signing key %s is not valid", kid)
		}
		return keys[0].Public().Key, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}
	return claims, nil
}

func classifyTokenError(err error) *models.AppError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return models.ErrInvalidClaims
	default:
		return models.ErrParsingFailed
	}
}
