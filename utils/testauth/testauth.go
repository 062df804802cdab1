// Package testauth runs a fake identity provider for tests: an RSA signing
// key, a JWKS endpoint serving its public half and a token minter.
package testauth

import (
	"civilprotection-backend/models"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	KeyID    = "test-key"
	Domain   = "civilprotection.test.auth0.com"
	Audience = "civilprotection-api"
)

// Provider is a fake identity provider
type Provider struct {
	Server *httptest.Server
	key    *rsa.PrivateKey
	hits   atomic.Int64
}

// NewProvider starts the JWKS server. It is closed when the test ends.
func NewProvider(t testing.TB) *Provider {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	p := &Provider{key: key}
	set := jose.JSONWebKeySet{Keys: []jose.JSONWebKey{{
		Key:       &key.PublicKey,
		KeyID:     KeyID,
		Algorithm: "RS256",
		Use:       "sig",
	}}}
	body, err := json.Marshal(set)
	require.NoError(t, err)

	p.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	t.Cleanup(p.Server.Close)
	return p
}

// Hits returns how many times the key set was downloaded
func (p *Provider) Hits() int64 {
	return p.hits.Load()
}

// Configure points cfg at the provider
func (p *Provider) Configure(cfg *models.Config) {
	cfg.Auth0Domain = Domain
	cfg.Auth0Audience = Audience
	cfg.Algorithms = []string{"RS256"}
	cfg.JWKSURL = p.Server.URL
	cfg.JWKSTimeout = 2 * time.Second
}

// Claims returns valid claims granting permissions
func Claims(permissions ...string) *models.Claims {
	now := time.Now()
	return &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "auth0|tester",
			Issuer:    "https://" + Domain + "/",
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Permissions: permissions,
	}
}

// Sign returns a token for claims signed with the provider key
func (p *Provider) Sign(t testing.TB, claims *models.Claims) string {
	t.Helper()
	return p.SignWithKID(t, claims, KeyID)
}

// SignWithKID signs claims announcing kid in the header. An empty kid is
// left out of the header.
func (p *Provider) SignWithKID(t testing.TB, claims *models.Claims, kid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(p.key)
	require.NoError(t, err)
	return signed
}

// Token returns a valid token granting permissions
func (p *Provider) Token(t testing.TB, permissions ...string) string {
	t.Helper()
	return p.Sign(t, Claims(permissions...))
}
