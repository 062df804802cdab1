package middelware

import (
	"civilprotection-backend/utils/logger"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-jose/go-jose/v4"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// KeySetProvider supplies the key set tokens are verified against
type KeySetProvider interface {
	KeySet(ctx context.Context) (*jose.JSONWebKeySet, error)
}

// JWKSClient downloads the identity provider's JSON Web Key Set. Without a
// cache TTL the set is fetched on every call.
type JWKSClient struct {
	url    string
	client *http.Client
	cache  *lru.LRU[string, *jose.JSONWebKeySet]
	logger logger.Logger
}

// NewJWKSClient creates a client for url. A positive ttl keeps the last key
// set in memory for that long.
func NewJWKSClient(url string, timeout, ttl time.Duration, log logger.Logger) *JWKSClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c := &JWKSClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: log,
	}
	if ttl > 0 {
		c.cache = lru.NewLRU[string, *jose.JSONWebKeySet](1, nil, ttl)
	}
	return c
}

// KeySet returns the current key set
func (c *JWKSClient) KeySet(ctx context.Context) (*jose.JSONWebKeySet, error) {
	if c.url == "" {
		return nil, fmt.Errorf("jwks url is not configured")
	}
	if c.cache != nil {
		if set, ok := c.cache.Get(c.url); ok {
			return set, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Errorf("Failed to fetch key set from %s: %v", c.url, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwks endpoint returned status %d", resp.StatusCode)
	}

	var set jose.JSONWebKeySet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode key set: %w", err)
	}

	if c.cache != nil {
		c.cache.Add(c.url, &set)
	}
	c.logger.Debugf("Fetched %d keys from %s", len(set.Keys), c.url)
	return &set, nil
}
