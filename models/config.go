package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env" validate:"oneof=development test staging production"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port" validate:"required,numeric"`

	// Base Path
	BasePath string `mapstructure:"base_path"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=json text"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Identity provider
	Auth0Domain   string        `mapstructure:"auth0_domain"`
	Auth0Audience string        `mapstructure:"auth0_audience"`
	Auth0ClientID string        `mapstructure:"auth0_client_id"`
	Algorithms    []string      `mapstructure:"algorithms" validate:"min=1"`
	JWKSURL       string        `mapstructure:"jwks_url" validate:"omitempty,url"`
	JWKSTimeout   time.Duration `mapstructure:"jwks_timeout"`
	JWKSCacheTTL  time.Duration `mapstructure:"jwks_cache_ttl" validate:"gte=0"`

	// Database
	DatabaseDriver string `mapstructure:"database_driver" validate:"oneof=postgres sqlite"`
	DatabaseURL    string `mapstructure:"database_url"`
	DBHost         string `mapstructure:"db_host"`
	DBUser         string `mapstructure:"db_user"`
	DBPwd          string `mapstructure:"db_pwd"`
	DBName         string `mapstructure:"db_name"`
	DatabaseDebug  bool   `mapstructure:"database_debug"`

	// Seeding
	SeedOnStart   bool `mapstructure:"seed_on_start"`
	SeedDummyData bool `mapstructure:"seed_dummy_data"`

	// Defaults applied when a volunteer is created without role or groups
	DefaultRoleID  uint `mapstructure:"default_role_id" validate:"gt=0"`
	DefaultGroupID uint `mapstructure:"default_group_id" validate:"gt=0"`

	// Metrics
	MetricsEnabled bool `mapstructure:"metrics_enabled"`
}

// Issuer returns the expected token issuer for the configured domain.
func (c *Config) Issuer() string {
	if c.Auth0Domain == "" {
		return ""
	}
	return "https://" + strings.TrimSuffix(c.Auth0Domain, "/") + "/"
}

// JWKSEndpoint returns the key set location, preferring an explicit override.
func (c *Config) JWKSEndpoint() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	if c.Auth0Domain == "" {
		return ""
	}
	return c.Issuer() + ".well-known/jwks.json"
}

// DSN returns the database connection string. For postgres an explicit
// database_url wins; otherwise one is assembled from the db_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DatabaseDriver == "sqlite" {
		return "file:civilprotection.db?_foreign_keys=on"
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPwd),
		Host:   c.DBHost,
		Path:   "/" + c.DBName,
	}
	return u.String()
}

// Address returns the listen address of the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}
