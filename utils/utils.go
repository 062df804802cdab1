package utils

import (
	"civilprotection-backend/models"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// GetConfig read the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the application configuration using Viper
func Load() (*models.Config, error) {
	v := viper.New()

	// Set configuration file details
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../")

	setDefaults(v)

	// Environment variables use the upper-cased key, e.g. AUTH0_DOMAIN
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	flattenNestedConfig(v)

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("app_name", "Civil Protection Backend")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8080")
	v.SetDefault("base_path", "")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// CORS defaults
	v.SetDefault("cors_origins", []string{"*"})

	// Identity provider defaults
	v.SetDefault("auth0_domain", "")
	v.SetDefault("auth0_audience", "")
	v.SetDefault("auth0_client_id", "")
	v.SetDefault("algorithms", []string{"RS256"})
	v.SetDefault("jwks_url", "")
	v.SetDefault("jwks_timeout", 5*time.Second)
	v.SetDefault("jwks_cache_ttl", time.Duration(0))

	// Database defaults
	v.SetDefault("database_driver", "postgres")
	v.SetDefault("database_url", "")
	v.SetDefault("db_host", "127.0.0.1:5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_pwd", "postgres")
	v.SetDefault("db_name", "postgres")
	v.SetDefault("database_debug", false)

	// Seed defaults
	v.SetDefault("seed_on_start", true)
	v.SetDefault("seed_dummy_data", false)
	v.SetDefault("default_role_id", 1)
	v.SetDefault("default_group_id", 7)

	v.SetDefault("metrics_enabled", true)
}

// validate checks if all required configuration is provided
func validate(c *models.Config) error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.AppEnv == "production" && (c.Auth0Domain == "" || c.Auth0Audience == "") {
		return fmt.Errorf("AUTH0_DOMAIN and AUTH0_AUDIENCE must be set in production environment")
	}

	return nil
}

// flattenNestedConfig maps the sections of a nested config.json onto flat keys
func flattenNestedConfig(v *viper.Viper) {
	sections := map[string]string{
		"app.name":              "app_name",
		"app.version":           "app_version",
		"app.env":               "app_env",
		"app.host":              "app_host",
		"app.port":              "app_port",
		"app.base_path":         "base_path",
		"logging.level":         "log_level",
		"logging.format":        "log_format",
		"auth0.domain":          "auth0_domain",
		"auth0.audience":        "auth0_audience",
		"auth0.client_id":       "auth0_client_id",
		"auth0.algorithms":      "algorithms",
		"auth0.jwks_url":        "jwks_url",
		"auth0.jwks_timeout":    "jwks_timeout",
		"auth0.jwks_cache_ttl":  "jwks_cache_ttl",
		"database.driver":       "database_driver",
		"database.url":          "database_url",
		"database.host":         "db_host",
		"database.user":         "db_user",
		"database.password":     "db_pwd",
		"database.name":         "db_name",
		"database.debug":        "database_debug",
		"seed.on_start":         "seed_on_start",
		"seed.dummy_data":       "seed_dummy_data",
		"seed.default_role_id":  "default_role_id",
		"seed.default_group_id": "default_group_id",
		"metrics.enabled":       "metrics_enabled",
		"cors.origins":          "cors_origins",
	}

	for nested, flat := range sections {
		if v.InConfig(nested) {
			v.Set(flat, v.Get(nested))
		}
	}
}

// PrintPrettyJSON takes any struct or map and prints it as pretty JSON
func PrintPrettyJSON(data interface{}) string {
	prettyJSON, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return ""
	}
	return string(prettyJSON)
}

// GenerateUUID returns a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}
