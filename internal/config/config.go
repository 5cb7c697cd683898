// Package config loads the backend configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	Port             string
	CORSAllowOrigins []string

	// Database
	DatabaseDSN string

	// Auth
	JWTSecret     string
	TokenLifetime time.Duration
}

// Load reads the configuration from the environment. An optional .env file
// is loaded first; a missing file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigins: strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		DatabaseDSN:      getEnv("DB_PATH", "data/magnetwallet.db"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		TokenLifetime:    getEnvDuration("TOKEN_LIFETIME", 7*24*time.Hour),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if c.DatabaseDSN == "" {
		return fmt.Errorf("the database path must not be empty")
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	if c.TokenLifetime <= 0 {
		return fmt.Errorf("the token lifetime must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
