package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey string // API key for authentication

	// AdminAddress is the deploying authority: seeded with the working
	// inventory and granted administrator, minter and uri_setter.
	AdminAddress string

	// EngineAddress is the progression engine's custodial account. It holds
	// pulled purchase funds and the native gas reserve, and carries the
	// minter capability.
	EngineAddress string

	// BaseMetadataURI is the initial equipment metadata URI.
	BaseMetadataURI string

	// AutoMigrate applies pending schema migrations on startup.
	AutoMigrate bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		Version:         getEnv("VERSION", "dev"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          getEnv("DB_NAME", "emberarmory"),
		APIKey:          getEnv("API_KEY", ""),
		AdminAddress:    getEnv("ADMIN_ADDRESS", ""),
		EngineAddress:   getEnv("ENGINE_ADDRESS", "engine"),
		BaseMetadataURI: getEnv("BASE_METADATA_URI", "https://assets.emberarmory.dev/items/"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	autoMigrate, err := strconv.ParseBool(getEnv("AUTO_MIGRATE", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTO_MIGRATE value: %w", err)
	}
	cfg.AutoMigrate = autoMigrate

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.AdminAddress == "" {
		return nil, fmt.Errorf("ADMIN_ADDRESS environment variable must be set")
	}

	if cfg.AdminAddress == cfg.EngineAddress {
		return nil, fmt.Errorf("ADMIN_ADDRESS and ENGINE_ADDRESS must differ")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
