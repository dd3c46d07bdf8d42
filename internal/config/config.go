package config

import (
	"os"
	"strconv"

	"waypoint/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds data loading settings
type DataConfig struct {
	CSVFile             string
	ExcelFile           string
	MovingAverageWindow int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			CSVFile:             os.Getenv("DATA_CSV_FILE"),
			ExcelFile:           os.Getenv("DATA_EXCEL_FILE"),
			MovingAverageWindow: getEnvIntOrDefault("MOVING_AVERAGE_WINDOW", 7),
		},
	}

	if cfg.Data.MovingAverageWindow < 1 {
		return nil, errors.ConfigInvalid("MOVING_AVERAGE_WINDOW must be at least 1")
	}
	return cfg, nil
}

// LoadWithDatabase loads configuration and requires a database URL
func LoadWithDatabase() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}
	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}
