package config

import (
	"os"
	"strconv"

	"datadetective/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Report   ReportConfig
	Server   ServerConfig
	Database DatabaseConfig
}

// DataConfig holds data source settings
type DataConfig struct {
	// File is a CSV or XLSX file to load records from.
	File string
}

// ReportConfig holds report export settings
type ReportConfig struct {
	Path string
	// Threshold is the anomaly deviation multiplier used by sweeps and the
	// HTTP surface when the caller does not supply one.
	Threshold float64
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds optional PostgreSQL record-source settings
type DatabaseConfig struct {
	URL   string
	Table string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			File: getEnv("DATA_FILE", ""),
		},
		Report: ReportConfig{
			Path: getEnv("REPORT_PATH", "analytics_report.json"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL:   getEnv("DATABASE_URL", ""),
			Table: getEnv("DATABASE_TABLE", ""),
		},
	}

	threshold, err := getEnvFloat("ANOMALY_THRESHOLD", 2.0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load anomaly threshold")
	}
	config.Report.Threshold = threshold

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Report.Threshold <= 0 {
		return errors.ConfigInvalid("ANOMALY_THRESHOLD must be positive")
	}
	if c.Report.Path == "" {
		return errors.ConfigInvalid("REPORT_PATH must not be empty")
	}
	if c.Database.URL != "" && c.Database.Table == "" {
		return errors.ConfigInvalid("DATABASE_TABLE is required when DATABASE_URL is set")
	}
	return nil
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat returns an environment variable as float64 or a default
func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid float value for %s: %q", key, value)
	}
	return parsed, nil
}
