package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendSheet    = "sheet"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	CORS     CORSConfig
	PriceLog PriceLogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Backend    string // sqlite, postgres or sheet
	SQLitePath string
	SheetDir   string
	Postgres   PostgresConfig
}

// PostgresConfig holds the hosted database connection parameters.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// PriceLogConfig configures the scheduled price log job. An empty schedule
// disables the job.
type PriceLogConfig struct {
	Schedule string // cron expression
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Storage: StorageConfig{
			Backend:    getEnv("STORAGE_BACKEND", BackendSQLite),
			SQLitePath: getEnv("DB_PATH", "./data/investments.db"),
			SheetDir:   getEnv("SHEET_DIR", "./data/workbook"),
			Postgres: PostgresConfig{
				Host:     getEnv("POSTGRES_HOST", "localhost"),
				Port:     getEnv("POSTGRES_PORT", "5432"),
				User:     getEnv("POSTGRES_USER", "investments"),
				Password: getEnv("POSTGRES_PASSWORD", ""),
				Name:     getEnv("POSTGRES_DB", "investments"),
			},
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		PriceLog: PriceLogConfig{
			Schedule: getEnv("PRICE_LOG_SCHEDULE", ""),
		},
	}

	switch config.Storage.Backend {
	case BackendSQLite, BackendPostgres, BackendSheet:
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", config.Storage.Backend)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
