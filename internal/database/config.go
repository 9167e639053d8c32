package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds database configuration
type Config struct {
	Path string
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	return &Config{
		Path: getEnv("DB_PATH", "data/financas.db"),
	}, nil
}

// DSN returns the SQLite connection string for GORM. Foreign keys are
// enabled so the transactions table's ON DELETE CASCADE is enforced.
func (c *Config) DSN() string {
	return c.Path + "?_foreign_keys=on"
}

// MigrateURL returns the connection URL used by golang-migrate.
func (c *Config) MigrateURL() string {
	return "sqlite3://" + c.Path
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
