package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"financas/internal/logger"
	"financas/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db  *gorm.DB
	url string
}

// NewManager opens the SQLite database file, creating its directory on
// first run, and verifies connectivity.
func NewManager(config *Config) (*Manager, error) {
	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	// SQLite allows a single writer; a single connection avoids SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Manager{db: db, url: config.MigrateURL()}, nil
}

// Migrate applies pending SQL migrations from the migrations/ directory.
// Re-running against an up-to-date schema is a no-op.
func (m *Manager) Migrate() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.url)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// Seed inserts the first-run rows: the singleton config record and two
// preset accounts. Safe to call on every start.
func (m *Manager) Seed() error {
	return Seed(m.db)
}

// Seed is the idempotent first-run seeding used by Manager.Seed and tests.
// Existence checks guarantee repeated calls never duplicate rows.
func Seed(db *gorm.DB) error {
	var cfg models.Config
	err := db.First(&cfg, "id = ?", models.ConfigID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		defaults := models.DefaultConfig()
		if err := db.Create(&defaults).Error; err != nil {
			return fmt.Errorf("failed to seed config: %w", err)
		}
		logger.Get().Info("Seeded default config")
	case err != nil:
		return fmt.Errorf("failed to check config: %w", err)
	}

	var count int64
	if err := db.Model(&models.Account{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count == 0 {
		presets := []models.Account{
			{Name: "Nubank", Balance: 150000, Color: "#8B5CF6"},
			{Name: "Carteira", Balance: 15000, Color: "#10B981"},
		}
		if err := db.Create(&presets).Error; err != nil {
			return fmt.Errorf("failed to seed accounts: %w", err)
		}
		logger.Get().Infof("Seeded %d default accounts", len(presets))
	}

	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the underlying database connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
