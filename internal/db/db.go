package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Charlescifix/ethan-tracker/internal/models"
)

var DB *gorm.DB

// Initialize sets up the database connection and runs migrations.
// When DATABASE_URL is set (directly or via a .env file) it connects to
// Postgres, otherwise it falls back to a local SQLite file.
func Initialize() error {
	// Best-effort: a missing .env file is fine
	_ = godotenv.Load()

	dialector, err := resolveDialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db

	// Run auto-migrations
	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// resolveDialector picks the storage backend from the environment
func resolveDialector() (gorm.Dialector, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return postgres.Open(dsn), nil
	}

	dbPath, err := getDatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create tracker directory: %w", err)
	}

	return sqlite.Open(dbPath), nil
}

// getDatabasePath returns the path to the SQLite database file
func getDatabasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".ethan-tracker", "tracker.db"), nil
}

// runMigrations creates/updates the database schema
func runMigrations() error {
	return DB.AutoMigrate(
		&models.TrainingSession{},
	)
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
