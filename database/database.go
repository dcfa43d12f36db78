package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lshigami/Skylark/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the embedded SQLite database file, creating its parent
// directory if needed. Durability and statement serialization are delegated
// to SQLite itself.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dir := filepath.Dir(cfg.Database.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.Database.Path, err)
	}
	return db, nil
}
