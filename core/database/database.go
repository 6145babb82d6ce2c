package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the local SQLite history database. The connection is
// optional: callers should degrade gracefully when it fails, since the
// analyzer is fully functional without load history.
func Connect(cfg Config) (*gorm.DB, error) {
	// Suppress GORM logging; warnings go through the main zap logger.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	return db, nil
}
