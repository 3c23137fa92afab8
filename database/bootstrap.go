package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"smartcrop/entities"
	"smartcrop/pkg/logging"
)

// Open connects, migrates and seeds the counters row.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite has a single writer; one connection queues writers instead of
	// failing them with SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&entities.Prediction{},
		&entities.UserProfile{},
		&entities.UsageStats{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	if err := seedUsageStats(db); err != nil {
		return nil, fmt.Errorf("seed usage stats: %w", err)
	}
	return db, nil
}

// OpenSQLite is Open for main: any failure is fatal.
func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		logging.Fatal().Err(err).Msg("[db] bootstrap failed")
	}
	logging.Info().Str("path", path).Msg("[db] ready")
	return db
}

func seedUsageStats(db *gorm.DB) error {
	row := entities.UsageStats{ID: entities.UsageStatsID}
	return db.Where(entities.UsageStats{ID: entities.UsageStatsID}).FirstOrCreate(&row).Error
}
