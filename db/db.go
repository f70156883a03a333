package db

import (
	"fmt"
	"os"
	"path/filepath"

	"permitportal/config"
	"permitportal/logger"
	"permitportal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

const (
	maxOpenConns = 25
	maxIdleConns = 5
)

// Connect opens the configured database and, in development, auto-migrates the schema
// and turns on SQL logging.
func Connect(conf config.Configuration, log logger.Logger) (*gorm.DB, error) {
	if conf.Database == "sqlite3" {
		if dir := filepath.Dir(conf.DbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
	}

	log.Info("connecting to database", map[string]interface{}{
		"driver": conf.Database,
		"host":   conf.DbHost,
		"name":   conf.DbName,
	})

	db, err := gorm.Open(conf.Database, conf.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", conf.Database, err)
	}

	db.DB().SetMaxOpenConns(maxOpenConns)
	db.DB().SetMaxIdleConns(maxIdleConns)

	if conf.IsDevelopment() {
		db.LogMode(true)
		if err := Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("schema auto-migrated", nil)
	}

	return db, nil
}

// Migrate creates or updates the permit_applications table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.PermitApplication{}).Error; err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
