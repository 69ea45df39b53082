// Package db (migrations) runs version-tracked data migrations after
// AutoMigrate has brought the schema up to date.
package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SchemaMigration records an applied migration version.
type SchemaMigration struct {
	Version   string    `gorm:"type:varchar(32);primaryKey"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

type migration struct {
	version string
	run     func(db *gorm.DB) error
}

// Migrations run in order; each version is applied at most once.
var migrations = []migration{
	{version: "v1.1.0", run: V1_1_0_AddLookupIndexes},
}

// MigrateDatabase applies all pending migrations.
func MigrateDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to prepare schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int64
		if err := db.Model(&SchemaMigration{}).Where("version = ?", m.version).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.version, err)
		}
		if count > 0 {
			continue
		}

		logrus.Infof("Applying migration %s", m.version)
		if err := m.run(db); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.version, err)
		}
		if err := db.Create(&SchemaMigration{Version: m.version}).Error; err != nil {
			return fmt.Errorf("failed to record migration %s: %w", m.version, err)
		}
	}

	return nil
}
