package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// checkIndexExists checks if an index exists using dialect-specific queries.
// Returns false if the check fails or the dialect is unknown.
func checkIndexExists(db *gorm.DB, dialectorName, tableName, indexName string) bool {
	var indexCount int64
	var err error

	switch dialectorName {
	case "mysql":
		err = db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.STATISTICS
			WHERE TABLE_SCHEMA = DATABASE()
			AND TABLE_NAME = ?
			AND INDEX_NAME = ?
		`, tableName, indexName).Scan(&indexCount).Error
	case "sqlite":
		err = db.Raw(`
			SELECT COUNT(*) FROM sqlite_master
			WHERE type = 'index' AND name = ?
		`, indexName).Scan(&indexCount).Error
	case "postgres":
		err = db.Raw(`
			SELECT COUNT(*) FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, tableName, indexName).Scan(&indexCount).Error
	default:
		return false
	}

	if err != nil {
		logrus.WithError(err).Warnf("Failed to check if index %s exists", indexName)
		return false
	}

	return indexCount > 0
}

// createIndexIfNotExists creates an index if it doesn't exist.
// It first tries CREATE INDEX IF NOT EXISTS, then falls back to dialect-specific checks.
func createIndexIfNotExists(db *gorm.DB, tableName, indexName, columns string) error {
	migrator := db.Migrator()
	dialectorName := db.Dialector.Name()

	if migrator.HasIndex(tableName, indexName) {
		logrus.Infof("Index %s already exists, skipping", indexName)
		return nil
	}

	// CREATE INDEX IF NOT EXISTS is supported by SQLite, PostgreSQL and MySQL 8.0+
	createSQL := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", indexName, tableName, columns)
	if err := db.Exec(createSQL).Error; err != nil {
		if checkIndexExists(db, dialectorName, tableName, indexName) {
			logrus.Infof("Index %s already exists (detected via fallback), skipping", indexName)
			return nil
		}

		createSQL = fmt.Sprintf("CREATE INDEX %s ON %s(%s)", indexName, tableName, columns)
		if createErr := db.Exec(createSQL).Error; createErr != nil {
			logrus.WithError(createErr).Errorf("Failed to create %s index", indexName)
			return createErr
		}
	}

	logrus.Infof("Successfully added %s index", indexName)
	return nil
}
