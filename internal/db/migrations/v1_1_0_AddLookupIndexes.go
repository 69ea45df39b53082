package db

import (
	"gorm.io/gorm"
)

// V1_1_0_AddLookupIndexes adds indexes for the hot read paths: analytics
// aggregation groups translations by language, and the key listing pages
// through a project's keys in creation order.
func V1_1_0_AddLookupIndexes(db *gorm.DB) error {
	if err := createIndexIfNotExists(db, "translations", "idx_translations_language_code", "language_code"); err != nil {
		return err
	}

	return createIndexIfNotExists(db, "translation_keys", "idx_translation_keys_project_created", "project_id, created_at")
}
