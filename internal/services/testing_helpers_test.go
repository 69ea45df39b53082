package services

import (
	"context"
	"testing"

	"locman/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
// Foreign keys are enabled so constraint mapping behaves like production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Project{},
		&models.Language{},
		&models.ProjectLanguage{},
		&models.TranslationKey{},
		&models.Translation{},
	)
	require.NoError(t, err)

	return db
}

// seedProject creates a project with the given languages assigned.
func seedProject(t *testing.T, db *gorm.DB, name string, languageCodes ...string) *models.Project {
	t.Helper()

	project := &models.Project{Name: name}
	require.NoError(t, db.Create(project).Error)

	for _, code := range languageCodes {
		language := &models.Language{Code: code, Name: code}
		require.NoError(t, db.FirstOrCreate(language, models.Language{Code: code}).Error)
		require.NoError(t, db.Create(&models.ProjectLanguage{
			ProjectID:    project.ID,
			LanguageCode: code,
		}).Error)
	}
	return project
}

// seedKey creates a translation key with translations per language code.
func seedKey(t *testing.T, db *gorm.DB, projectID, key string, translations map[string]string) *models.TranslationKey {
	t.Helper()

	k := &models.TranslationKey{ProjectID: projectID, Key: key, Category: "general"}
	require.NoError(t, db.Create(k).Error)

	for code, value := range translations {
		language := &models.Language{Code: code, Name: code}
		require.NoError(t, db.FirstOrCreate(language, models.Language{Code: code}).Error)
		require.NoError(t, db.Create(&models.Translation{
			TranslationKeyID: k.ID,
			LanguageCode:     code,
			Value:            value,
			UpdatedBy:        DefaultUpdatedBy,
		}).Error)
	}
	return k
}

func testContext() context.Context {
	return context.Background()
}
