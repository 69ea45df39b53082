package handler

import (
	"testing"

	"locman/internal/config"
	"locman/internal/models"
	"locman/internal/services"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing (pure Go, no
// CGO). Foreign keys are switched on so cascade and referential failures
// behave like the production dialects.
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

// setupTestServer creates a test server with minimal dependencies
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	db := setupTestDB(t)
	mockConfig := &config.MockConfig{}

	return NewServer(
		db,
		mockConfig,
		services.NewProjectService(db),
		services.NewLanguageService(db),
		services.NewKeyService(db),
		services.NewTranslationService(db),
		services.NewAnalyticsService(db),
		services.NewExportService(db),
	)
}
