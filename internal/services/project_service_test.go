package services

import (
	"testing"

	app_errors "locman/internal/errors"
	"locman/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateProject tests creation and validation
func TestCreateProject(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewProjectService(db)

	project, err := svc.CreateProject(testContext(), ProjectCreateParams{
		Name:        "web",
		Description: "Web frontend strings",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)

	_, err = svc.CreateProject(testContext(), ProjectCreateParams{})
	require.Error(t, err)
	var i18nErr *I18nError
	require.ErrorAs(t, err, &i18nErr)
	assert.Equal(t, app_errors.ErrValidation.Code, i18nErr.APIError.Code)
}

// TestListProjects tests listing with language preloads
func TestListProjects(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	seedProject(t, db, "web", "en", "fr")
	seedProject(t, db, "mobile")
	svc := NewProjectService(db)

	projects, err := svc.ListProjects(testContext())
	require.NoError(t, err)
	require.Len(t, projects, 2)

	byName := map[string]models.Project{}
	for _, p := range projects {
		byName[p.Name] = p
	}
	assert.Len(t, byName["web"].ProjectLanguages, 2)
	assert.Empty(t, byName["mobile"].ProjectLanguages)
}

// TestAssignLanguage_DuplicateConflict tests the unique assignment constraint
func TestAssignLanguage_DuplicateConflict(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedProject(t, db, "web")
	require.NoError(t, db.Create(&models.Language{Code: "de", Name: "German"}).Error)
	svc := NewProjectService(db)

	assignment, err := svc.AssignLanguage(testContext(), project.ID, "de")
	require.NoError(t, err)
	assert.Equal(t, "German", assignment.Language.Name)

	_, err = svc.AssignLanguage(testContext(), project.ID, "de")
	require.Error(t, err)
	var i18nErr *I18nError
	require.ErrorAs(t, err, &i18nErr)
	assert.Equal(t, app_errors.ErrDuplicateResource.Code, i18nErr.APIError.Code)
}

// TestAssignLanguage_NotFound tests unknown project and unknown language
func TestAssignLanguage_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedProject(t, db, "web")
	svc := NewProjectService(db)

	_, err := svc.AssignLanguage(testContext(), project.ID, "zz")
	require.Error(t, err)
	var i18nErr *I18nError
	require.ErrorAs(t, err, &i18nErr)
	assert.Equal(t, app_errors.ErrResourceNotFound.Code, i18nErr.APIError.Code)

	_, err = svc.AssignLanguage(testContext(), "9e7a4d2c-0000-0000-0000-000000000000", "en")
	require.Error(t, err)
	require.ErrorAs(t, err, &i18nErr)
	assert.Equal(t, app_errors.ErrResourceNotFound.Code, i18nErr.APIError.Code)
}

// TestUnassignLanguage tests removal and the keep-translations rule
func TestUnassignLanguage(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedProject(t, db, "web", "en")
	key := seedKey(t, db, project.ID, "nav.home", map[string]string{"en": "Home"})
	svc := NewProjectService(db)

	require.NoError(t, svc.UnassignLanguage(testContext(), project.ID, "en"))

	// Translations in the unassigned language stay in place
	var count int64
	require.NoError(t, db.Model(&models.Translation{}).Where("translation_key_id = ?", key.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	err := svc.UnassignLanguage(testContext(), project.ID, "en")
	require.Error(t, err)
	var i18nErr *I18nError
	require.ErrorAs(t, err, &i18nErr)
	assert.Equal(t, app_errors.ErrResourceNotFound.Code, i18nErr.APIError.Code)
}

// TestDeleteProject_Cascades tests that keys and translations go with the
// project
func TestDeleteProject_Cascades(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedProject(t, db, "web", "en")
	seedKey(t, db, project.ID, "nav.home", map[string]string{"en": "Home"})
	svc := NewProjectService(db)

	require.NoError(t, svc.DeleteProject(testContext(), project.ID))

	var keys, translations, assignments int64
	require.NoError(t, db.Model(&models.TranslationKey{}).Count(&keys).Error)
	require.NoError(t, db.Model(&models.Translation{}).Count(&translations).Error)
	require.NoError(t, db.Model(&models.ProjectLanguage{}).Count(&assignments).Error)
	assert.Zero(t, keys)
	assert.Zero(t, translations)
	assert.Zero(t, assignments)

	err := svc.DeleteProject(testContext(), project.ID)
	require.Error(t, err)
	var i18nErr *I18nError
	require.ErrorAs(t, err, &i18nErr)
	assert.Equal(t, app_errors.ErrResourceNotFound.Code, i18nErr.APIError.Code)
}
