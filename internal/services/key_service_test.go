package services

import (
	"testing"

	app_errors "locman/internal/errors"
	"locman/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedSampleProject builds the reference dataset: five keys in en and fr,
// with the fr translation of nav.dashboard left out.
func seedSampleProject(t *testing.T, db *gorm.DB) *models.Project {
	t.Helper()

	project := seedProject(t, db, "sample", "en", "fr")
	seedKey(t, db, project.ID, "nav.dashboard", map[string]string{"en": "Dashboard"})
	seedKey(t, db, project.ID, "nav.settings", map[string]string{"en": "Settings", "fr": "Paramètres"})
	seedKey(t, db, project.ID, "auth.login.title", map[string]string{"en": "Sign in", "fr": "Connexion"})
	seedKey(t, db, project.ID, "auth.login.button", map[string]string{"en": "Log in", "fr": "Se connecter"})
	seedKey(t, db, project.ID, "common.save", map[string]string{"en": "Save", "fr": "Enregistrer"})
	return project
}

// TestCreateKey_Success tests creating a key with initial translations
func TestCreateKey_Success(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedProject(t, db, "web", "en", "fr")
	svc := NewKeyService(db)

	key, err := svc.CreateKey(testContext(), KeyCreateParams{
		ProjectID:   project.ID,
		Key:         "nav.home",
		Category:    "navigation",
		Description: "Home link label",
		InitialTranslations: map[string]string{
			"en": "Home",
			"fr": "Accueil",
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, key.ID)
	assert.Len(t, key.Translations, 2)

	var count int64
	require.NoError(t, db.Model(&models.Translation{}).Where("translation_key_id = ?", key.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

// TestCreateKey_DuplicateConflict tests uniqueness of (project, key)
func TestCreateKey_DuplicateConflict(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedProject(t, db, "web", "en")
	svc := NewKeyService(db)

	params := KeyCreateParams{ProjectID: project.ID, Key: "nav.home", Category: "navigation"}
	_, err := svc.CreateKey(testContext(), params)
	require.NoError(t, err)

	_, err = svc.CreateKey(testContext(), params)
	require.Error(t, err)
	var i18nErr *I18nError
	require.ErrorAs(t, err, &i18nErr)
	assert.Equal(t, app_errors.ErrDuplicateResource.Code, i18nErr.APIError.Code)
}

// TestCreateKey_SameKeyDifferentProjects tests that the uniqueness is scoped
// per project
func TestCreateKey_SameKeyDifferentProjects(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	first := seedProject(t, db, "web", "en")
	second := seedProject(t, db, "mobile", "en")
	svc := NewKeyService(db)

	_, err := svc.CreateKey(testContext(), KeyCreateParams{ProjectID: first.ID, Key: "nav.home"})
	require.NoError(t, err)
	_, err = svc.CreateKey(testContext(), KeyCreateParams{ProjectID: second.ID, Key: "nav.home"})
	require.NoError(t, err)
}

// TestCreateKey_UnknownProject tests the referential not-found path
func TestCreateKey_UnknownProject(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewKeyService(db)

	_, err := svc.CreateKey(testContext(), KeyCreateParams{
		ProjectID: "9e7a4d2c-0000-0000-0000-000000000000",
		Key:       "nav.home",
	})
	require.Error(t, err)
	var i18nErr *I18nError
	require.ErrorAs(t, err, &i18nErr)
	assert.Equal(t, app_errors.ErrResourceNotFound.Code, i18nErr.APIError.Code)
}

// TestCreateKey_SkipsBadInitialTranslation tests that a failing initial
// translation does not take the key down with it
func TestCreateKey_SkipsBadInitialTranslation(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedProject(t, db, "web", "en")
	svc := NewKeyService(db)

	// "xx" is not a registered language, so its insert fails on the
	// language foreign key while "en" goes through.
	key, err := svc.CreateKey(testContext(), KeyCreateParams{
		ProjectID: project.ID,
		Key:       "nav.home",
		InitialTranslations: map[string]string{
			"en": "Home",
			"xx": "???",
		},
	})
	require.NoError(t, err)
	assert.Len(t, key.Translations, 1)
	assert.Equal(t, "en", key.Translations[0].LanguageCode)
}

// TestGetKeyByID tests single key lookup
func TestGetKeyByID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedProject(t, db, "web", "en")
	key := seedKey(t, db, project.ID, "nav.home", map[string]string{"en": "Home"})
	svc := NewKeyService(db)

	loaded, err := svc.GetKeyByID(testContext(), key.ID)
	require.NoError(t, err)
	assert.Equal(t, key.Key, loaded.Key)
	assert.Len(t, loaded.Translations, 1)

	_, err = svc.GetKeyByID(testContext(), "9e7a4d2c-0000-0000-0000-000000000000")
	require.Error(t, err)
	var i18nErr *I18nError
	require.ErrorAs(t, err, &i18nErr)
	assert.Equal(t, app_errors.ErrResourceNotFound.Code, i18nErr.APIError.Code)
}

// TestListKeys_MissingTranslationsForLanguage tests the language-scoped
// missing filter on the reference dataset
func TestListKeys_MissingTranslationsForLanguage(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedSampleProject(t, db)
	svc := NewKeyService(db)

	keys, total, err := svc.ListKeys(testContext(), KeyListParams{
		ProjectID:           project.ID,
		Page:                1,
		Limit:               50,
		LanguageCode:        "fr",
		MissingTranslations: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, keys, 1)
	assert.Equal(t, "nav.dashboard", keys[0].Key)
}

// TestListKeys_MissingTranslationsAnyLanguage tests the unscoped missing
// filter, which compares against the project's language count
func TestListKeys_MissingTranslationsAnyLanguage(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedSampleProject(t, db)
	svc := NewKeyService(db)

	keys, total, err := svc.ListKeys(testContext(), KeyListParams{
		ProjectID:           project.ID,
		Page:                1,
		Limit:               50,
		MissingTranslations: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, keys, 1)
	assert.Equal(t, "nav.dashboard", keys[0].Key)
}

// TestListKeys_LanguageCodeAloneIsIgnored tests that the language filter has
// no effect without the missing flag
func TestListKeys_LanguageCodeAloneIsIgnored(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedSampleProject(t, db)
	svc := NewKeyService(db)

	_, total, err := svc.ListKeys(testContext(), KeyListParams{
		ProjectID:    project.ID,
		Page:         1,
		Limit:        50,
		LanguageCode: "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

// TestListKeys_SearchAndCategory tests the conjunctive text filters
func TestListKeys_SearchAndCategory(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedSampleProject(t, db)
	svc := NewKeyService(db)

	keys, total, err := svc.ListKeys(testContext(), KeyListParams{
		ProjectID: project.ID,
		Page:      1,
		Limit:     50,
		Search:    "LOGIN",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, keys, 2)

	_, total, err = svc.ListKeys(testContext(), KeyListParams{
		ProjectID: project.ID,
		Page:      1,
		Limit:     50,
		Search:    "login",
		Category:  "missing-category",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

// TestListKeys_PaginationIsDeterministic tests stable ordering across pages
func TestListKeys_PaginationIsDeterministic(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedSampleProject(t, db)
	svc := NewKeyService(db)

	var seen []string
	for page := 1; page <= 3; page++ {
		keys, total, err := svc.ListKeys(testContext(), KeyListParams{
			ProjectID: project.ID,
			Page:      page,
			Limit:     2,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		for _, k := range keys {
			seen = append(seen, k.Key)
		}
	}
	assert.Len(t, seen, 5)

	// No key appears twice across pages
	unique := make(map[string]struct{}, len(seen))
	for _, k := range seen {
		unique[k] = struct{}{}
	}
	assert.Len(t, unique, 5)
}

// TestDeleteKey_CascadesTranslations tests that translations go with the key
func TestDeleteKey_CascadesTranslations(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedProject(t, db, "web", "en", "fr")
	key := seedKey(t, db, project.ID, "nav.home", map[string]string{"en": "Home", "fr": "Accueil"})
	svc := NewKeyService(db)

	require.NoError(t, svc.DeleteKey(testContext(), key.ID))

	var count int64
	require.NoError(t, db.Model(&models.Translation{}).Where("translation_key_id = ?", key.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	err := svc.DeleteKey(testContext(), key.ID)
	require.Error(t, err)
	var i18nErr *I18nError
	require.ErrorAs(t, err, &i18nErr)
	assert.Equal(t, app_errors.ErrResourceNotFound.Code, i18nErr.APIError.Code)
}
