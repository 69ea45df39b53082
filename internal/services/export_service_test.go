package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetFlatLocalizations tests the legacy export on the reference dataset
func TestGetFlatLocalizations(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedSampleProject(t, db)
	svc := NewExportService(db)

	export, err := svc.GetFlatLocalizations(testContext(), project.ID, "fr")
	require.NoError(t, err)

	assert.Equal(t, project.ID, export.ProjectID)
	assert.Equal(t, "fr", export.Locale)

	// nav.dashboard has no fr translation and must be omitted, not nulled
	require.Len(t, export.Localizations, 4)
	assert.NotContains(t, export.Localizations, "nav.dashboard")
	assert.Equal(t, "Paramètres", export.Localizations["nav.settings"])
	assert.Equal(t, "Connexion", export.Localizations["auth.login.title"])
}

// TestGetFlatLocalizations_EmptyResult tests unknown project and locale
func TestGetFlatLocalizations_EmptyResult(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := seedSampleProject(t, db)
	svc := NewExportService(db)

	export, err := svc.GetFlatLocalizations(testContext(), project.ID, "de")
	require.NoError(t, err)
	assert.Empty(t, export.Localizations)

	export, err = svc.GetFlatLocalizations(testContext(), "9e7a4d2c-0000-0000-0000-000000000000", "fr")
	require.NoError(t, err)
	assert.Empty(t, export.Localizations)
}
