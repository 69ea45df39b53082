package services

import (
	"context"

	app_errors "locman/internal/errors"

	"gorm.io/gorm"
)

// ExportService produces the flat key→value export consumed by legacy
// clients.
type ExportService struct {
	db *gorm.DB
}

// NewExportService constructs an ExportService.
func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

// FlatExport is the legacy localization payload for one project and locale.
type FlatExport struct {
	ProjectID     string            `json:"project_id"`
	Locale        string            `json:"locale"`
	Localizations map[string]string `json:"localizations"`
}

// GetFlatLocalizations maps every translated key of a project to its value
// in the given locale. Keys without a translation in that locale are left
// out entirely; the export never carries empty or null placeholders.
func (s *ExportService) GetFlatLocalizations(ctx context.Context, projectID, locale string) (*FlatExport, error) {
	type row struct {
		Key   string
		Value string
	}
	var rows []row
	err := s.db.WithContext(ctx).
		Table("translation_keys").
		Select("translation_keys.key, translations.value").
		Joins("JOIN translations ON translations.translation_key_id = translation_keys.id AND translations.language_code = ?", locale).
		Where("translation_keys.project_id = ?", projectID).
		Scan(&rows).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}

	export := &FlatExport{
		ProjectID:     projectID,
		Locale:        locale,
		Localizations: make(map[string]string, len(rows)),
	}
	for _, r := range rows {
		export.Localizations[r.Key] = r.Value
	}
	return export, nil
}
