package services

import (
	"context"

	app_errors "locman/internal/errors"
	"locman/internal/models"

	"gorm.io/gorm"
)

// LanguageService handles business logic for the global language registry.
type LanguageService struct {
	db *gorm.DB
}

// NewLanguageService constructs a LanguageService.
func NewLanguageService(db *gorm.DB) *LanguageService {
	return &LanguageService{db: db}
}

// LanguageCreateParams carries the payload for CreateLanguage.
type LanguageCreateParams struct {
	Code string
	Name string
	Flag string
}

// ListLanguages returns every registered language ordered by code.
func (s *LanguageService) ListLanguages(ctx context.Context) ([]models.Language, error) {
	var languages []models.Language
	if err := s.db.WithContext(ctx).Order("code").Find(&languages).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return languages, nil
}

// CreateLanguage registers a language in the global registry. The code is
// the primary key, so re-registering an existing code is a conflict.
func (s *LanguageService) CreateLanguage(ctx context.Context, params LanguageCreateParams) (*models.Language, error) {
	if params.Code == "" {
		return nil, NewI18nError(app_errors.ErrValidation, "validation.invalid_language", nil)
	}
	if params.Name == "" {
		return nil, NewI18nError(app_errors.ErrValidation, "validation.name_required", nil)
	}
	language := &models.Language{
		Code: params.Code,
		Name: params.Name,
		Flag: params.Flag,
	}
	if err := s.db.WithContext(ctx).Create(language).Error; err != nil {
		if app_errors.IsDuplicate(err) {
			return nil, NewI18nError(app_errors.ErrDuplicateResource, "language.exists", nil)
		}
		return nil, app_errors.ParseDBError(err)
	}
	return language, nil
}
