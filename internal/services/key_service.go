package services

import (
	"context"
	"strings"

	app_errors "locman/internal/errors"
	"locman/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultUpdatedBy is recorded on translations when the caller supplies no
// author.
const DefaultUpdatedBy = "api_user"

// KeyService handles business logic for translation keys.
type KeyService struct {
	db *gorm.DB
}

// NewKeyService constructs a KeyService.
func NewKeyService(db *gorm.DB) *KeyService {
	return &KeyService{db: db}
}

// KeyCreateParams carries the payload for CreateKey. InitialTranslations is
// keyed by language code.
type KeyCreateParams struct {
	ProjectID           string
	Key                 string
	Category            string
	Description         string
	InitialTranslations map[string]string
	UpdatedBy           string
}

// KeyListParams carries the filters for ListKeys. All filters combine
// conjunctively. LanguageCode on its own has no effect; it only narrows the
// missing-translations filter.
type KeyListParams struct {
	ProjectID           string
	Page                int
	Limit               int
	Search              string
	Category            string
	LanguageCode        string
	MissingTranslations bool
}

// CreateKey inserts a translation key and, when given, its initial
// translations. The key insert is authoritative: a duplicate (project_id,
// key) pair is a conflict and an unknown project is not found, both detected
// through the table constraints. Initial translations are inserted one by
// one; a failing entry is logged and skipped without failing the key.
func (s *KeyService) CreateKey(ctx context.Context, params KeyCreateParams) (*models.TranslationKey, error) {
	if params.ProjectID == "" {
		return nil, NewI18nError(app_errors.ErrValidation, "validation.invalid_project_id", nil)
	}
	if params.Key == "" {
		return nil, NewI18nError(app_errors.ErrValidation, "validation.key_required", nil)
	}

	key := &models.TranslationKey{
		ProjectID:   params.ProjectID,
		Key:         params.Key,
		Category:    params.Category,
		Description: params.Description,
	}
	if err := s.db.WithContext(ctx).Create(key).Error; err != nil {
		if app_errors.IsDuplicate(err) {
			return nil, NewI18nError(app_errors.ErrDuplicateResource, "key.exists", nil)
		}
		if app_errors.IsNotFound(err) {
			return nil, NewI18nError(app_errors.ErrResourceNotFound, "project.not_found", nil)
		}
		return nil, app_errors.ParseDBError(err)
	}

	updatedBy := params.UpdatedBy
	if updatedBy == "" {
		updatedBy = DefaultUpdatedBy
	}
	for languageCode, value := range params.InitialTranslations {
		translation := &models.Translation{
			TranslationKeyID: key.ID,
			LanguageCode:     languageCode,
			Value:            value,
			UpdatedBy:        updatedBy,
		}
		if err := s.db.WithContext(ctx).Create(translation).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"key_id":        key.ID,
				"language_code": languageCode,
			}).WithError(err).Warn("Skipping initial translation")
			continue
		}
		key.Translations = append(key.Translations, *translation)
	}

	return key, nil
}

// GetKeyByID loads a single key with its translations.
func (s *KeyService) GetKeyByID(ctx context.Context, id string) (*models.TranslationKey, error) {
	var key models.TranslationKey
	err := s.db.WithContext(ctx).
		Preload("Translations").
		Where("id = ?", id).
		First(&key).Error
	if err == gorm.ErrRecordNotFound {
		return nil, NewI18nError(app_errors.ErrResourceNotFound, "key.not_found", nil)
	}
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return &key, nil
}

// ListKeys returns one page of a project's keys with their translations,
// plus the total match count across all pages. Keys come back in insertion
// order; the id tiebreak keeps pagination stable when timestamps collide.
func (s *KeyService) ListKeys(ctx context.Context, params KeyListParams) ([]models.TranslationKey, int64, error) {
	query := s.db.WithContext(ctx).
		Model(&models.TranslationKey{}).
		Where("project_id = ?", params.ProjectID)

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(key) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.MissingTranslations {
		if params.LanguageCode != "" {
			query = query.Where(
				"NOT EXISTS (SELECT 1 FROM translations t WHERE t.translation_key_id = translation_keys.id AND t.language_code = ?)",
				params.LanguageCode)
		} else {
			query = query.Where(
				"(SELECT COUNT(*) FROM translations t WHERE t.translation_key_id = translation_keys.id) < " +
					"(SELECT COUNT(*) FROM project_languages pl WHERE pl.project_id = translation_keys.project_id)")
		}
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, app_errors.ParseDBError(err)
	}

	var keys []models.TranslationKey
	err := query.Session(&gorm.Session{}).
		Preload("Translations").
		Order("created_at, id").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&keys).Error
	if err != nil {
		return nil, 0, app_errors.ParseDBError(err)
	}
	return keys, total, nil
}

// DeleteKey removes a key and, through the cascade constraint, all of its
// translations.
func (s *KeyService) DeleteKey(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.TranslationKey{})
	if result.Error != nil {
		return app_errors.ParseDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return NewI18nError(app_errors.ErrResourceNotFound, "key.not_found", nil)
	}
	return nil
}
