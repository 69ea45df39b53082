package services

import (
	"context"

	app_errors "locman/internal/errors"
	"locman/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TranslationService handles business logic for translation values.
type TranslationService struct {
	db *gorm.DB
}

// NewTranslationService constructs a TranslationService.
func NewTranslationService(db *gorm.DB) *TranslationService {
	return &TranslationService{db: db}
}

// TranslationParams carries the payload for CreateTranslation and
// UpsertTranslation.
type TranslationParams struct {
	KeyID        string
	LanguageCode string
	Value        string
	UpdatedBy    string
}

// BulkUpdateItemResult reports the outcome of one entry in a bulk update.
type BulkUpdateItemResult struct {
	KeyID        string `json:"key_id"`
	LanguageCode string `json:"language_code"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
}

// BulkUpdateResult aggregates the per-entry outcomes of a bulk update.
type BulkUpdateResult struct {
	UpdatedCount   int                    `json:"updated_count"`
	TotalRequested int                    `json:"total_requested"`
	Results        []BulkUpdateItemResult `json:"results"`
}

func (s *TranslationService) validate(params TranslationParams) error {
	if params.KeyID == "" {
		return NewI18nError(app_errors.ErrValidation, "validation.invalid_key_id", nil)
	}
	if params.LanguageCode == "" {
		return NewI18nError(app_errors.ErrValidation, "validation.invalid_language", nil)
	}
	if params.Value == "" {
		return NewI18nError(app_errors.ErrValidation, "validation.value_required", nil)
	}
	return nil
}

// CreateTranslation inserts a translation row. It is deliberately not
// idempotent: a second insert for the same (key, language) pair hits the
// unique index and comes back as a conflict, so two concurrent creators
// resolve to one winner. The key lookup only distinguishes an unknown key
// from a duplicate row.
func (s *TranslationService) CreateTranslation(ctx context.Context, params TranslationParams) (*models.Translation, error) {
	if err := s.validate(params); err != nil {
		return nil, err
	}
	if err := s.ensureKeyExists(ctx, params.KeyID); err != nil {
		return nil, err
	}

	translation := &models.Translation{
		TranslationKeyID: params.KeyID,
		LanguageCode:     params.LanguageCode,
		Value:            params.Value,
		UpdatedBy:        s.author(params.UpdatedBy),
	}
	if err := s.db.WithContext(ctx).Create(translation).Error; err != nil {
		if app_errors.IsDuplicate(err) {
			return nil, NewI18nError(app_errors.ErrDuplicateResource, "translation.exists", nil)
		}
		if app_errors.IsNotFound(err) {
			return nil, NewI18nError(app_errors.ErrResourceNotFound, "key.not_found", nil)
		}
		return nil, app_errors.ParseDBError(err)
	}
	return translation, nil
}

// UpsertTranslation writes a translation value whether or not a row already
// exists, using the dialect's conflict clause on the (translation_key_id,
// language_code) index. Calling it twice with the same payload leaves the
// same single row behind.
func (s *TranslationService) UpsertTranslation(ctx context.Context, params TranslationParams) (*models.Translation, error) {
	if err := s.validate(params); err != nil {
		return nil, err
	}
	if err := s.ensureKeyExists(ctx, params.KeyID); err != nil {
		return nil, err
	}

	translation := &models.Translation{
		TranslationKeyID: params.KeyID,
		LanguageCode:     params.LanguageCode,
		Value:            params.Value,
		UpdatedBy:        s.author(params.UpdatedBy),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "translation_key_id"}, {Name: "language_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
	}).Create(translation).Error
	if err != nil {
		if app_errors.IsNotFound(err) {
			return nil, NewI18nError(app_errors.ErrResourceNotFound, "key.not_found", nil)
		}
		return nil, app_errors.ParseDBError(err)
	}

	// Reload so the caller sees the stored row, not the insert candidate.
	var stored models.Translation
	err = s.db.WithContext(ctx).
		Where("translation_key_id = ? AND language_code = ?", params.KeyID, params.LanguageCode).
		First(&stored).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return &stored, nil
}

// BulkUpdateTranslations applies each update independently through
// UpsertTranslation. One bad entry never blocks the rest; its failure is
// reported in the per-entry results instead.
func (s *TranslationService) BulkUpdateTranslations(ctx context.Context, updates []TranslationParams) *BulkUpdateResult {
	result := &BulkUpdateResult{
		TotalRequested: len(updates),
		Results:        make([]BulkUpdateItemResult, 0, len(updates)),
	}
	for _, update := range updates {
		item := BulkUpdateItemResult{
			KeyID:        update.KeyID,
			LanguageCode: update.LanguageCode,
		}
		if _, err := s.UpsertTranslation(ctx, update); err != nil {
			item.Error = err.Error()
		} else {
			item.Success = true
			result.UpdatedCount++
		}
		result.Results = append(result.Results, item)
	}
	return result
}

func (s *TranslationService) author(updatedBy string) string {
	if updatedBy == "" {
		return DefaultUpdatedBy
	}
	return updatedBy
}

func (s *TranslationService) ensureKeyExists(ctx context.Context, keyID string) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.TranslationKey{}).Where("id = ?", keyID).Count(&count).Error
	if err != nil {
		return app_errors.ParseDBError(err)
	}
	if count == 0 {
		return NewI18nError(app_errors.ErrResourceNotFound, "key.not_found", nil)
	}
	return nil
}
