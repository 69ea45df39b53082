package handler

import (
	app_errors "locman/internal/errors"
	"locman/internal/response"
	"locman/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateTranslationRequest defines the payload for creating a translation.
type CreateTranslationRequest struct {
	KeyID        string `json:"key_id" binding:"required"`
	LanguageCode string `json:"language_code" binding:"required"`
	Value        string `json:"value" binding:"required"`
	UpdatedBy    string `json:"updated_by"`
}

// UpsertTranslationRequest defines the payload for the idempotent upsert.
type UpsertTranslationRequest struct {
	Value     string `json:"value" binding:"required"`
	UpdatedBy string `json:"updated_by"`
}

// BulkUpdateRequest defines the payload for bulk translation updates.
type BulkUpdateRequest struct {
	Updates []CreateTranslationRequest `json:"updates" binding:"required"`
}

// CreateTranslation inserts a new translation. A second create for the same
// key and language pair is rejected as a conflict.
// POST /api/translations
func (s *Server) CreateTranslation(c *gin.Context) {
	var req CreateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	translation, err := s.TranslationService.CreateTranslation(c.Request.Context(), services.TranslationParams{
		KeyID:        req.KeyID,
		LanguageCode: req.LanguageCode,
		Value:        req.Value,
		UpdatedBy:    req.UpdatedBy,
	})
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "translation.created", translation)
}

// UpsertTranslation writes a translation value, creating or overwriting as
// needed.
// PUT /api/translations/:keyId/:languageCode
func (s *Server) UpsertTranslation(c *gin.Context) {
	var req UpsertTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	translation, err := s.TranslationService.UpsertTranslation(c.Request.Context(), services.TranslationParams{
		KeyID:        c.Param("keyId"),
		LanguageCode: c.Param("languageCode"),
		Value:        req.Value,
		UpdatedBy:    req.UpdatedBy,
	})
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "translation.updated", translation)
}

// BulkUpdateTranslations applies a batch of upserts, reporting each entry's
// outcome individually. The response is 200 even when some entries fail.
// POST /api/translations/bulk-update
func (s *Server) BulkUpdateTranslations(c *gin.Context) {
	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	if len(req.Updates) == 0 {
		response.ErrorI18nFromAPIError(c, app_errors.ErrValidation, "validation.updates_required")
		return
	}

	updates := make([]services.TranslationParams, 0, len(req.Updates))
	for _, u := range req.Updates {
		updates = append(updates, services.TranslationParams{
			KeyID:        u.KeyID,
			LanguageCode: u.LanguageCode,
			Value:        u.Value,
			UpdatedBy:    u.UpdatedBy,
		})
	}

	result := s.TranslationService.BulkUpdateTranslations(c.Request.Context(), updates)
	response.SuccessI18n(c, "translation.bulk", result, map[string]any{
		"Updated": result.UpdatedCount,
		"Total":   result.TotalRequested,
	})
}
