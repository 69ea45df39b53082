package handler

import (
	"time"

	app_errors "locman/internal/errors"
	"locman/internal/models"
	"locman/internal/response"
	"locman/internal/services"
	"locman/internal/utils"

	"github.com/gin-gonic/gin"
)

// TranslationValue is one language's entry in a key's translations map.
type TranslationValue struct {
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TranslationKeyResponse is the API shape of a translation key with its
// translations keyed by language code.
type TranslationKeyResponse struct {
	ID           string                      `json:"id"`
	ProjectID    string                      `json:"project_id"`
	Key          string                      `json:"key"`
	Category     string                      `json:"category"`
	Description  string                      `json:"description,omitempty"`
	Translations map[string]TranslationValue `json:"translations"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func newTranslationKeyResponse(key *models.TranslationKey) TranslationKeyResponse {
	translations := make(map[string]TranslationValue, len(key.Translations))
	for _, t := range key.Translations {
		translations[t.LanguageCode] = TranslationValue{
			Value:     t.Value,
			UpdatedBy: t.UpdatedBy,
			UpdatedAt: t.UpdatedAt,
		}
	}
	return TranslationKeyResponse{
		ID:           key.ID,
		ProjectID:    key.ProjectID,
		Key:          key.Key,
		Category:     key.Category,
		Description:  key.Description,
		Translations: translations,
		CreatedAt:    key.CreatedAt,
		UpdatedAt:    key.UpdatedAt,
	}
}

// KeyListResponse is one page of a project's keys.
type KeyListResponse struct {
	Keys  []TranslationKeyResponse `json:"keys"`
	Total int64                    `json:"total"`
	Page  int                      `json:"page"`
	Limit int                      `json:"limit"`
}

// CreateKeyRequest defines the payload for creating a translation key.
// InitialTranslations is keyed by language code.
type CreateKeyRequest struct {
	ProjectID           string            `json:"project_id" binding:"required"`
	Key                 string            `json:"key" binding:"required"`
	Category            string            `json:"category"`
	Description         string            `json:"description"`
	InitialTranslations map[string]string `json:"initial_translations"`
	UpdatedBy           string            `json:"updated_by"`
}

// ListKeys returns one page of a project's translation keys.
// GET /api/projects/:id/translation-keys
func (s *Server) ListKeys(c *gin.Context) {
	page := response.ParsePageParams(c)
	params := services.KeyListParams{
		ProjectID:           c.Param("id"),
		Page:                page.Page,
		Limit:               page.Limit,
		Search:              c.Query("search"),
		Category:            c.Query("category"),
		LanguageCode:        c.Query("language_code"),
		MissingTranslations: utils.ParseBoolean(c.Query("missing_translations"), false),
	}

	keys, total, err := s.KeyService.ListKeys(c.Request.Context(), params)
	if HandleServiceError(c, err) {
		return
	}

	result := KeyListResponse{
		Keys:  make([]TranslationKeyResponse, 0, len(keys)),
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}
	for i := range keys {
		result.Keys = append(result.Keys, newTranslationKeyResponse(&keys[i]))
	}
	response.Success(c, result)
}

// GetKey returns a single translation key with its translations.
// GET /api/translation-keys/:id
func (s *Server) GetKey(c *gin.Context) {
	key, err := s.KeyService.GetKeyByID(c.Request.Context(), c.Param("id"))
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, newTranslationKeyResponse(key))
}

// CreateKey creates a translation key, optionally seeded with initial
// translations.
// POST /api/translation-keys
func (s *Server) CreateKey(c *gin.Context) {
	var req CreateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	key, err := s.KeyService.CreateKey(c.Request.Context(), services.KeyCreateParams{
		ProjectID:           req.ProjectID,
		Key:                 req.Key,
		Category:            req.Category,
		Description:         req.Description,
		InitialTranslations: req.InitialTranslations,
		UpdatedBy:           req.UpdatedBy,
	})
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "key.created", newTranslationKeyResponse(key))
}

// DeleteKey removes a translation key and its translations.
// DELETE /api/translation-keys/:id
func (s *Server) DeleteKey(c *gin.Context) {
	err := s.KeyService.DeleteKey(c.Request.Context(), c.Param("id"))
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "key.deleted", nil)
}
