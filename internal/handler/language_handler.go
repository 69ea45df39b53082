package handler

import (
	app_errors "locman/internal/errors"
	"locman/internal/response"
	"locman/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateLanguageRequest defines the payload for registering a language.
type CreateLanguageRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	Flag string `json:"flag"`
}

// ListLanguages returns every registered language.
// GET /api/languages
func (s *Server) ListLanguages(c *gin.Context) {
	languages, err := s.LanguageService.ListLanguages(c.Request.Context())
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, languages)
}

// CreateLanguage registers a language in the global registry.
// POST /api/languages
func (s *Server) CreateLanguage(c *gin.Context) {
	var req CreateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	language, err := s.LanguageService.CreateLanguage(c.Request.Context(), services.LanguageCreateParams{
		Code: req.Code,
		Name: req.Name,
		Flag: req.Flag,
	})
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "language.created", language)
}
