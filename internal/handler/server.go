// Package handler contains the HTTP handlers for the localization API.
package handler

import (
	"locman/internal/services"
	"locman/internal/types"

	"gorm.io/gorm"
)

// Server holds the dependencies shared by all API handlers.
type Server struct {
	DB                 *gorm.DB
	config             types.ConfigManager
	ProjectService     *services.ProjectService
	LanguageService    *services.LanguageService
	KeyService         *services.KeyService
	TranslationService *services.TranslationService
	AnalyticsService   *services.AnalyticsService
	ExportService      *services.ExportService
}

// NewServer creates a new Server instance.
func NewServer(
	db *gorm.DB,
	configManager types.ConfigManager,
	projectService *services.ProjectService,
	languageService *services.LanguageService,
	keyService *services.KeyService,
	translationService *services.TranslationService,
	analyticsService *services.AnalyticsService,
	exportService *services.ExportService,
) *Server {
	return &Server{
		DB:                 db,
		config:             configManager,
		ProjectService:     projectService,
		LanguageService:    languageService,
		KeyService:         keyService,
		TranslationService: translationService,
		AnalyticsService:   analyticsService,
		ExportService:      exportService,
	}
}
