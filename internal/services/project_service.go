// Package services contains the business logic between the HTTP handlers
// and the GORM store.
package services

import (
	"context"

	app_errors "locman/internal/errors"
	"locman/internal/models"

	"gorm.io/gorm"
)

// I18nError represents an error that carries translation metadata.
type I18nError struct {
	APIError  *app_errors.APIError
	MessageID string
	Template  map[string]any
}

// Error implements the error interface.
func (e *I18nError) Error() string {
	if e == nil || e.APIError == nil {
		return ""
	}
	return e.APIError.Error()
}

// NewI18nError is a helper to create an I18n-enabled error.
func NewI18nError(apiErr *app_errors.APIError, msgID string, template map[string]any) *I18nError {
	return &I18nError{
		APIError:  apiErr,
		MessageID: msgID,
		Template:  template,
	}
}

// ProjectService handles business logic for projects and their language
// assignments.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService constructs a ProjectService.
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ProjectCreateParams carries the payload for CreateProject.
type ProjectCreateParams struct {
	Name        string
	Description string
}

// ListProjects returns all projects with their assigned languages preloaded,
// newest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.WithContext(ctx).
		Preload("ProjectLanguages.Language").
		Order("created_at desc").
		Find(&projects).Error
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return projects, nil
}

// GetProjectByID loads a single project with its language assignments.
func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := s.db.WithContext(ctx).
		Preload("ProjectLanguages.Language").
		Where("id = ?", id).
		First(&project).Error
	if err == gorm.ErrRecordNotFound {
		return nil, NewI18nError(app_errors.ErrResourceNotFound, "project.not_found", nil)
	}
	if err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return &project, nil
}

// CreateProject persists a new project.
func (s *ProjectService) CreateProject(ctx context.Context, params ProjectCreateParams) (*models.Project, error) {
	if params.Name == "" {
		return nil, NewI18nError(app_errors.ErrValidation, "validation.name_required", nil)
	}
	project := &models.Project{
		Name:        params.Name,
		Description: params.Description,
	}
	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, app_errors.ParseDBError(err)
	}
	return project, nil
}

// DeleteProject removes a project. Language assignments, keys and
// translations go with it through the cascade constraints.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return app_errors.ParseDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return NewI18nError(app_errors.ErrResourceNotFound, "project.not_found", nil)
	}
	return nil
}

// AssignLanguage adds a language to a project's supported set. A duplicate
// assignment surfaces as a conflict through the unique constraint on
// (project_id, language_code).
func (s *ProjectService) AssignLanguage(ctx context.Context, projectID, languageCode string) (*models.ProjectLanguage, error) {
	if err := s.ensureProjectExists(ctx, projectID); err != nil {
		return nil, err
	}
	var language models.Language
	if err := s.db.WithContext(ctx).Where("code = ?", languageCode).First(&language).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewI18nError(app_errors.ErrResourceNotFound, "language.not_found", nil)
		}
		return nil, app_errors.ParseDBError(err)
	}

	assignment := &models.ProjectLanguage{
		ProjectID:    projectID,
		LanguageCode: languageCode,
	}
	if err := s.db.WithContext(ctx).Create(assignment).Error; err != nil {
		if app_errors.IsDuplicate(err) {
			return nil, NewI18nError(app_errors.ErrDuplicateResource, "language.exists", nil)
		}
		return nil, app_errors.ParseDBError(err)
	}
	assignment.Language = language
	return assignment, nil
}

// UnassignLanguage removes a language from a project's supported set.
// Existing translations in that language stay untouched.
func (s *ProjectService) UnassignLanguage(ctx context.Context, projectID, languageCode string) error {
	result := s.db.WithContext(ctx).
		Where("project_id = ? AND language_code = ?", projectID, languageCode).
		Delete(&models.ProjectLanguage{})
	if result.Error != nil {
		return app_errors.ParseDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return NewI18nError(app_errors.ErrResourceNotFound, "language.not_found", nil)
	}
	return nil
}

func (s *ProjectService) ensureProjectExists(ctx context.Context, projectID string) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error
	if err != nil {
		return app_errors.ParseDBError(err)
	}
	if count == 0 {
		return NewI18nError(app_errors.ErrResourceNotFound, "project.not_found", nil)
	}
	return nil
}
