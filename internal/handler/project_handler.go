package handler

import (
	"time"

	app_errors "locman/internal/errors"
	"locman/internal/models"
	"locman/internal/response"
	"locman/internal/services"

	"github.com/gin-gonic/gin"
)

// ProjectResponse is the API shape of a project, with its assigned
// languages flattened in.
type ProjectResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Languages   []models.Language `json:"languages"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func newProjectResponse(project *models.Project) ProjectResponse {
	languages := make([]models.Language, 0, len(project.ProjectLanguages))
	for _, pl := range project.ProjectLanguages {
		languages = append(languages, pl.Language)
	}
	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Languages:   languages,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// CreateProjectRequest defines the payload for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AssignLanguageRequest defines the payload for assigning a language to a
// project.
type AssignLanguageRequest struct {
	LanguageCode string `json:"language_code" binding:"required"`
}

// ListProjects returns all projects with their assigned languages.
// GET /api/projects
func (s *Server) ListProjects(c *gin.Context) {
	projects, err := s.ProjectService.ListProjects(c.Request.Context())
	if HandleServiceError(c, err) {
		return
	}
	result := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		result = append(result, newProjectResponse(&projects[i]))
	}
	response.Success(c, result)
}

// GetProject returns a single project.
// GET /api/projects/:id
func (s *Server) GetProject(c *gin.Context) {
	project, err := s.ProjectService.GetProjectByID(c.Request.Context(), c.Param("id"))
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, newProjectResponse(project))
}

// CreateProject creates a new project.
// POST /api/projects
func (s *Server) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	project, err := s.ProjectService.CreateProject(c.Request.Context(), services.ProjectCreateParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "project.created", newProjectResponse(project))
}

// DeleteProject removes a project and everything under it.
// DELETE /api/projects/:id
func (s *Server) DeleteProject(c *gin.Context) {
	err := s.ProjectService.DeleteProject(c.Request.Context(), c.Param("id"))
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "project.deleted", nil)
}

// AssignLanguage adds a language to a project's supported set.
// POST /api/projects/:id/languages
func (s *Server) AssignLanguage(c *gin.Context) {
	var req AssignLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	assignment, err := s.ProjectService.AssignLanguage(c.Request.Context(), c.Param("id"), req.LanguageCode)
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "language.assigned", assignment)
}

// UnassignLanguage removes a language from a project's supported set.
// DELETE /api/projects/:id/languages/:code
func (s *Server) UnassignLanguage(c *gin.Context) {
	err := s.ProjectService.UnassignLanguage(c.Request.Context(), c.Param("id"), c.Param("code"))
	if HandleServiceError(c, err) {
		return
	}
	response.SuccessI18n(c, "language.unassigned", nil)
}
