package handler

import (
	"locman/internal/response"

	"github.com/gin-gonic/gin"
)

// GetProjectAnalytics returns completion statistics for a project.
// GET /api/projects/:id/analytics
func (s *Server) GetProjectAnalytics(c *gin.Context) {
	analytics, err := s.AnalyticsService.GetProjectAnalytics(c.Request.Context(), c.Param("id"))
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, analytics)
}
