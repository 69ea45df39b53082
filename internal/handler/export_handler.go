package handler

import (
	"locman/internal/response"

	"github.com/gin-gonic/gin"
)

// GetLocalizations returns the flat key to value export for one locale.
// GET /api/localizations/:projectId/:locale
func (s *Server) GetLocalizations(c *gin.Context) {
	export, err := s.ExportService.GetFlatLocalizations(c.Request.Context(), c.Param("projectId"), c.Param("locale"))
	if HandleServiceError(c, err) {
		return
	}
	response.Success(c, export)
}
