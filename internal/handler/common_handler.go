package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health performs a liveness check including database connectivity.
// GET /health
func (s *Server) Health(c *gin.Context) {
	healthStatus := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if startTime, exists := c.Get("serverStartTime"); exists {
		if st, ok := startTime.(time.Time); ok {
			healthStatus["uptime"] = time.Since(st).String()
		}
	}

	sqlDB, err := s.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		healthStatus["status"] = "unhealthy"
		healthStatus["database"] = "error"
		// Raw driver errors only leave the process in debug mode.
		if s.config != nil && s.config.IsDebugMode() {
			healthStatus["error"] = err.Error()
		}
		c.JSON(http.StatusServiceUnavailable, healthStatus)
		return
	}

	healthStatus["database"] = "ok"
	c.JSON(http.StatusOK, healthStatus)
}
