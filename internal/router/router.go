// Package router wires the HTTP routes to their handlers.
package router

import (
	"net/http"
	"time"

	"locman/internal/handler"
	"locman/internal/i18n"
	"locman/internal/middleware"
	"locman/internal/types"
	"locman/internal/version"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the full middleware chain and all
// API routes registered.
func NewRouter(
	serverHandler *handler.Server,
	configManager types.ConfigManager,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Register global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Logger(configManager.GetLogConfig()))
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	router.Use(middleware.RateLimiter(configManager.GetPerformanceConfig()))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestBodySizeLimit(10 << 20))
	startTime := time.Now()
	router.Use(func(c *gin.Context) {
		c.Set("serverStartTime", startTime)
		c.Next()
	})

	registerSystemRoutes(router, serverHandler)
	registerAPIRoutes(router, serverHandler)

	return router
}

// registerSystemRoutes registers system-level routes
func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/health", serverHandler.Health)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "locman", "version": version.Version, "status": "running"})
	})
}

// registerAPIRoutes registers API routes
func registerAPIRoutes(router *gin.Engine, serverHandler *handler.Server) {
	api := router.Group("/api")
	api.Use(i18n.Middleware())
	api.Use(gzip.Gzip(gzip.DefaultCompression))

	projects := api.Group("/projects")
	{
		projects.GET("", serverHandler.ListProjects)
		projects.POST("", serverHandler.CreateProject)
		projects.GET("/:id", serverHandler.GetProject)
		projects.DELETE("/:id", serverHandler.DeleteProject)
		projects.POST("/:id/languages", serverHandler.AssignLanguage)
		projects.DELETE("/:id/languages/:code", serverHandler.UnassignLanguage)
		projects.GET("/:id/translation-keys", serverHandler.ListKeys)
		projects.GET("/:id/analytics", serverHandler.GetProjectAnalytics)
	}

	languages := api.Group("/languages")
	{
		languages.GET("", serverHandler.ListLanguages)
		languages.POST("", serverHandler.CreateLanguage)
	}

	keys := api.Group("/translation-keys")
	{
		keys.POST("", serverHandler.CreateKey)
		keys.GET("/:id", serverHandler.GetKey)
		keys.DELETE("/:id", serverHandler.DeleteKey)
	}

	translations := api.Group("/translations")
	{
		translations.POST("", serverHandler.CreateTranslation)
		translations.POST("/bulk-update", serverHandler.BulkUpdateTranslations)
		translations.PUT("/:keyId/:languageCode", serverHandler.UpsertTranslation)
	}

	api.GET("/localizations/:projectId/:locale", serverHandler.GetLocalizations)
}
