// Package container builds the dependency injection graph.
package container

import (
	"locman/internal/app"
	"locman/internal/config"
	"locman/internal/db"
	"locman/internal/handler"
	"locman/internal/router"
	"locman/internal/services"

	"go.uber.org/dig"
)

// BuildContainer creates and configures the dig container with all
// application components.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		// Infrastructure
		config.NewManager,
		db.NewDB,

		// Services
		services.NewProjectService,
		services.NewLanguageService,
		services.NewKeyService,
		services.NewTranslationService,
		services.NewAnalyticsService,
		services.NewExportService,

		// HTTP layer
		handler.NewServer,
		router.NewRouter,

		// Application
		app.NewApp,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
