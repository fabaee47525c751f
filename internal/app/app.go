package app

import (
	"github.com/trebuchet-org/deployergen/internal/cli/render"
	"github.com/trebuchet-org/deployergen/internal/domain/config"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	PlanDeployer     *usecase.PlanDeployer
	GenerateDeployer *usecase.GenerateDeployer

	// Renderers
	GenerateRenderer *render.GenerateRenderer
	InspectRenderer  *render.InspectRenderer
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	planDeployer *usecase.PlanDeployer,
	generateDeployer *usecase.GenerateDeployer,
	generateRenderer *render.GenerateRenderer,
	inspectRenderer *render.InspectRenderer,
) (*App, error) {
	return &App{
		Config:           cfg,
		PlanDeployer:     planDeployer,
		GenerateDeployer: generateDeployer,
		GenerateRenderer: generateRenderer,
		InspectRenderer:  inspectRenderer,
	}, nil
}
