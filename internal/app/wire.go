//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/deployergen/internal/adapters"
	"github.com/trebuchet-org/deployergen/internal/cli/render"
	"github.com/trebuchet-org/deployergen/internal/config"
	"github.com/trebuchet-org/deployergen/internal/logging"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewPlanDeployer,
		usecase.NewGenerateDeployer,

		// Renderers
		render.NewGenerateRenderer,
		render.NewInspectRenderer,

		// App
		NewApp,
	)
	return nil, nil
}
