//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/scilla-check/internal/adapters"
	"github.com/trebuchet-org/scilla-check/internal/config"
	"github.com/trebuchet-org/scilla-check/internal/logging"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
	"github.com/trebuchet-org/scilla-check/internal/verify"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,
		config.ProvideNetworkResolver,
		wire.Bind(new(usecase.NetworkResolver), new(*config.NetworkResolver)),

		// Adapters
		adapters.AllAdapters,

		// Comparator
		verify.NewVerifier,

		// Use cases
		usecase.NewVerifySuites,
		usecase.NewEncodeParams,
		usecase.NewManageBlocks,
		usecase.NewManageConfig,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
