package app

import (
	"log/slog"

	"github.com/trebuchet-org/scilla-check/internal/adapters/blockchain"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	VerifySuites *usecase.VerifySuites
	EncodeParams *usecase.EncodeParams
	ManageBlocks *usecase.ManageBlocks
	ManageConfig *usecase.ManageConfig
	ListNetworks *usecase.ListNetworks

	// Adapters (needed to release the node connection)
	Node *blockchain.NodeAdapter
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	verifySuites *usecase.VerifySuites,
	encodeParams *usecase.EncodeParams,
	manageBlocks *usecase.ManageBlocks,
	manageConfig *usecase.ManageConfig,
	listNetworks *usecase.ListNetworks,
	node *blockchain.NodeAdapter,
) (*App, error) {
	return &App{
		Config:       cfg,
		Log:          log,
		VerifySuites: verifySuites,
		EncodeParams: encodeParams,
		ManageBlocks: manageBlocks,
		ManageConfig: manageConfig,
		ListNetworks: listNetworks,
		Node:         node,
	}, nil
}

// Close releases resources held by the adapters
func (a *App) Close() {
	if a.Node != nil {
		a.Node.Close()
	}
}
