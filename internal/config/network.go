package config

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/trebuchet-org/scilla-check/internal/domain"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
)

// NetworkResolver resolves network names against the [networks] table
type NetworkResolver struct {
	project *config.ProjectConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	if project == nil {
		project = config.DefaultProjectConfig()
	}
	return &NetworkResolver{project: project}
}

// Resolve resolves a network name to its configuration
func (r *NetworkResolver) Resolve(name string) (*config.Network, error) {
	network, ok := r.project.Networks[name]
	if !ok {
		return nil, domain.UnknownNetworkErr{Name: name, Available: r.Names()}
	}

	if network.RPCURL == "" {
		return nil, fmt.Errorf("network '%s' has no rpc_url (is the variable it references set?)", name)
	}

	return &config.Network{
		Name:    name,
		RPCURL:  network.RPCURL,
		ChainID: network.ChainID,
	}, nil
}

// Names returns the configured network names
func (r *NetworkResolver) Names() []string {
	return lo.Keys(r.project.Networks)
}

// ProvideNetworkResolver creates the resolver for the loaded project file
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return NewNetworkResolver(cfg.ProjectConfig)
}
