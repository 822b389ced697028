package usecase

import (
	"context"
	"sort"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus `json:"networks"`
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl,omitempty"`
	ChainID     uint64 `json:"chainId,omitempty"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ListNetworks is a use case for listing the configured networks
type ListNetworks struct {
	resolver NetworkResolver
	prober   NetworkProber
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, prober NetworkProber) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		prober:   prober,
	}
}

// Run resolves every network and asks it for its block number
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	names := uc.resolver.Names()
	sort.Strings(names)

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{Name: name}

		network, err := uc.resolver.Resolve(name)
		if err != nil {
			status.Error = err.Error()
			networks = append(networks, status)
			continue
		}
		status.RPCURL = network.RPCURL
		status.ChainID = network.ChainID

		bnum, err := uc.prober.Probe(ctx, network)
		if err != nil {
			status.Error = err.Error()
		} else {
			status.BlockNumber = bnum
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{Networks: networks}, nil
}
