package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/scilla-check/internal/domain"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
)

// ManageBlocks reads and advances the block number of an isolated server
type ManageBlocks struct {
	config *config.RuntimeConfig
	client BlockClient
	sink   ProgressSink
}

// NewManageBlocks creates a new ManageBlocks use case
func NewManageBlocks(cfg *config.RuntimeConfig, client BlockClient, sink ProgressSink) *ManageBlocks {
	return &ManageBlocks{
		config: cfg,
		client: client,
		sink:   sink,
	}
}

// Current returns the block number of the configured network
func (uc *ManageBlocks) Current(ctx context.Context) (*BlockNumberResult, error) {
	if uc.config.Network == nil {
		return nil, domain.ErrNoNetwork
	}

	bnum, err := uc.client.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	return &BlockNumberResult{Network: uc.config.Network.Name, Current: bnum}, nil
}

// Increase advances the block number by delta and returns the new value
func (uc *ManageBlocks) Increase(ctx context.Context, delta uint64) (*BlockNumberResult, error) {
	if uc.config.Network == nil {
		return nil, domain.ErrNoNetwork
	}
	if delta == 0 {
		return nil, fmt.Errorf("block count must be positive")
	}

	before, err := uc.client.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "increasing",
		Message: fmt.Sprintf("Advancing %s by %d blocks", uc.config.Network.Name, delta),
		Spinner: true,
	})

	if err := uc.client.IncreaseBlockNumber(ctx, delta); err != nil {
		return nil, err
	}

	after, err := uc.client.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Block number updated"})

	return &BlockNumberResult{
		Network:  uc.config.Network.Name,
		Previous: &before,
		Current:  after,
	}, nil
}
