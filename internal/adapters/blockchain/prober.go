package blockchain

import (
	"context"
	"log/slog"
	"time"

	"github.com/trebuchet-org/scilla-check/internal/domain/config"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// DefaultProbeTimeout bounds a single network probe
const DefaultProbeTimeout = 5 * time.Second

// Prober checks networks by asking them for their block number
type Prober struct {
	timeout time.Duration
	log     *slog.Logger
}

// NewProber creates a new network prober
func NewProber(log *slog.Logger) *Prober {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Prober{timeout: DefaultProbeTimeout, log: log}
}

// Probe connects to network and returns its current block number
func (p *Prober) Probe(ctx context.Context, network *config.Network) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	node := NewNodeAdapter(&config.RuntimeConfig{Network: network}, p.log)
	defer node.Close()

	bnum, err := node.BlockNumber(ctx)
	if err != nil {
		p.log.Debug("network probe failed", "network", network.Name, "error", err)
		return 0, err
	}
	return bnum, nil
}

var _ usecase.NetworkProber = (*Prober)(nil)
