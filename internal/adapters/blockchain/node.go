package blockchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/scilla-check/internal/domain"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
	"github.com/trebuchet-org/scilla-check/internal/domain/models"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// DefaultPollInterval is the delay between receipt lookups when waiting
const DefaultPollInterval = time.Second

// Zilliqa answers lookups of unknown transactions with this code
const codeTxnNotPresent = -20

// NodeAdapter talks to a Zilliqa node (or isolated server) over JSON-RPC
type NodeAdapter struct {
	network      *config.Network
	wait         bool
	pollInterval time.Duration
	log          *slog.Logger

	mu     sync.Mutex
	client *rpc.Client
}

// NewNodeAdapter creates a node adapter for the configured network. The
// connection is opened on first use.
func NewNodeAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *NodeAdapter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &NodeAdapter{
		network:      cfg.Network,
		wait:         cfg.Wait,
		pollInterval: DefaultPollInterval,
		log:          log,
	}
}

// connect establishes the connection to the node
func (n *NodeAdapter) connect(ctx context.Context) (*rpc.Client, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.client != nil {
		return n.client, nil
	}
	if n.network == nil {
		return nil, domain.ErrNoNetwork
	}

	client, err := rpc.DialContext(ctx, n.network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	n.client = client
	return client, nil
}

// Close closes the connection if one was opened
func (n *NodeAdapter) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.client != nil {
		n.client.Close()
		n.client = nil
	}
}

// GetReceipt fetches the receipt of a transaction. When waiting is enabled
// the node is polled until the receipt appears or ctx is done.
func (n *NodeAdapter) GetReceipt(ctx context.Context, txID string) (*models.Receipt, error) {
	client, err := n.connect(ctx)
	if err != nil {
		return nil, err
	}

	id := strings.TrimPrefix(strings.ToLower(txID), "0x")
	for {
		receipt, err := n.fetchReceipt(ctx, client, id)
		if err == nil {
			return receipt, nil
		}
		if !n.wait || !errors.Is(err, domain.ErrReceiptNotFound) {
			return nil, err
		}

		n.log.Debug("receipt not available yet", "tx", id, "retry_in", n.pollInterval)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for receipt of %s: %w", id, ctx.Err())
		case <-time.After(n.pollInterval):
		}
	}
}

func (n *NodeAdapter) fetchReceipt(ctx context.Context, client *rpc.Client, id string) (*models.Receipt, error) {
	var tx models.Transaction
	if err := client.CallContext(ctx, &tx, "GetTransaction", id); err != nil {
		if isNotPresent(err) {
			return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrReceiptNotFound)
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}
	if tx.Receipt == nil {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrReceiptNotFound)
	}
	return tx.Receipt, nil
}

// BlockNumber returns the current block number of the node
func (n *NodeAdapter) BlockNumber(ctx context.Context) (uint64, error) {
	client, err := n.connect(ctx)
	if err != nil {
		return 0, err
	}

	var raw json.RawMessage
	if err := client.CallContext(ctx, &raw, "GetBlocknum", ""); err != nil {
		return 0, fmt.Errorf("failed to get block number: %w", err)
	}
	return parseBlockNumber(raw)
}

// IncreaseBlockNumber advances the block number of an isolated server by delta
func (n *NodeAdapter) IncreaseBlockNumber(ctx context.Context, delta uint64) error {
	client, err := n.connect(ctx)
	if err != nil {
		return err
	}

	if err := client.CallContext(ctx, nil, "IncreaseBlocknum", delta); err != nil {
		return fmt.Errorf("failed to increase block number by %d: %w", delta, err)
	}
	return nil
}

// parseBlockNumber accepts the number either as a JSON string or a JSON number
func parseBlockNumber(raw json.RawMessage) (uint64, error) {
	text := strings.TrimSpace(string(raw))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	bnum, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected block number %s: %w", string(raw), err)
	}
	return bnum, nil
}

func isNotPresent(err error) bool {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == codeTxnNotPresent {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not present")
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.ReceiptSource = (*NodeAdapter)(nil)
	_ usecase.BlockClient   = (*NodeAdapter)(nil)
)
