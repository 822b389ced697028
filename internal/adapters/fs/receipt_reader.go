package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/trebuchet-org/scilla-check/internal/domain/models"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// ReceiptReaderAdapter reads receipts saved as JSON
type ReceiptReaderAdapter struct{}

// NewReceiptReaderAdapter creates a new ReceiptReaderAdapter
func NewReceiptReaderAdapter() *ReceiptReaderAdapter {
	return &ReceiptReaderAdapter{}
}

// ReadReceipt accepts a bare receipt, a GetTransaction result, or a full
// JSON-RPC response wrapping one.
func (a *ReceiptReaderAdapter) ReadReceipt(ctx context.Context, path string) (*models.Receipt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt file: %w", err)
	}

	receipt, err := decodeReceipt(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt %s: %w", path, err)
	}
	return receipt, nil
}

func decodeReceipt(data []byte) (*models.Receipt, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	if result, ok := fields["result"]; ok {
		return decodeReceipt(result)
	}

	if raw, ok := fields["receipt"]; ok {
		data = raw
	}

	var receipt models.Receipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

var _ usecase.ReceiptReader = (*ReceiptReaderAdapter)(nil)
