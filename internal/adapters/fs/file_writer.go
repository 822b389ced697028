package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// ParamsWriterAdapter writes encoded parameter lists to disk
type ParamsWriterAdapter struct{}

// NewParamsWriterAdapter creates a new params writer adapter
func NewParamsWriterAdapter() *ParamsWriterAdapter {
	return &ParamsWriterAdapter{}
}

// WriteParams writes params as indented JSON, creating parent directories
func (f *ParamsWriterAdapter) WriteParams(ctx context.Context, path string, params []scilla.Param) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	data, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Ensure the adapter implements the interface
var _ usecase.ParamsWriter = (*ParamsWriterAdapter)(nil)
