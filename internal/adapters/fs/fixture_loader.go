package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/scilla-check/internal/domain/models"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// FixtureLoaderAdapter reads fixture files (TOML, or JSON by extension)
type FixtureLoaderAdapter struct{}

// NewFixtureLoaderAdapter creates a new FixtureLoaderAdapter
func NewFixtureLoaderAdapter() *FixtureLoaderAdapter {
	return &FixtureLoaderAdapter{}
}

// LoadFixture reads the fixture at path
func (a *FixtureLoaderAdapter) LoadFixture(ctx context.Context, path string) (*models.Fixture, error) {
	var fixture models.Fixture

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture: %w", err)
		}
		if err := json.Unmarshal(data, &fixture); err != nil {
			return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
		}
	} else if _, err := toml.DecodeFile(path, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}

	if fixture.Accounts == nil {
		fixture.Accounts = map[string]string{}
	}
	if fixture.Contracts == nil {
		fixture.Contracts = map[string]string{}
	}
	return &fixture, nil
}

var _ usecase.FixtureLoader = (*FixtureLoaderAdapter)(nil)
