package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
	"gopkg.in/yaml.v3"
)

// ArgsLoaderAdapter reads typed argument files
type ArgsLoaderAdapter struct{}

// NewArgsLoaderAdapter creates a new ArgsLoaderAdapter
func NewArgsLoaderAdapter() *ArgsLoaderAdapter {
	return &ArgsLoaderAdapter{}
}

// LoadArgs reads the arguments in path. JSON files in the node's own
// parameter format are accepted as well, since JSON is valid YAML.
func (a *ArgsLoaderAdapter) LoadArgs(ctx context.Context, path string) (scilla.Args, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arguments file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return scilla.Args{}, nil
	}

	args, err := parseArgs(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return args, nil
}

var _ usecase.ArgsLoader = (*ArgsLoaderAdapter)(nil)
