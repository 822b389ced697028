package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/scilla-check/internal/domain/config"
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
)

// EncodeParams turns a typed argument file into the parameter list accepted
// by the node for deployments and transition calls
type EncodeParams struct {
	config   *config.RuntimeConfig
	args     ArgsLoader
	fixtures FixtureLoader
	writer   ParamsWriter
}

// NewEncodeParams creates a new EncodeParams use case
func NewEncodeParams(cfg *config.RuntimeConfig, args ArgsLoader, fixtures FixtureLoader, writer ParamsWriter) *EncodeParams {
	return &EncodeParams{
		config:   cfg,
		args:     args,
		fixtures: fixtures,
		writer:   writer,
	}
}

// EncodeParamsOptions controls where the encoded list goes
type EncodeParamsOptions struct {
	Path   string
	Output string
}

// Run encodes the arguments in Path, writing them to Output when set
func (uc *EncodeParams) Run(ctx context.Context, opts EncodeParamsOptions) (*EncodeResult, error) {
	path := opts.Path
	args, err := uc.args.LoadArgs(ctx, path)
	if err != nil {
		return nil, err
	}

	if uc.config.FixturePath != "" {
		fixture, err := uc.fixtures.LoadFixture(ctx, uc.config.FixturePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load fixture: %w", err)
		}
		args = fixture.ExpandArgs(args)
	}

	result := &EncodeResult{
		Path:   path,
		Params: scilla.BuildParams(args),
	}

	if opts.Output != "" {
		if err := uc.writer.WriteParams(ctx, opts.Output, result.Params); err != nil {
			return nil, err
		}
		result.Output = opts.Output
	}

	return result, nil
}
