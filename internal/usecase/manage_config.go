package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Local        *config.LocalConfig `json:"local"`
	LocalPath    string              `json:"localPath"`
	LocalExists  bool                `json:"localExists"`
	ProjectRoot  string              `json:"projectRoot"`
	ConfigSource string              `json:"configSource,omitempty"`
	FixturePath  string              `json:"fixturePath,omitempty"`
	Network      *config.Network     `json:"network,omitempty"`
}

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// ConfigChangeResult contains the result of setting or removing a value
type ConfigChangeResult struct {
	Key        config.ConfigKey `json:"key"`
	Value      string           `json:"value,omitempty"`
	Removed    bool             `json:"removed,omitempty"`
	ConfigPath string           `json:"configPath"`
}

// ManageConfig shows and edits the local configuration
type ManageConfig struct {
	config   *config.RuntimeConfig
	store    LocalConfigStore
	networks NetworkResolver
}

// NewManageConfig creates a new ManageConfig use case
func NewManageConfig(cfg *config.RuntimeConfig, store LocalConfigStore, networks NetworkResolver) *ManageConfig {
	return &ManageConfig{
		config:   cfg,
		store:    store,
		networks: networks,
	}
}

// Show returns the local configuration and the resolved runtime settings
func (uc *ManageConfig) Show(ctx context.Context) (*ShowConfigResult, error) {
	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Local:        local,
		LocalPath:    uc.store.GetPath(),
		LocalExists:  uc.store.Exists(),
		ProjectRoot:  uc.config.ProjectRoot,
		ConfigSource: uc.config.ConfigSource,
		FixturePath:  uc.config.FixturePath,
		Network:      uc.config.Network,
	}, nil
}

// Set stores a value in the local configuration
func (uc *ManageConfig) Set(ctx context.Context, params SetConfigParams) (*ConfigChangeResult, error) {
	key, err := parseKey(params.Key)
	if err != nil {
		return nil, err
	}

	if key == config.ConfigKeyNetwork {
		if _, err := uc.networks.Resolve(params.Value); err != nil {
			return nil, err
		}
	}

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	local.Set(key, params.Value)

	if err := uc.store.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	// the store may normalize the value, report what was written
	return &ConfigChangeResult{Key: key, Value: local.Get(key), ConfigPath: uc.store.GetPath()}, nil
}

// Remove clears a value of the local configuration
func (uc *ManageConfig) Remove(ctx context.Context, rawKey string) (*ConfigChangeResult, error) {
	key, err := parseKey(rawKey)
	if err != nil {
		return nil, err
	}

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	previous := local.Get(key)
	local.Set(key, "")

	if err := uc.store.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &ConfigChangeResult{Key: key, Value: previous, Removed: true, ConfigPath: uc.store.GetPath()}, nil
}

func parseKey(raw string) (config.ConfigKey, error) {
	key, ok := config.ParseConfigKey(raw)
	if !ok {
		keys := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string { return string(k) })
		return "", fmt.Errorf("unknown config key: %s\nAvailable keys: %s", raw, strings.Join(keys, ", "))
	}
	return key, nil
}
