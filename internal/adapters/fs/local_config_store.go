package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// LocalConfigFile is the name of the local config inside the data directory
const LocalConfigFile = "config.local.json"

// LocalConfigStoreAdapter keeps the local flag defaults in .scilla-check/config.local.json
type LocalConfigStoreAdapter struct {
	projectRoot string
	configPath  string
}

// NewLocalConfigStoreAdapter creates a new LocalConfigStoreAdapter
func NewLocalConfigStoreAdapter(cfg *config.RuntimeConfig) *LocalConfigStoreAdapter {
	return &LocalConfigStoreAdapter{
		projectRoot: cfg.ProjectRoot,
		configPath:  filepath.Join(cfg.DataDir, LocalConfigFile),
	}
}

// Exists checks if the config file exists
func (s *LocalConfigStoreAdapter) Exists() bool {
	_, err := os.Stat(s.configPath)
	return !os.IsNotExist(err)
}

// Load reads the local config. A missing file yields the empty config and
// keys other than network and fixture are rejected.
func (s *LocalConfigStoreAdapter) Load(ctx context.Context) (*config.LocalConfig, error) {
	if !s.Exists() {
		return config.DefaultLocalConfig(), nil
	}

	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	localConfig := config.DefaultLocalConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return localConfig, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(localConfig); err != nil {
		keys := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string { return string(k) })
		return nil, fmt.Errorf("failed to parse %s (valid keys: %s): %w", s.configPath, strings.Join(keys, ", "), err)
	}

	return localConfig, nil
}

// Save writes the local config. The fixture is stored relative to the
// project root, which is where it is resolved from.
func (s *LocalConfigStoreAdapter) Save(ctx context.Context, cfg *config.LocalConfig) error {
	stored := *cfg
	stored.Fixture = s.projectRelative(cfg.Fixture)

	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(&stored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.configPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cfg.Fixture = stored.Fixture
	return nil
}

// projectRelative rewrites absolute paths inside the project as relative ones
func (s *LocalConfigStoreAdapter) projectRelative(path string) string {
	if path == "" || strings.Contains(path, "${") {
		return path
	}
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(filepath.Clean(path))
	}
	rel, err := filepath.Rel(s.projectRoot, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}

// GetPath returns the path to the config file
func (s *LocalConfigStoreAdapter) GetPath() string {
	return s.configPath
}

var _ usecase.LocalConfigStore = (*LocalConfigStoreAdapter)(nil)
