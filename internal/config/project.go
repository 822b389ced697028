package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// loadProjectConfig loads scilla-check.toml from projectRoot. A missing file
// yields the default configuration and an empty source.
func loadProjectConfig(projectRoot string) (*config.ProjectConfig, string, error) {
	loadEnvFiles(projectRoot)

	path := filepath.Join(projectRoot, ProjectFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultProjectConfig(), "", nil
	}

	cfg, err := LoadRawProjectConfig(path)
	if err != nil {
		return nil, "", err
	}

	cfg.Fixture = os.ExpandEnv(cfg.Fixture)
	cfg.Suites = os.ExpandEnv(cfg.Suites)
	for name, network := range cfg.Networks {
		if envVar, ok := DetectEnvVar(network.RPCURL); ok {
			if _, set := os.LookupEnv(envVar); !set {
				slog.Default().Warn("rpc_url references an unset variable", "network", name, "variable", envVar)
			}
		}
		network.RPCURL = os.ExpandEnv(network.RPCURL)
		cfg.Networks[name] = network
	}

	return cfg, path, nil
}

// LoadRawProjectConfig decodes a project file without env var expansion.
func LoadRawProjectConfig(path string) (*config.ProjectConfig, error) {
	cfg := config.DefaultProjectConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if cfg.Networks == nil {
		cfg.Networks = map[string]config.NetworkConfig{}
	}
	return cfg, nil
}

// loadEnvFiles loads .env files for variable expansion. Variables already set
// in the environment win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				slog.Default().Warn("failed to load env file", "path", envFile, "error", err)
			}
		}
	}
}
