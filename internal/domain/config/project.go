package config

// ProjectConfig represents scilla-check.toml
type ProjectConfig struct {
	// Fixture is the path (relative to the project root) of the fixture file
	// holding account and contract addresses.
	Fixture string `toml:"fixture,omitempty"`

	// Suites is the directory searched for suite files when none are given.
	Suites string `toml:"suites,omitempty"`

	Networks map[string]NetworkConfig `toml:"networks"`
}

// NetworkConfig represents a [networks.<name>] section
type NetworkConfig struct {
	RPCURL  string `toml:"rpc_url"`
	ChainID uint64 `toml:"chain_id,omitempty"`
}

// DefaultProjectConfig returns the configuration used when no file exists
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Suites:   "tests",
		Networks: map[string]NetworkConfig{},
	}
}
