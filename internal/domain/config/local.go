package config

import "strings"

// LocalConfig represents .scilla-check/config.local.json. Its values are
// defaults for the flags of the same name.
type LocalConfig struct {
	Network string `json:"network,omitempty"`
	Fixture string `json:"fixture,omitempty"`
}

// DefaultLocalConfig returns an empty local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ConfigKey is a key of the local configuration
type ConfigKey string

const (
	ConfigKeyNetwork ConfigKey = "network"
	ConfigKeyFixture ConfigKey = "fixture"
)

// ValidConfigKeys returns the keys that can be set
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{ConfigKeyNetwork, ConfigKeyFixture}
}

// ParseConfigKey normalizes key and reports whether it is valid
func ParseConfigKey(key string) (ConfigKey, bool) {
	normalized := ConfigKey(strings.ToLower(strings.TrimSpace(key)))
	for _, k := range ValidConfigKeys() {
		if k == normalized {
			return k, true
		}
	}
	return "", false
}

// Get returns the value stored under key
func (c *LocalConfig) Get(key ConfigKey) string {
	switch key {
	case ConfigKeyNetwork:
		return c.Network
	case ConfigKeyFixture:
		return c.Fixture
	}
	return ""
}

// Set stores value under key
func (c *LocalConfig) Set(key ConfigKey, value string) {
	switch key {
	case ConfigKeyNetwork:
		c.Network = value
	case ConfigKeyFixture:
		c.Fixture = value
	}
}
