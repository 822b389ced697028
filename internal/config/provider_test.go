package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/scilla-check/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

const projectTOML = `
fixture = "fixture.toml"

[networks.isolated]
rpc_url = "${SCILLA_CHECK_TEST_RPC}"
chain_id = 222

[networks.testnet]
rpc_url = "https://dev-api.zilliqa.com"
chain_id = 333
`

func TestFindProjectRoot(t *testing.T) {
	t.Run("walks up to the project file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ProjectFile, "")
		nested := filepath.Join(root, "tests", "token")
		require.NoError(t, os.MkdirAll(nested, 0755))

		assert.Equal(t, root, findProjectRootFrom(nested))
	})

	t.Run("falls back to the start directory", func(t *testing.T) {
		dir := t.TempDir()
		assert.Equal(t, dir, findProjectRootFrom(dir))
	})
}

func TestProvider(t *testing.T) {
	t.Run("defaults without a project file", func(t *testing.T) {
		root := t.TempDir()
		v := SetupViper(root, nil)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(root, DataDirName), cfg.DataDir)
		assert.Equal(t, 2*time.Minute, cfg.Timeout)
		assert.Nil(t, cfg.Network)
		assert.Empty(t, cfg.ConfigSource)
		assert.Empty(t, cfg.FixturePath)
		assert.False(t, cfg.Debug)
		assert.False(t, cfg.JSON)
	})

	t.Run("resolves network and fixture", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ProjectFile, projectTOML)
		writeFile(t, root, ".env", "SCILLA_CHECK_TEST_RPC=http://localhost:5555\n")
		t.Cleanup(func() { os.Unsetenv("SCILLA_CHECK_TEST_RPC") })

		v := SetupViper(root, nil)
		v.Set("network", "isolated")

		cfg, err := Provider(v)
		require.NoError(t, err)

		require.NotNil(t, cfg.Network)
		assert.Equal(t, "isolated", cfg.Network.Name)
		assert.Equal(t, "http://localhost:5555", cfg.Network.RPCURL)
		assert.Equal(t, uint64(222), cfg.Network.ChainID)
		assert.Equal(t, filepath.Join(root, "fixture.toml"), cfg.FixturePath)
		assert.Equal(t, filepath.Join(root, ProjectFile), cfg.ConfigSource)
	})

	t.Run("unknown network lists the configured ones", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ProjectFile, projectTOML)

		v := SetupViper(root, nil)
		v.Set("network", "mainnet")

		_, err := Provider(v)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Contains(t, err.Error(), "isolated, testnet")
	})

	t.Run("invalid project file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ProjectFile, "fixture = [")

		_, err := Provider(SetupViper(root, nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ProjectFile)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ProjectFile, projectTOML)

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.Bool("debug", false, "")
		flags.Bool("json", false, "")
		flags.Bool("non-interactive", false, "")
		flags.String("fixture", "", "")
		flags.StringP("network", "n", "", "")
		require.NoError(t, flags.Parse([]string{"--debug", "--json", "--non-interactive", "-n", "testnet", "--fixture", "/tmp/other.toml"}))

		cfg, err := Provider(SetupViper(root, flags))
		require.NoError(t, err)

		assert.True(t, cfg.Debug)
		assert.True(t, cfg.JSON)
		assert.True(t, cfg.NonInteractive)
		assert.Equal(t, "testnet", cfg.Network.Name)
		assert.Equal(t, "/tmp/other.toml", cfg.FixturePath)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv("SCILLA_CHECK_TIMEOUT", "30s")

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("local config file", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, filepath.Join(DataDirName, "config.local.json"), `{"timeout": "10s"}`)

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})
}

func TestNetworkResolver(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ProjectFile, projectTOML)
	t.Setenv("SCILLA_CHECK_TEST_RPC", "")

	project, _, err := loadProjectConfig(root)
	require.NoError(t, err)

	r := NewNetworkResolver(project)
	assert.ElementsMatch(t, []string{"isolated", "testnet"}, r.Names())

	_, err = r.Resolve("isolated")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rpc_url")

	network, err := r.Resolve("testnet")
	require.NoError(t, err)
	assert.Equal(t, "https://dev-api.zilliqa.com", network.RPCURL)

	_, err = NewNetworkResolver(nil).Resolve("testnet")
	var unknown domain.UnknownNetworkErr
	require.True(t, errors.As(err, &unknown))
	assert.Empty(t, unknown.Available)
}

func TestDetectEnvVar(t *testing.T) {
	tests := []struct {
		raw  string
		name string
		ok   bool
	}{
		{"${ISOLATED_RPC_URL}", "ISOLATED_RPC_URL", true},
		{"http://${HOST}:5555", "", false},
		{"http://localhost:5555", "", false},
		{"${1BAD}", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, ok := DetectEnvVar(tt.raw)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
