package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/scilla-check/internal/cli/render"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage local config",
		Long: `Manage local config stored in .scilla-check/config.local.json

The config defines default values for the --network and --fixture
flags that are used when these flags are not explicitly provided.

Available subcommands:
  config           Show current config
  config set       Set a config value
  config remove    Remove a config value

When run without subcommands, displays the current config.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	}

	cmd.AddCommand(NewConfigSetCmd())
	cmd.AddCommand(NewConfigRemoveCmd())

	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: `Set a config value in .scilla-check/config.local.json.
Available keys: network, fixture

Examples:
  scilla-check config set network isolated
  scilla-check config set fixture fixtures/isolated.toml`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			value := args[1]
			// fixture paths are typed relative to the working directory
			if key, ok := config.ParseConfigKey(args[0]); ok && key == config.ConfigKeyFixture && !filepath.IsAbs(value) {
				if abs, err := filepath.Abs(value); err == nil {
					value = abs
				}
			}

			result, err := app.ManageConfig.Set(cmd.Context(), usecase.SetConfigParams{
				Key:   args[0],
				Value: value,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*usecase.ConfigChangeResult](cmd.OutOrStdout()).Render(result)
			}
			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderChange(result)
		},
	}
}

// NewConfigRemoveCmd creates the config remove subcommand
func NewConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a config value",
		Long: `Remove a config value from .scilla-check/config.local.json.

Examples:
  scilla-check config remove network
  scilla-check config remove fixture`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ManageConfig.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*usecase.ConfigChangeResult](cmd.OutOrStdout()).Render(result)
			}
			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderChange(result)
		},
	}
}

// showConfig displays the current configuration
func showConfig(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ManageConfig.Show(cmd.Context())
	if err != nil {
		return err
	}

	if app.Config.JSON {
		return render.NewJSONRenderer[*usecase.ShowConfigResult](cmd.OutOrStdout()).Render(result)
	}
	return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
}
