package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/scilla-check/internal/cli/render"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List networks from scilla-check.toml",
		Long: `List all networks configured in the [networks] section of scilla-check.toml.

Each network is asked for its current block number to show whether it is reachable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*usecase.ListNetworksResult](cmd.OutOrStdout()).Render(result)
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderNetworksList(result)
		},
	}

	return cmd
}
