package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/scilla-check/internal/app"
	"github.com/trebuchet-org/scilla-check/internal/cli/render"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// NewBnumCmd creates the bnum command
func NewBnumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bnum",
		Short: "Show the block number of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ManageBlocks.Current(cmd.Context())
			if err != nil {
				return err
			}
			return renderBlocks(cmd, app, result)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "increase <count>",
		Short: "Advance the block number of an isolated server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid block count %q: %w", args[0], err)
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ManageBlocks.Increase(cmd.Context(), count)
			if err != nil {
				return err
			}
			return renderBlocks(cmd, app, result)
		},
	})

	return cmd
}

func renderBlocks(cmd *cobra.Command, app *app.App, result *usecase.BlockNumberResult) error {
	if app.Config.JSON {
		return render.NewJSONRenderer[*usecase.BlockNumberResult](cmd.OutOrStdout()).Render(result)
	}
	return render.NewBlocksRenderer(cmd.OutOrStdout()).Render(result)
}
