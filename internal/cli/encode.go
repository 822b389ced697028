package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/scilla-check/internal/cli/render"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// NewEncodeCmd creates the encode command
func NewEncodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode <args.yaml>",
		Short: "Encode a typed argument file into node parameters",
		Long: `Encode a typed argument file into the parameter list the node accepts
for contract deployments (init.json) and transition calls.

Arguments are written as "name: [type, value]":

  contract_owner: [ByStr20, "${account.owner}"]
  init_supply: [Uint128, 1000000]
  minters: ["List (ByStr20)", ["0x...", "0x..."]]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.EncodeParams.Run(cmd.Context(), usecase.EncodeParamsOptions{
				Path:   args[0],
				Output: output,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*usecase.EncodeResult](cmd.OutOrStdout()).Render(result)
			}
			return render.NewEncodeRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Write the parameter list to a file instead of stdout")

	return cmd
}
