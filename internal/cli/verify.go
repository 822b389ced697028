package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/scilla-check/internal/cli/render"
	"github.com/trebuchet-org/scilla-check/internal/domain"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var (
		caseFilter string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "verify [suite.yaml...]",
		Short: "Check transaction receipts against expectation suites",
		Long: `Check transaction receipts against expectation suites.

Each case of a suite names a transaction (fetched from --network) or a saved
receipt file, and lists the events, reward events and outgoing messages the
transaction must have produced. Without arguments every suite below the
project's suites directory is run.

Addresses from the fixture file can be referenced as ${account.<name>} and
${contract.<name>}.`,
		Example: `  scilla-check verify tests/token.yaml -n isolated
  scilla-check verify --case "transfer" --wait -n testnet
  scilla-check verify --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.VerifySuites.Run(cmd.Context(), usecase.VerifySuitesParams{
				Paths:      args,
				CaseFilter: caseFilter,
			})
			if err != nil {
				return err
			}

			var renderer render.Renderer[*usecase.VerifyResult]
			if app.Config.JSON {
				renderer = render.NewJSONRenderer[*usecase.VerifyResult](cmd.OutOrStdout())
			} else {
				renderer = render.NewVerifyRenderer(cmd.OutOrStdout(), verbose || app.Config.Debug)
			}
			if err := renderer.Render(result); err != nil {
				return err
			}

			if result.Failed > 0 {
				return fmt.Errorf("%w: %d of %d cases failed", domain.ErrVerificationFailed, result.Failed, result.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&caseFilter, "case", "", "Only run cases whose name fuzzy-matches this pattern")
	cmd.Flags().Bool("wait", false, "Poll the node until receipts are available")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show passing checks")

	return cmd
}
