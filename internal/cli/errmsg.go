package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/scilla-check/internal/domain/scilla"
)

// NewErrmsgCmd creates the errmsg command
func NewErrmsgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errmsg <code>",
		Short: "Print the exception message raised for an error code",
		Long: `Print the exception message a contract raises when it throws the standard
error object with the given code, as it appears in receipt exceptions.`,
		Example: "  scilla-check errmsg -2",
		// codes are usually negative and must not be parsed as flags
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			if len(args) != 1 {
				return fmt.Errorf("accepts 1 arg, received %d", len(args))
			}

			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid error code %q: %w", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), scilla.ExceptionMessage(code))
			return nil
		},
	}
}
