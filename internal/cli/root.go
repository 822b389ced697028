package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/scilla-check/internal/app"
	"github.com/trebuchet-org/scilla-check/internal/config"
	"github.com/trebuchet-org/scilla-check/internal/domain"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// commands that run without a project or an app instance
var standaloneCommands = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
	"errmsg":     true,
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scilla-check",
		Short: "Check Scilla contract receipts against expectations",
		Long: `scilla-check verifies the events, messages and exceptions recorded in
Zilliqa transaction receipts against expectation suites written in YAML.

It also encodes typed argument files into the parameter lists accepted by the
node and controls the block number of an isolated server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if standaloneCommands[cmd.Name()] {
				return nil
			}

			// Find project root
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Set up viper with every flag the user set
			v := config.SetupViper(projectRoot, cmd.Flags())

			// A stale network in the local config must not block editing it
			if isConfigCmd(cmd) && !cmd.Flags().Changed("network") {
				v.Set("network", "")
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			cancel := func() {}
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			releaseAfterRun(cmd, func() {
				cancel()
				appInstance.Close()
			})

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable spinners and prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network from scilla-check.toml to query (e.g. isolated, testnet)")
	rootCmd.PersistentFlags().String("fixture", "", "Fixture file with account and contract addresses")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	verifyCmd := NewVerifyCmd()
	verifyCmd.GroupID = "main"
	rootCmd.AddCommand(verifyCmd)

	encodeCmd := NewEncodeCmd()
	encodeCmd.GroupID = "main"
	rootCmd.AddCommand(encodeCmd)

	// Management commands
	bnumCmd := NewBnumCmd()
	bnumCmd.GroupID = "management"
	rootCmd.AddCommand(bnumCmd)

	errmsgCmd := NewErrmsgCmd()
	errmsgCmd.GroupID = "management"
	rootCmd.AddCommand(errmsgCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// releaseAfterRun runs release once the command returns, including when it
// fails. PostRun hooks are skipped on errors.
func releaseAfterRun(cmd *cobra.Command, release func()) {
	run := cmd.RunE
	if run == nil {
		cmd.PostRun = func(*cobra.Command, []string) { release() }
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer release()
		return run(cmd, args)
	}
}

func isConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// ExitCode maps command errors to process exit codes
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrVerificationFailed):
		return 1
	default:
		return 2
	}
}
