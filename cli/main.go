package main

import (
	"fmt"
	"os"

	"github.com/trebuchet-org/scilla-check/internal/cli"
	"github.com/trebuchet-org/scilla-check/internal/cli/render"
	"github.com/trebuchet-org/scilla-check/internal/config"
)

// Set by -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		os.Exit(cli.ExitCode(err))
	}
}
