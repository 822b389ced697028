package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/trebuchet-org/scilla-check/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

func orNotSet(value string) string {
	if value == "" {
		return color.New(color.Faint).Sprint("(not set)")
	}
	return value
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	fmt.Fprintln(r.out, "📋 Local config:")
	fmt.Fprintf(r.out, "Network:   %s\n", orNotSet(result.Local.Network))
	fmt.Fprintf(r.out, "Fixture:   %s\n", orNotSet(result.Local.Fixture))

	if !result.LocalExists {
		fmt.Fprintf(r.out, "\n%s\n", FormatWarning(fmt.Sprintf("No %s file found, defaults come from flags and scilla-check.toml", getRelativePath(result.LocalPath))))
	} else {
		fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.LocalPath))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "🔧 Resolved:")
	fmt.Fprintf(r.out, "Project:   %s\n", result.ProjectRoot)
	if result.ConfigSource != "" {
		fmt.Fprintf(r.out, "Source:    %s\n", result.ConfigSource)
	} else {
		fmt.Fprintf(r.out, "Source:    %s\n", orNotSet(""))
	}
	if result.Network != nil {
		fmt.Fprintf(r.out, "Network:   %s (%s)\n", result.Network.Name, result.Network.RPCURL)
	} else {
		fmt.Fprintf(r.out, "Network:   %s\n", orNotSet(""))
	}
	fmt.Fprintf(r.out, "Fixture:   %s\n", orNotSet(result.FixturePath))

	return nil
}

// RenderChange renders the result of setting or removing a configuration value
func (r *ConfigRenderer) RenderChange(result *usecase.ConfigChangeResult) error {
	if result.Removed {
		fmt.Fprintf(r.out, "✅ Removed %s from config\n", result.Key)
	} else {
		fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	}
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
