// Package cli implements the attrib command-line interface.
//
// The CLI composes a single contribution row read from a JSON file and prints
// the selected features. Defaults come from an optional TOML config file and
// can be overridden per invocation with flags. Logging goes to stderr through
// charmbracelet/log; --verbose enables debug output.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "attrib"

	// configFileName is the name of the config file inside the config directory.
	configFileName = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version, set via ldflags
	commit  = ""    // git commit SHA
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
}

// New creates a new CLI instance logging to w and printing results to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "attrib ranks feature contributions of a prediction",
		Long:         `attrib selects the most influential features of a single prediction from its contribution (SHAP) vector and prints them followed by the bias term.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
		},
	}

	root.SetVersionTemplate("attrib {{.Version}}\n")

	root.AddCommand(c.composeCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// versionCommand creates the "version" subcommand.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if commit == "" {
				_, err := io.WriteString(c.Out, "attrib "+version+"\n")
				return err
			}
			_, err := io.WriteString(c.Out, "attrib "+version+" ("+commit+")\n")
			return err
		},
	}
}

// =============================================================================
// Paths
// =============================================================================

// configPath returns the default config file using the XDG standard
// (~/.config/attrib/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFileName), nil
}
