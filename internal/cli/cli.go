// Package cli implements the teeforge command-line interface.
//
// The headless commands render scripted layouts, list the style catalog and
// assemble order payloads. The GUI binary adds its own "gui" command through
// RootCommand so this package never imports Fyne.
//
// All commands support --verbose (-v) for debug-level logging and --config
// (-c) to point at a teeforge.toml other than the one in the working
// directory.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"teeforge/internal/applog"
	"teeforge/internal/config"
)

const appName = "teeforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a CLI logging to w at level. Config is loaded before each
// command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: applog.New(w, level),
		Config: config.Default(),
	}
}

// RootCommand creates the root cobra command with the headless subcommands
// and any extra ones the binary provides.
func (c *CLI) RootCommand(extra ...*cobra.Command) *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Teeforge previews and orders custom T-shirts",
		Long:         `Teeforge places a design image and up to three lines of text on a T-shirt preview, lets you move, scale and rotate them, and assembles the order.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.stylesCommand())
	root.AddCommand(c.submitCommand())
	for _, cmd := range extra {
		root.AddCommand(cmd)
	}

	return root
}

// setup loads the config, applies the log level and attaches the logger to
// the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.Logger.SetLevel(level)

	cmd.SetContext(applog.WithLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("config loaded", "path", c.configPath, "theme", cfg.Theme, "canvas", fmt.Sprintf("%gx%g", cfg.Canvas.Width, cfg.Canvas.Height))
	return nil
}
