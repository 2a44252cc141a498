// Package cli implements the daireno command-line interface.
package cli

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/daireno/pkg/buildinfo"
	"github.com/matzehuels/daireno/pkg/config"
	"github.com/matzehuels/daireno/pkg/editor"
	"github.com/matzehuels/daireno/pkg/observability"
	"github.com/matzehuels/daireno/pkg/render/diagram"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and default file names.
const appName = "daireno"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger and built-in config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Daireno numbers the apartments of a building section",
		Long: `Daireno draws a building section (normal floors, ground floor and basements)
as a grid of numbered apartments. Apartment counts per floor and individual
apartment labels can be edited from the terminal, a browser, or flags.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			c.registerHooks()
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/daireno/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("config loaded", "path", c.configPath, "width", cfg.Diagram.Width)
	return nil
}

// registerHooks routes library events to the CLI logger at debug level.
func (c *CLI) registerHooks() {
	hooks := observability.NewLogHooks(c.Logger)
	observability.SetEditorHooks(hooks)
	observability.SetRenderHooks(hooks)
	observability.SetSessionHooks(hooks)
}

// =============================================================================
// Shared Flags
// =============================================================================

// setupFlags holds the raw setup values shared by render and edit. They stay
// strings so that invalid input falls back to defaults instead of failing.
type setupFlags struct {
	floors     string
	basements  string
	apartments string
	width      float64
}

func (f *setupFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.floors, "floors", "", "number of normal floors including the ground floor (>= 1)")
	cmd.Flags().StringVar(&f.basements, "basements", "", "number of basement floors (>= 0)")
	cmd.Flags().StringVar(&f.apartments, "apartments", "", "default apartments per floor (>= 1)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "drawing width (default from config, 450)")
}

// setup resolves the flags against the config defaults. Unset flags take the
// configured value; set but invalid flags fall back per field.
func (f *setupFlags) setup(cfg config.Config) editor.Setup {
	pick := func(flag string, def int) string {
		if flag == "" {
			return strconv.Itoa(def)
		}
		return flag
	}
	return editor.ParseSetup(
		pick(f.floors, cfg.Defaults.NormalFloors),
		pick(f.basements, cfg.Defaults.Basements),
		pick(f.apartments, cfg.Defaults.Apartments),
	)
}

// newEditor builds an editor configured from flags and config.
func (c *CLI) newEditor(f *setupFlags) *editor.Editor {
	width := c.cfg.Diagram.Width
	if f.width > 0 {
		width = f.width
	}
	return editor.New(
		editor.WithWidth(width),
		editor.WithFloorHeight(c.cfg.Diagram.FloorHeight),
		editor.WithDiagramOptions(diagram.WithShadow(c.cfg.Diagram.Shadow)),
	)
}
