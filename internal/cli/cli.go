// Package cli implements the periodic command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/periodic/pkg/buildinfo"
	"github.com/matzehuels/periodic/pkg/cache"
	"github.com/matzehuels/periodic/pkg/config"
	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "periodic"

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

	// Out receives command output. Logs go to the logger's writer.
	Out io.Writer

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger writing to w.
// Command output goes to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
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
		Use:          appName,
		Short:        "Periodic renders the periodic table of elements",
		Long:         `Periodic classifies the chemical elements into the main table and the lanthanide and actinide strips, and renders them as terminal grids, SVG, HTML, PNG, PDF or data exports. It can also serve an interactive table over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			if cfg.Path != "" {
				c.Logger.Debug("loaded config", "path", cfg.Path)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/periodic/config.toml)")

	// Register all subcommands
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.classifyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The cache backend comes
// from the config file; noCache disables it.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, cacheKeyer(), c.Logger)
	r.TTL = c.cfg.Cache.TTL.Std()
	return r, nil
}

func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	opts := c.cfg.CacheOptions()
	opts.Logger = c.Logger
	return cache.Open(ctx, opts)
}

// cacheKeyer scopes artifact keys by release, so an upgrade never serves
// renders from an older binary.
func cacheKeyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
}

// =============================================================================
// Options Helpers
// =============================================================================

// renderDefaults returns pipeline options seeded from the config file.
func (c *CLI) renderDefaults() pipeline.Options {
	return pipeline.Options{
		Style:    c.cfg.Render.Style,
		Theme:    c.cfg.Render.Theme,
		CellSize: c.cfg.Render.CellSize,
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// categoryNames lists category names for flag help and shell completion.
func categoryNames() []string {
	cats := element.Categories()
	out := make([]string, len(cats))
	for i, cat := range cats {
		out[i] = cat.Slug()
	}
	return out
}

// completeCategories provides shell completion for --category flags.
func completeCategories(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return categoryNames(), cobra.ShellCompDirectiveNoFileComp
}
