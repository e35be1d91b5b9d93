package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/errors"
	"github.com/matzehuels/periodic/pkg/pipeline"
)

// defaultBaseName names output files when -o is not given.
const defaultBaseName = "periodic-table"

// renderOpts holds the flags of the render command that are not pipeline
// options.
type renderOpts struct {
	output  string // output file (single format), base path (multiple) or "-" for stdout
	formats string // comma-separated formats
	noCache bool   // bypass the artifact cache entirely
}

// renderCommand creates the render command for writing table artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the periodic table to SVG, HTML, PNG, PDF, JSON or YAML",
		Long: `Render the periodic table through the classify, layout and render pipeline.

Artifacts are cached by their options. PNG and PDF use rsvg-convert with the
native engine; the graphviz engine renders SVG and PNG through embedded Graphviz.`,
		Example: `  periodic render
  periodic render -f svg,html --style glow --theme light
  periodic render -f png --engine graphviz --category noble-gas -o gases.png
  periodic render -f json -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := c.renderDefaults()
			if !cmd.Flags().Changed("style") {
				opts.Style = defaults.Style
			}
			if !cmd.Flags().Changed("theme") {
				opts.Theme = defaults.Theme
			}
			if !cmd.Flags().Changed("cell-size") {
				opts.CellSize = defaults.CellSize
			}
			opts.Formats = parseFormats(ro.formats)
			opts.Logger = c.Logger
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if ro.output == "-" && len(opts.Formats) > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "-o - needs exactly one format, got %d", len(opts.Formats))
			}
			return c.runRender(cmd, opts, ro)
		},
	}

	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (one format), base path (several) or - for stdout")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames(), ", ")+" (comma-separated, default svg)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "render only one category")
	cmd.Flags().StringVar(&opts.Style, "style", "", "card style: simple, orbit or glow")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "color theme: light or dark")
	cmd.Flags().Float64Var(&opts.CellSize, "cell-size", 0, "card edge length in pixels")
	cmd.Flags().BoolVar(&opts.Popups, "popups", true, "embed hover tooltips in SVG output")
	cmd.Flags().StringVar(&opts.Engine, "engine", pipeline.EngineNative, "renderer for svg/png: native or graphviz")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable the artifact cache")
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategories)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("engine", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{pipeline.EngineNative, pipeline.EngineGraphviz}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts pipeline.Options, ro renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	if ro.noCache && opts.Refresh {
		printWarning("--refresh has no effect with --no-cache")
	}

	runner, err := c.newRunner(ctx, ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := renderWithSpinner(ctx, runner, opts, ro.output != "-")
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(res.Artifacts)))

	if ro.output == "-" {
		_, err := cmd.OutOrStdout().Write(res.Artifacts[opts.Formats[0]])
		return err
	}

	paths := outputPaths(ro.output, opts)
	for _, format := range opts.Formats {
		if err := writeOutput(paths[format], res.Artifacts[format]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", opts.Filter().String())
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(len(res.Groups.Main), len(res.Groups.Lanthanides), len(res.Groups.Actinides), res.CacheInfo.RenderHit)
	return nil
}

// renderWithSpinner runs the pipeline, showing a spinner for the slow
// external converters when the output is not stdout.
func renderWithSpinner(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, interactive bool) (*pipeline.Result, error) {
	if !interactive || !needsConverter(opts.Formats) {
		return runner.Render(ctx, opts)
	}
	spinner := newSpinnerWithContext(ctx, "Rendering "+strings.Join(opts.Formats, ", ")+"...")
	spinner.Start()
	res, err := runner.Render(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return nil, err
	}
	spinner.Stop()
	return res, nil
}

func needsConverter(formats []string) bool {
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatPDF {
			return true
		}
	}
	return false
}

// outputPaths maps each format to its output file. A single format writes to
// output as given; several formats share a base path with one extension each.
func outputPaths(output string, opts pipeline.Options) map[string]string {
	paths := make(map[string]string, len(opts.Formats))
	if len(opts.Formats) == 1 && output != "" {
		paths[opts.Formats[0]] = output
		return paths
	}
	base := basePath(output, opts.Category)
	for _, f := range opts.Formats {
		paths[f] = base + "." + extension(f)
	}
	return paths
}

// basePath strips a known format extension from output, or derives a name
// from the category filter when output is empty.
func basePath(output, category string) string {
	if output == "" {
		if category == "" {
			return defaultBaseName
		}
		return defaultBaseName + "-" + element.Category(category).Slug()
	}
	ext := filepath.Ext(output)
	if pipeline.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil || ext == ".gv" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// extension returns the file extension of a format.
func extension(format string) string {
	if format == pipeline.FormatDOT {
		return "gv"
	}
	return format
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
