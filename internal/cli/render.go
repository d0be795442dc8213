package cli

import (
	"context"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/heatgrid/pkg/config"
	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/layout"
	"github.com/matzehuels/heatgrid/pkg/pipeline"
	"github.com/matzehuels/heatgrid/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file (single format) or base path
	formats     string // comma-separated output formats
	configPath  string // TOML chart file
	title       string
	xTitle      string
	yTitle      string
	gradient    string  // canned gradient name
	blend       bool    // blend neighboring cells
	values      bool    // print cell values
	gridlines   bool    // draw gridlines
	legendSteps int     // number of legend boxes
	min         float64 // lower color bound
	max         float64 // upper color bound
	scale       float64 // PNG resampling factor
	noCache     bool
	refresh     bool
	redisURL    string
	cacheScope  string // key prefix within a shared cache
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	return c.newRenderCommand(&renderOpts{})
}

// newRenderCommand binds the render flags to opts.
func (c *CLI) newRenderCommand(opts *renderOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [data file]",
		Short: "Render a heatmap from a CSV, JSON or XLSX table",
		Long: `Render a heatmap from a data table.

The table has one header row naming the x axis, the y axis and the value
column, followed by one row per cell. Empty values leave a cell blank.

Settings are applied in order: built-in defaults, the --config file, then
flags given on the command line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := buildOptions(cmd, opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, popts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	f.StringVarP(&opts.formats, "format", "f", "", "output format(s): png (default), svg, json (comma-separated)")
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML chart settings file")
	f.StringVar(&opts.title, "title", "", "chart title")
	f.StringVar(&opts.xTitle, "x-title", "", "x axis title (default: header column)")
	f.StringVar(&opts.yTitle, "y-title", "", "y axis title (default: header column)")
	f.StringVarP(&opts.gradient, "gradient", "g", "", "canned gradient name (see 'heatgrid gradients')")
	f.BoolVar(&opts.blend, "blend", false, "blend neighboring cell colors")
	f.BoolVar(&opts.values, "values", false, "print values inside cells")
	f.BoolVar(&opts.gridlines, "gridlines", false, "draw gridlines between cells")
	f.IntVar(&opts.legendSteps, "legend-steps", 0, "number of legend boxes (default: max(rows, 5))")
	f.Float64Var(&opts.min, "min", 0, "lower bound of the color scale")
	f.Float64Var(&opts.max, "max", 0, "upper bound of the color scale")
	f.Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG resampling factor")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	f.BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	f.StringVar(&opts.redisURL, "redis", os.Getenv(redisURLEnv), "Redis URL for a shared cache (env "+redisURLEnv+")")
	f.StringVar(&opts.cacheScope, "cache-scope", "", "namespace for cache keys, e.g. a project name")

	return cmd
}

// buildOptions layers defaults, the config file and explicitly set flags.
func buildOptions(cmd *cobra.Command, o *renderOpts) (pipeline.Options, error) {
	opts := pipeline.Options{
		Layout:  layout.DefaultOptions(),
		Style:   render.DefaultStyle(),
		Formats: parseFormats(o.formats),
		Scale:   o.scale,
		Refresh: o.refresh,
	}
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return opts, err
	}

	if o.configPath != "" {
		if err := applyConfig(o.configPath, &opts); err != nil {
			return opts, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("title") {
		opts.Title = o.title
	}
	if changed("x-title") {
		opts.XTitle = o.xTitle
	}
	if changed("y-title") {
		opts.YTitle = o.yTitle
	}
	if changed("gradient") {
		opts.GradientName, opts.Gradient = o.gradient, nil
	}
	if changed("blend") {
		opts.Layout.BlendColors = o.blend
	}
	if changed("values") {
		opts.Layout.ShowGridValues = o.values
	}
	if changed("gridlines") {
		opts.Layout.ShowGridlines = o.gridlines
	}
	if changed("legend-steps") {
		opts.Layout.LegendSteps = o.legendSteps
	}
	if changed("min") {
		opts.Layout.LowerBound = &o.min
	}
	if changed("max") {
		opts.Layout.UpperBound = &o.max
	}
	return opts, nil
}

func applyConfig(path string, opts *pipeline.Options) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Apply(&opts.Layout); err != nil {
		return err
	}
	if opts.Style, err = cfg.RenderStyle(opts.Style); err != nil {
		return err
	}
	if opts.Gradient, err = cfg.BuildGradient(); err != nil {
		return err
	}
	title, xTitle, yTitle := cfg.Titles()
	if title != nil {
		opts.Title = *title
	}
	if xTitle != nil {
		opts.XTitle = *xTitle
	}
	if yTitle != nil {
		opts.YTitle = *yTitle
	}
	return nil
}

// runRender imports input, renders it and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, o *renderOpts, opts pipeline.Options) error {
	runner, err := c.newRunner(ctx, o.noCache, o.redisURL, o.cacheScope)
	if err != nil {
		return err
	}
	defer runner.Close()

	watch := startStopwatch(c.Logger)
	table, err := runner.Import(ctx, input)
	if err != nil {
		return err
	}
	c.Logger.Infof("Loaded %s: %d points (%d with values)", filepath.Base(input), len(table.Points), table.Values())

	spin := startSpinner(ctx, spinnerWriter(c), "Rendering")
	result, err := runner.Execute(ctx, table, opts)
	spin.stop()
	if err != nil {
		return err
	}

	paths := outputPaths(o.output, input, opts.Formats)
	formats := slices.Sorted(maps.Keys(result.Artifacts))
	for _, format := range formats {
		path := paths[format]
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
	}
	watch.done("Rendered", "files", len(formats), "formats", strings.Join(formats, ","))

	printSuccess("Rendered %s", StyleHighlight.Render(filepath.Base(input)))
	for _, format := range formats {
		printFile(paths[format])
	}
	printStats(result.Stats, result.CacheInfo.RenderHit)
	return nil
}

// spinnerWriter returns stderr unless debug logging would interleave with
// the animation.
func spinnerWriter(c *CLI) io.Writer {
	if c.Logger.GetLevel() <= LogDebug {
		return nil
	}
	return os.Stderr
}

// outputPaths maps each format to its output file. A single format with an
// explicit output path uses it as given; otherwise files share a base path
// derived from output or input.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath strips a known format extension from output, or the data
// extension from input when output is empty.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if errors.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
