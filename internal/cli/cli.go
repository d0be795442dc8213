// Package cli implements the heatgrid command-line interface.
//
// # Commands
//
//   - render: draw a heatmap from a CSV, JSON or XLSX data file
//   - gradients: list the canned color gradients
//   - cache: manage the rendered-artifact cache
//   - completion: generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces pipeline stages and cache lookups.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/heatgrid/pkg/buildinfo"
	"github.com/matzehuels/heatgrid/pkg/cache"
	"github.com/matzehuels/heatgrid/pkg/observability"
	"github.com/matzehuels/heatgrid/pkg/pipeline"
)

const (
	appName     = "heatgrid"
	redisURLEnv = "HEATGRID_REDIS_URL" // shared Redis cache instead of the file cache
)

const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI carries the logger shared by every subcommand.
type CLI struct {
	Logger *log.Logger
}

func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the pipeline and
// cache hooks are routed to the logger.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	tmpl := buildinfo.Template()
	root := &cobra.Command{
		Use:           appName,
		Short:         "Heatgrid renders heatmap charts from tabular data",
		Long:          `Heatgrid is a CLI tool for rendering two-dimensional heatmaps, with labeled axes, a color legend and optional blended cells, from CSV, JSON or XLSX tables.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging with pipeline and cache traces")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
	}
	root.SetVersionTemplate(tmpl)
	root.AddCommand(
		c.renderCommand(),
		c.gradientsCommand(),
		c.cacheCommand(),
		c.completionCommand(),
	)
	return root
}

// newRunner builds a pipeline runner backed by the cache newCache picks.
// A non-empty scope prefixes every cache key.
func (c *CLI) newRunner(ctx context.Context, noCache bool, redisURL, scope string) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache, redisURL)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if scope != "" {
		keyer = cache.NewScopedKeyer(nil, scope+":")
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// newCache picks the artifact store: none with --no-cache, Redis when a URL
// is given, otherwise the per-user file cache. An unresolvable home directory
// degrades to no caching.
func (c *CLI) newCache(ctx context.Context, noCache bool, redisURL string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		return cache.NewRedisCache(ctx, redisURL, "")
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir is $XDG_CACHE_HOME/heatgrid, or ~/.cache/heatgrid.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats splits a --format value into lower-case names, dropping
// blanks and repeats. Nothing selected means PNG.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return []string{pipeline.FormatPNG}
	}
	return out
}
