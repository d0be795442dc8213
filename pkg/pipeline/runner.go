package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/heatgrid/pkg/cache"
	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/fonts"
	"github.com/matzehuels/heatgrid/pkg/gradient"
	dataio "github.com/matzehuels/heatgrid/pkg/io"
	"github.com/matzehuels/heatgrid/pkg/observability"
)

// Runner executes the pipeline behind a cache.
//
// A Runner holds no per-run state, so one Runner may serve concurrent runs
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Fonts  *fonts.Registry
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses the default keyer and a nil logger uses the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Fonts:  fonts.Default(),
	}
}

// Import reads the data table at path.
func (r *Runner) Import(ctx context.Context, path string) (*dataio.Table, error) {
	hooks := observability.Pipeline()
	hooks.OnImportStart(ctx, path)
	start := time.Now()

	table, err := dataio.Import(path)
	points := 0
	if table != nil {
		points = len(table.Points)
	}
	hooks.OnImportComplete(ctx, path, points, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("imported table", "path", path, "points", points, "values", table.Values())
	return table, nil
}

// Execute renders table in every requested format, serving artifacts from
// the cache when all of them are present.
func (r *Runner) Execute(ctx context.Context, table *dataio.Table, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if table == nil || len(table.Points) == 0 {
		return nil, errors.Data("no data points")
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	logger = logger.With("run", result.RunID[:8])
	result.Stats.Points = len(table.Points)

	var buf bytes.Buffer
	if err := dataio.WriteJSON(table, &buf); err != nil {
		return nil, err
	}
	result.DataHash = cache.Hash(buf.Bytes())

	sceneKey, err := r.sceneKey(result.DataHash, opts)
	if err != nil {
		return nil, err
	}

	if !opts.Refresh {
		if artifacts, ok := r.cachedArtifacts(ctx, sceneKey, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			logger.Info("served from cache", "formats", opts.Formats)
			return result, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Scene
	hooks := observability.Pipeline()
	xs, ys := table.Axes()
	hooks.OnLayoutStart(ctx, xs.Count(), ys.Count())
	sceneStart := time.Now()
	scene, err := BuildScene(table, opts, r.Fonts)
	result.Stats.SceneTime = time.Since(sceneStart)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, 0, result.Stats.SceneTime, err)
		return nil, err
	}
	hooks.OnLayoutComplete(ctx, scene.Layout.Width, scene.Layout.Height, result.Stats.SceneTime, nil)
	result.Scene = scene
	result.Stats.Columns, result.Stats.Rows = scene.Layout.Columns, scene.Layout.Rows
	result.Stats.Width, result.Stats.Height = scene.Layout.Width, scene.Layout.Height

	logger.Info("computed layout",
		"grid", formatGrid(scene.Layout.Columns, scene.Layout.Rows),
		"size", formatGrid(scene.Layout.Width, scene.Layout.Height),
		"duration", result.Stats.SceneTime)

	// Render
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, err := Render(ctx, scene, opts, r.Fonts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	logger.Info("rendered outputs", "formats", opts.Formats, "duration", result.Stats.RenderTime)

	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(sceneKey, artifactKeyOpts(format, opts))
		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return result, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) cachedArtifacts(ctx context.Context, sceneKey string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(sceneKey, artifactKeyOpts(format, opts))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, format)
			return nil, false
		}
		observability.Cache().OnCacheHit(ctx, format)
		artifacts[format] = data
	}
	return artifacts, true
}

func (r *Runner) sceneKey(dataHash string, opts Options) (string, error) {
	optsHash, err := cache.HashJSON(struct {
		Title, XTitle, YTitle string
		Layout                any
	}{opts.Title, opts.XTitle, opts.YTitle, opts.Layout})
	if err != nil {
		return "", wrap(err, "hash options")
	}
	styleHash, err := cache.HashJSON(opts.Style)
	if err != nil {
		return "", wrap(err, "hash style")
	}
	return r.Keyer.SceneKey(dataHash, cache.SceneKeyOpts{
		OptionsHash: optsHash,
		Gradient:    gradientFingerprint(opts.Gradient),
		StyleHash:   styleHash,
		Title:       opts.Title,
	}), nil
}

func artifactKeyOpts(format string, opts Options) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPNG:
		k.Scale = opts.Scale
	case FormatSVG:
		k.EmbedFonts = !opts.NoEmbedFonts
	case FormatJSON:
		k.LayoutOnly = opts.JSONLayoutOnly
	}
	return k
}

// gradientFingerprint identifies a gradient by sampled colors, which covers
// both stop lists and hue wheels.
func gradientFingerprint(g *gradient.Gradient) string {
	var b bytes.Buffer
	b.WriteString(g.String())
	for _, c := range g.Sample(17) {
		b.WriteString(gradient.Hex(c))
	}
	return cache.Hash(b.Bytes())
}
