package pipeline

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/fonts"
	"github.com/matzehuels/heatgrid/pkg/heatmap"
	dataio "github.com/matzehuels/heatgrid/pkg/io"
	"github.com/matzehuels/heatgrid/pkg/render"
	"github.com/matzehuels/heatgrid/pkg/render/sink"
)

// BuildScene resolves table into a drawable scene. opts must have been
// validated.
func BuildScene(table *dataio.Table, opts Options, reg *fonts.Registry) (*render.Scene, error) {
	if table == nil {
		return nil, errors.Data("no data table")
	}
	xs, ys := table.Axes()
	if opts.XTitle != "" {
		xs.SetTitle(opts.XTitle)
	}
	if opts.YTitle != "" {
		ys.SetTitle(opts.YTitle)
	}
	layoutOpts := opts.Layout
	style := opts.Style

	chart := &heatmap.Chart[string, string]{
		Title:    opts.Title,
		XAxis:    xs,
		YAxis:    ys,
		Options:  &layoutOpts,
		Gradient: opts.Gradient,
		Style:    &style,
	}
	return chart.Scene(table.Points, reg)
}

// Render encodes scene in every format of opts concurrently. The scene is
// only read, so the encoders share it.
func Render(ctx context.Context, scene *render.Scene, opts Options, reg *fonts.Registry) (map[string][]byte, error) {
	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := renderFormat(scene, format, opts, reg)
			if err != nil {
				return wrap(err, "render %s", format)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(scene *render.Scene, format string, opts Options, reg *fonts.Registry) ([]byte, error) {
	switch format {
	case FormatPNG:
		return sink.RenderPNG(scene, reg, sink.WithScale(opts.Scale))
	case FormatSVG:
		return sink.RenderSVG(scene, sink.WithEmbeddedFonts(!opts.NoEmbedFonts))
	case FormatJSON:
		var jsonOpts []sink.JSONOption
		if opts.JSONLayoutOnly {
			jsonOpts = append(jsonOpts, sink.WithJSONLayoutOnly())
		}
		return sink.RenderJSON(scene, jsonOpts...)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	}
}

// wrap adds context to err, keeping its code when it has one.
func wrap(err error, format string, args ...any) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, format, args...)
}

func formatGrid(w, h int) string {
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}
