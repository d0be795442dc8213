package heatmap

import (
	"fmt"
	"image"

	"github.com/matzehuels/heatgrid/pkg/axis"
	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/fonts"
	"github.com/matzehuels/heatgrid/pkg/gradient"
	"github.com/matzehuels/heatgrid/pkg/grid"
	"github.com/matzehuels/heatgrid/pkg/layout"
	"github.com/matzehuels/heatgrid/pkg/render"
	"github.com/matzehuels/heatgrid/pkg/render/sink"
)

// Point is one data point. A nil Value means "no data".
type Point[X, Y comparable] struct {
	X     X
	Y     Y
	Value *float64
}

// V returns a pointer to f, for building points inline.
func V(f float64) *float64 { return &f }

// P builds a point with a value.
func P[X, Y comparable](x X, y Y, v float64) Point[X, Y] {
	return Point[X, Y]{X: x, Y: y, Value: V(v)}
}

// Chart describes a heatmap. Axes and gradient are treated as read-only
// while a render is in flight.
type Chart[X, Y comparable] struct {
	Title string
	XAxis *axis.Axis[X]
	YAxis *axis.Axis[Y]

	// Options is required; use layout.DefaultOptions as a starting point.
	Options *layout.Options

	// Gradient defaults to the canned default gradient when nil.
	Gradient *gradient.Gradient

	// Style defaults to render.DefaultStyle when nil.
	Style *render.Style
}

// Scene validates the chart and points and computes everything needed to
// draw them.
func (c *Chart[X, Y]) Scene(points []Point[X, Y], m layout.Measurer) (*render.Scene, error) {
	if c.Options == nil {
		return nil, errors.Invalid("chart options are missing")
	}
	opts := *c.Options
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if c.XAxis == nil || c.XAxis.Count() == 0 {
		return nil, errors.Invalid("x axis has no entries")
	}
	if c.YAxis == nil || c.YAxis.Count() == 0 {
		return nil, errors.Invalid("y axis has no entries")
	}
	if len(points) == 0 {
		return nil, errors.Data("no data points")
	}

	g := c.Gradient
	if g == nil {
		var err error
		if g, err = gradient.Named(gradient.Default); err != nil {
			return nil, err
		}
	}
	style := render.DefaultStyle()
	if c.Style != nil {
		style = *c.Style
	}

	cells, err := c.cells(points)
	if err != nil {
		return nil, err
	}
	bounds, err := grid.ComputeBounds(cells, opts.LowerBound, opts.UpperBound)
	if err != nil {
		return nil, err
	}

	in := layout.Input{
		Title:   c.Title,
		XTitle:  c.XAxis.Title(),
		YTitle:  c.YAxis.Title(),
		XLabels: c.XAxis.Labels(),
		YLabels: c.YAxis.Labels(),
		Cells:   cells,
		Bounds:  bounds,
	}
	l, err := layout.Compute(in, opts, m)
	if err != nil {
		return nil, err
	}
	return render.NewScene(l, opts, cells, bounds, g, style), nil
}

// Render draws the chart into a new image using the embedded fonts of reg
// (the default registry when nil).
func (c *Chart[X, Y]) Render(points []Point[X, Y], reg *fonts.Registry) (*image.RGBA, error) {
	if reg == nil {
		reg = fonts.Default()
	}
	scene, err := c.Scene(points, reg)
	if err != nil {
		return nil, err
	}
	return sink.Rasterize(scene, reg)
}

// cells resolves points to a dense row-major grid. A later point for the
// same cell replaces an earlier one; nil values never replace anything.
func (c *Chart[X, Y]) cells(points []Point[X, Y]) ([]grid.Cell, error) {
	cols, rows := c.XAxis.Count(), c.YAxis.Count()
	cells := make([]grid.Cell, cols*rows)
	for r := range rows {
		for col := range cols {
			cells[r*cols+col] = grid.Cell{Col: col, Row: r}
		}
	}
	for _, p := range points {
		col, ok := c.XAxis.IndexOf(p.X)
		if !ok {
			return nil, errors.Data("x key %s is not on the x axis", describe(p.X))
		}
		row, ok := c.YAxis.IndexOf(p.Y)
		if !ok {
			return nil, errors.Data("y key %s is not on the y axis", describe(p.Y))
		}
		if p.Value == nil {
			continue
		}
		cell := &cells[row*cols+col]
		cell.Value = *p.Value
		cell.Valid = true
	}
	return cells, nil
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}
