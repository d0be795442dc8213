package render

import (
	"image"
	"image/color"

	"github.com/matzehuels/heatgrid/pkg/blend"
	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/gradient"
	"github.com/matzehuels/heatgrid/pkg/grid"
	"github.com/matzehuels/heatgrid/pkg/layout"
)

// Surface is a drawing backend.
type Surface interface {
	// FillRect fills r with c.
	FillRect(r layout.Rect, c color.Color)
	// DrawText draws t at its baseline anchor, rotated -90 degrees around
	// the anchor when t.Rotated is set.
	DrawText(t layout.Text, c color.Color)
	// DrawImage composites img with its top-left corner at x, y.
	DrawImage(img image.Image, x, y int)
}

// Scene is everything needed to draw one chart.
type Scene struct {
	Layout        *layout.Layout
	Cells         []grid.Cell
	Bounds        grid.Bounds
	Gradient      *gradient.Gradient
	Style         Style
	GridlineColor color.RGBA
	Blend         bool
	BlendScale    int
}

// NewScene combines a computed layout with the options it was computed from.
func NewScene(l *layout.Layout, opts layout.Options, cells []grid.Cell, b grid.Bounds, g *gradient.Gradient, s Style) *Scene {
	return &Scene{
		Layout:        l,
		Cells:         cells,
		Bounds:        b,
		Gradient:      g,
		Style:         s,
		GridlineColor: opts.GridlineColor,
		Blend:         opts.BlendColors,
		BlendScale:    opts.BlendScale,
	}
}

// CellColor returns the gradient color of a cell value.
func (s *Scene) CellColor(v float64) (color.RGBA, error) {
	return s.Gradient.Color(s.Bounds.Factor(v))
}

// Background returns the configured background or, when unset, white unless
// the gradient's maximum color is near-white.
func (s *Scene) Background() color.RGBA {
	if s.Style.Background != nil {
		return *s.Style.Background
	}
	top := s.Gradient.MustColor(1)
	if top.R > 240 && top.G > 240 && top.B > 240 {
		return AlternativeBackground
	}
	return White
}

// Draw renders scene onto surface in z-order. On error the surface may hold
// a partial drawing and should be discarded.
func Draw(surface Surface, scene *Scene) error {
	if surface == nil {
		return errors.Invalid("drawing surface is missing")
	}
	if scene == nil || scene.Layout == nil {
		return errors.Invalid("scene has no layout")
	}
	if scene.Gradient == nil {
		return errors.Invalid("scene has no gradient")
	}
	l := scene.Layout
	st := scene.Style

	surface.FillRect(layout.Rect{W: l.Width, H: l.Height}, scene.Background())

	for _, line := range l.Title {
		surface.DrawText(line, st.TitleColor)
	}

	if lg := l.Legend; lg != nil {
		for _, e := range lg.Entries {
			if e.ShowLabel {
				surface.DrawText(e.Label, st.LegendColor)
			}
		}
		for i, e := range lg.Entries {
			c, err := scene.Gradient.Color(e.Factor)
			if err != nil {
				return err
			}
			surface.FillRect(e.Box, c)
			if i < len(lg.Dividers) {
				surface.FillRect(lg.Dividers[i], scene.GridlineColor)
			}
		}
		for _, r := range lg.Border {
			surface.FillRect(r, scene.GridlineColor)
		}
	}

	if l.XTitle != nil {
		surface.DrawText(*l.XTitle, st.AxisTitleColor)
	}
	if l.YTitle != nil {
		surface.DrawText(*l.YTitle, st.AxisTitleColor)
	}

	for _, t := range l.XLabels {
		surface.DrawText(t, st.AxisLabelColor)
	}
	for _, t := range l.YLabels {
		surface.DrawText(t, st.AxisLabelColor)
	}

	if err := drawCells(surface, scene); err != nil {
		return err
	}

	for _, v := range l.Values {
		surface.DrawText(v.Text, st.GridValueColor)
	}

	for _, r := range l.Gridlines {
		surface.FillRect(r, scene.GridlineColor)
	}
	return nil
}

func drawCells(surface Surface, scene *Scene) error {
	l := scene.Layout
	if scene.Blend {
		res, err := blend.Compose(blend.Input{
			Cells:   scene.Cells,
			Columns: l.Columns,
			Rows:    l.Rows,
			Scale:   scene.BlendScale,
			Width:   l.Grid.W,
			Height:  l.Grid.H,
			Color:   scene.CellColor,
		})
		if err != nil {
			return err
		}
		surface.DrawImage(res.Final, l.Grid.X, l.Grid.Y)
		return nil
	}

	for _, c := range scene.Cells {
		if !c.Valid {
			continue
		}
		col, err := scene.CellColor(c.Value)
		if err != nil {
			return err
		}
		surface.FillRect(l.CellRect(c.Col, c.Row), col)
	}
	return nil
}
