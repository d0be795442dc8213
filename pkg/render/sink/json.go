package sink

import (
	"encoding/json"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/gradient"
	"github.com/matzehuels/heatgrid/pkg/layout"
	"github.com/matzehuels/heatgrid/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	layoutOnly bool
}

// WithJSONLayoutOnly omits the resolved cells and colors, leaving only the
// geometry.
func WithJSONLayoutOnly() JSONOption { return func(r *jsonRenderer) { r.layoutOnly = true } }

type jsonOutput struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background string         `json:"background"`
	Gradient   string         `json:"gradient"`
	Bounds     jsonBounds     `json:"bounds"`
	Blend      bool           `json:"blend,omitempty"`
	Layout     *layout.Layout `json:"layout"`
	Cells      []jsonCell     `json:"cells,omitempty"`
}

type jsonBounds struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	MinClamped bool    `json:"min_clamped,omitempty"`
	MaxClamped bool    `json:"max_clamped,omitempty"`
}

type jsonCell struct {
	Col   int     `json:"col"`
	Row   int     `json:"row"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// RenderJSON exports the scene geometry and resolved cell colors.
func RenderJSON(scene *render.Scene, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	if scene == nil || scene.Layout == nil || scene.Gradient == nil {
		return nil, errors.Invalid("scene is incomplete")
	}
	l := scene.Layout

	out := jsonOutput{
		Width:      l.Width,
		Height:     l.Height,
		Background: gradient.Hex(scene.Background()),
		Gradient:   scene.Gradient.String(),
		Bounds: jsonBounds{
			Min:        scene.Bounds.Min,
			Max:        scene.Bounds.Max,
			MinClamped: scene.Bounds.MinClamped,
			MaxClamped: scene.Bounds.MaxClamped,
		},
		Blend:  scene.Blend,
		Layout: l,
	}

	if !r.layoutOnly {
		for _, c := range scene.Cells {
			if !c.Valid {
				continue
			}
			col, err := scene.CellColor(c.Value)
			if err != nil {
				return nil, err
			}
			out.Cells = append(out.Cells, jsonCell{Col: c.Col, Row: c.Row, Value: c.Value, Color: gradient.Hex(col)})
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return data, nil
}
