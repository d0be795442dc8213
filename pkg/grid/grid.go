// Package grid holds the resolved cell data of a heatmap and the value
// bounds used to normalize it onto a gradient.
//
// Cells are addressed by the dense column/row indices handed out by the
// chart's axes. A cell whose Valid flag is false means "no data": it is
// skipped when computing bounds, filling cells and measuring value text.
package grid

import (
	"math"

	"github.com/matzehuels/heatgrid/pkg/errors"
)

// Cell is a single resolved data point.
type Cell struct {
	Col   int     `json:"col"`
	Row   int     `json:"row"`
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Bounds is the value range a chart maps onto its gradient.
//
// MinClamped and MaxClamped record whether the corresponding end was fixed
// by configuration rather than taken from the data. Values outside a clamped
// range are capped before normalization.
type Bounds struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	MinClamped bool    `json:"min_clamped"`
	MaxClamped bool    `json:"max_clamped"`
}

// Range returns Max - Min.
func (b Bounds) Range() float64 { return b.Max - b.Min }

// Clamped reports whether either end of the range is fixed.
func (b Bounds) Clamped() bool { return b.MinClamped || b.MaxClamped }

// Factor normalizes v onto [0,1].
//
// A zero range maps every value to 1.0, so a uniform data set takes the
// gradient's maximum color.
func (b Bounds) Factor(v float64) float64 {
	r := b.Range()
	if r == 0 {
		return 1
	}
	if b.Clamped() {
		v = math.Max(math.Min(v, b.Max), b.Min)
	}
	f := (v - b.Min) / r
	// Guard against floating point drift at the ends.
	return math.Max(0, math.Min(1, f))
}

// ComputeBounds derives the value range of cells.
//
// lower and upper are optional clamp bounds. When only one is supplied the
// other end comes from the data, and a single bound beyond the data collapses
// the range onto that bound so every cell caps to one color. When no cell
// carries a value and a bound is missing, that end is 0. Two supplied bounds
// must not cross.
func ComputeBounds(cells []Cell, lower, upper *float64) (Bounds, error) {
	var b Bounds
	if lower == nil || upper == nil {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, c := range cells {
			if !c.Valid {
				continue
			}
			lo = math.Min(lo, c.Value)
			hi = math.Max(hi, c.Value)
		}
		if math.IsInf(lo, 1) {
			lo, hi = 0, 0
		}
		b.Min, b.Max = lo, hi
	}

	if lower != nil {
		b.Min, b.MinClamped = *lower, true
		if upper == nil && b.Max < b.Min {
			b.Max = b.Min
		}
	}
	if upper != nil {
		b.Max, b.MaxClamped = *upper, true
		if lower == nil && b.Min > b.Max {
			b.Min = b.Max
		}
	}

	for _, v := range []float64{b.Min, b.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Bounds{}, errors.Invalid("value bounds must be finite, got [%v, %v]", b.Min, b.Max)
		}
	}
	if b.Min > b.Max {
		return Bounds{}, errors.Invalid("lower bound %v is greater than upper bound %v", b.Min, b.Max)
	}
	return b, nil
}

// Valid returns only the cells that carry a value.
func Valid(cells []Cell) []Cell {
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if c.Valid {
			out = append(out, c)
		}
	}
	return out
}
