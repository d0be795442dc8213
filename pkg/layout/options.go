package layout

import (
	"image/color"
	"math"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/numfmt"
)

// Font identifies a font by family, size in pixels and weight.
type Font struct {
	Family string  `json:"family" toml:"family"`
	Size   float64 `json:"size" toml:"size"`
	Bold   bool    `json:"bold,omitempty" toml:"bold"`
}

// Fonts holds the font of every text role in a chart.
type Fonts struct {
	Title     Font
	AxisTitle Font
	AxisLabel Font
	Legend    Font
	GridValue Font
}

// Default font settings.
const (
	DefaultFamily        = "Go"
	DefaultLabelSize     = 20
	DefaultAxisTitleSize = 20
	DefaultTitleSize     = 36
)

// DefaultFonts returns the default fonts: plain labels, bold titles.
func DefaultFonts() Fonts {
	basic := Font{Family: DefaultFamily, Size: DefaultLabelSize}
	return Fonts{
		Title:     Font{Family: DefaultFamily, Size: DefaultTitleSize, Bold: true},
		AxisTitle: Font{Family: DefaultFamily, Size: DefaultAxisTitleSize, Bold: true},
		AxisLabel: basic,
		Legend:    basic,
		GridValue: basic,
	}
}

// Options configures the geometry of a chart.
type Options struct {
	CellWidth  int
	CellHeight int

	ShowGridlines bool
	GridlineWidth int
	GridlineColor color.RGBA

	LabelPadding     int
	AxisTitlePadding int
	TitlePadding     int
	LegendPadding    int
	OuterPadding     int

	ShowXLabels    bool
	ShowYLabels    bool
	XLabelsBelow   bool
	RotateXLabels  bool // force vertical X labels
	ShowLegend     bool
	ShowGridValues bool
	BlendColors    bool

	// LegendSteps overrides the number of legend boxes; 0 selects
	// max(Y-axis count, 5).
	LegendSteps int

	GridValueFormat string
	LegendFormat    string

	// LowerBound and UpperBound clamp the color scale. Either may be nil.
	LowerBound *float64
	UpperBound *float64

	// BlendScale is the intermediate sampling density of blended charts.
	BlendScale int

	Fonts Fonts
}

// Default option values.
const (
	DefaultCellSize         = 50
	DefaultGridlineWidth    = 1
	DefaultLabelPadding     = 10
	DefaultAxisTitlePadding = 20
	DefaultTitlePadding     = 40
	DefaultLegendPadding    = 40
	DefaultOuterPadding     = 5
	DefaultGridValueFormat  = "0.#"
	DefaultLegendFormat     = "0.##"
	DefaultBlendScale       = 3

	MinBlendScale = 2
	MaxBlendScale = 20
)

// DefaultOptions returns the default chart options.
func DefaultOptions() Options {
	return Options{
		CellWidth:        DefaultCellSize,
		CellHeight:       DefaultCellSize,
		GridlineWidth:    DefaultGridlineWidth,
		GridlineColor:    color.RGBA{A: 0xff},
		LabelPadding:     DefaultLabelPadding,
		AxisTitlePadding: DefaultAxisTitlePadding,
		TitlePadding:     DefaultTitlePadding,
		LegendPadding:    DefaultLegendPadding,
		OuterPadding:     DefaultOuterPadding,
		ShowXLabels:      true,
		ShowYLabels:      true,
		ShowLegend:       true,
		GridValueFormat:  DefaultGridValueFormat,
		LegendFormat:     DefaultLegendFormat,
		BlendScale:       DefaultBlendScale,
		Fonts:            DefaultFonts(),
	}
}

// Validate checks every option in a single pass and returns the first
// violation as an INVALID_ARGUMENT error.
func (o *Options) Validate() error {
	if o == nil {
		return errors.Invalid("layout options are missing")
	}
	if o.CellWidth < 1 || o.CellHeight < 1 {
		return errors.Invalid("cell size must be positive, got %dx%d", o.CellWidth, o.CellHeight)
	}
	if o.GridlineWidth < 0 {
		return errors.Invalid("gridline width cannot be negative, got %d", o.GridlineWidth)
	}
	if o.ShowGridlines && o.GridlineWidth < 1 {
		return errors.Invalid("gridline width must be positive when gridlines are shown")
	}

	paddings := []struct {
		name  string
		value int
	}{
		{"label padding", o.LabelPadding},
		{"axis title padding", o.AxisTitlePadding},
		{"title padding", o.TitlePadding},
		{"legend padding", o.LegendPadding},
		{"outer padding", o.OuterPadding},
	}
	for _, p := range paddings {
		if p.value < 0 {
			return errors.Invalid("%s cannot be negative, got %d", p.name, p.value)
		}
	}

	if o.LegendSteps != 0 && o.LegendSteps < 2 {
		return errors.Invalid("legend needs at least 2 steps, got %d", o.LegendSteps)
	}
	if o.BlendScale < MinBlendScale || o.BlendScale > MaxBlendScale {
		return errors.Invalid("blend scale must be within [%d,%d], got %d", MinBlendScale, MaxBlendScale, o.BlendScale)
	}

	if _, err := numfmt.Parse(o.GridValueFormat); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArgument, err, "grid value format")
	}
	if _, err := numfmt.Parse(o.LegendFormat); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArgument, err, "legend format")
	}

	for _, b := range []*float64{o.LowerBound, o.UpperBound} {
		if b != nil && (math.IsNaN(*b) || math.IsInf(*b, 0)) {
			return errors.Invalid("color scale bounds must be finite")
		}
	}
	if o.LowerBound != nil && o.UpperBound != nil && *o.LowerBound > *o.UpperBound {
		return errors.Invalid("lower bound %v is greater than upper bound %v", *o.LowerBound, *o.UpperBound)
	}

	fonts := []struct {
		role string
		font Font
	}{
		{"title", o.Fonts.Title},
		{"axis title", o.Fonts.AxisTitle},
		{"axis label", o.Fonts.AxisLabel},
		{"legend", o.Fonts.Legend},
		{"grid value", o.Fonts.GridValue},
	}
	for _, f := range fonts {
		if f.font.Size <= 0 {
			return errors.Invalid("%s font size must be positive, got %v", f.role, f.font.Size)
		}
	}
	return nil
}

// gridline returns the gridline width when gridlines are shown, else 0.
func (o *Options) gridline() int {
	if o.ShowGridlines {
		return o.GridlineWidth
	}
	return 0
}
