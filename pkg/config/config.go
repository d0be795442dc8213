// Package config loads chart settings from TOML files.
//
// Every key is optional; only keys present in the file override the
// defaults they are applied to:
//
//	[chart]
//	title = "Monthly revenue"
//
//	[layout]
//	cell_width = 60
//	show_gridlines = true
//	gridline_color = "#cccccc"
//	legend_steps = 7
//	lower_bound = 500000.0
//
//	[layout.fonts.title]
//	size = 28
//
//	[style]
//	background = "#ffffff"
//
//	[gradient]
//	stops = ["#1d4877", "#fbb021", "#ee3e32"]
//
// A gradient section sets exactly one of name, stops or hue.
package config

import (
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/gradient"
	"github.com/matzehuels/heatgrid/pkg/layout"
	"github.com/matzehuels/heatgrid/pkg/render"
)

// Config is a decoded chart file.
type Config struct {
	Chart    Chart    `toml:"chart"`
	Layout   Layout   `toml:"layout"`
	Style    Style    `toml:"style"`
	Gradient Gradient `toml:"gradient"`
}

// Chart holds text that is not part of the data file.
type Chart struct {
	Title  *string `toml:"title"`
	XTitle *string `toml:"x_title"`
	YTitle *string `toml:"y_title"`
}

// Layout mirrors layout.Options.
type Layout struct {
	CellWidth        *int     `toml:"cell_width"`
	CellHeight       *int     `toml:"cell_height"`
	ShowGridlines    *bool    `toml:"show_gridlines"`
	GridlineWidth    *int     `toml:"gridline_width"`
	GridlineColor    *string  `toml:"gridline_color"`
	LabelPadding     *int     `toml:"label_padding"`
	AxisTitlePadding *int     `toml:"axis_title_padding"`
	TitlePadding     *int     `toml:"title_padding"`
	LegendPadding    *int     `toml:"legend_padding"`
	OuterPadding     *int     `toml:"outer_padding"`
	ShowXLabels      *bool    `toml:"show_x_labels"`
	ShowYLabels      *bool    `toml:"show_y_labels"`
	XLabelsBelow     *bool    `toml:"x_labels_below"`
	RotateXLabels    *bool    `toml:"rotate_x_labels"`
	ShowLegend       *bool    `toml:"show_legend"`
	ShowGridValues   *bool    `toml:"show_grid_values"`
	BlendColors      *bool    `toml:"blend_colors"`
	LegendSteps      *int     `toml:"legend_steps"`
	GridValueFormat  *string  `toml:"grid_value_format"`
	LegendFormat     *string  `toml:"legend_format"`
	LowerBound       *float64 `toml:"lower_bound"`
	UpperBound       *float64 `toml:"upper_bound"`
	BlendScale       *int     `toml:"blend_scale"`
	Fonts            Fonts    `toml:"fonts"`
}

// Fonts overrides individual chart fonts.
type Fonts struct {
	Title     Font `toml:"title"`
	AxisTitle Font `toml:"axis_title"`
	AxisLabel Font `toml:"axis_label"`
	Legend    Font `toml:"legend"`
	GridValue Font `toml:"grid_value"`
}

// Font overrides parts of one font.
type Font struct {
	Family *string  `toml:"family"`
	Size   *float64 `toml:"size"`
	Bold   *bool    `toml:"bold"`
}

// Style holds hex colors for the non-geometric appearance.
type Style struct {
	Background     *string `toml:"background"`
	TitleColor     *string `toml:"title_color"`
	AxisTitleColor *string `toml:"axis_title_color"`
	AxisLabelColor *string `toml:"axis_label_color"`
	LegendColor    *string `toml:"legend_color"`
	GridValueColor *string `toml:"grid_value_color"`
}

// Gradient selects a canned gradient, explicit stops, or a hue sweep.
type Gradient struct {
	Name  *string  `toml:"name"`
	Stops []string `toml:"stops"`
	Hue   *Hue     `toml:"hue"`
}

// Hue configures a hue-wheel gradient.
type Hue struct {
	Start      float64 `toml:"start"`
	End        float64 `toml:"end"`
	Saturation float64 `toml:"saturation"`
	Brightness float64 `toml:"brightness"`
	Direction  string  `toml:"direction"`
}

// Load reads the config file at path.
func Load(path string) (*Config, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "config not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open config %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a config from r. Unknown keys are rejected so typos do not
// pass silently.
func Decode(r io.Reader) (*Config, error) {
	var c Config
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Invalid("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return &c, nil
}

// Apply overrides o with every layout key present in the config.
func (c *Config) Apply(o *layout.Options) error {
	l := c.Layout
	setInt(&o.CellWidth, l.CellWidth)
	setInt(&o.CellHeight, l.CellHeight)
	setBool(&o.ShowGridlines, l.ShowGridlines)
	setInt(&o.GridlineWidth, l.GridlineWidth)
	setInt(&o.LabelPadding, l.LabelPadding)
	setInt(&o.AxisTitlePadding, l.AxisTitlePadding)
	setInt(&o.TitlePadding, l.TitlePadding)
	setInt(&o.LegendPadding, l.LegendPadding)
	setInt(&o.OuterPadding, l.OuterPadding)
	setBool(&o.ShowXLabels, l.ShowXLabels)
	setBool(&o.ShowYLabels, l.ShowYLabels)
	setBool(&o.XLabelsBelow, l.XLabelsBelow)
	setBool(&o.RotateXLabels, l.RotateXLabels)
	setBool(&o.ShowLegend, l.ShowLegend)
	setBool(&o.ShowGridValues, l.ShowGridValues)
	setBool(&o.BlendColors, l.BlendColors)
	setInt(&o.LegendSteps, l.LegendSteps)
	setInt(&o.BlendScale, l.BlendScale)
	if l.GridValueFormat != nil {
		o.GridValueFormat = *l.GridValueFormat
	}
	if l.LegendFormat != nil {
		o.LegendFormat = *l.LegendFormat
	}
	if l.LowerBound != nil {
		o.LowerBound = ptr(*l.LowerBound)
	}
	if l.UpperBound != nil {
		o.UpperBound = ptr(*l.UpperBound)
	}
	if l.GridlineColor != nil {
		col, err := gradient.ParseHex(*l.GridlineColor)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidArgument, err, "layout.gridline_color")
		}
		o.GridlineColor = col
	}

	l.Fonts.Title.apply(&o.Fonts.Title)
	l.Fonts.AxisTitle.apply(&o.Fonts.AxisTitle)
	l.Fonts.AxisLabel.apply(&o.Fonts.AxisLabel)
	l.Fonts.Legend.apply(&o.Fonts.Legend)
	l.Fonts.GridValue.apply(&o.Fonts.GridValue)
	return nil
}

func (f Font) apply(dst *layout.Font) {
	if f.Family != nil {
		dst.Family = *f.Family
	}
	if f.Size != nil {
		dst.Size = *f.Size
	}
	setBool(&dst.Bold, f.Bold)
}

// RenderStyle overrides base with every style key present in the config.
func (c *Config) RenderStyle(base render.Style) (render.Style, error) {
	s := c.Style
	if s.Background != nil {
		col, err := gradient.ParseHex(*s.Background)
		if err != nil {
			return base, errors.Wrap(errors.ErrCodeInvalidArgument, err, "style.background")
		}
		base.Background = &col
	}
	for _, f := range []struct {
		name string
		src  *string
		dst  *color.RGBA
	}{
		{"title_color", s.TitleColor, &base.TitleColor},
		{"axis_title_color", s.AxisTitleColor, &base.AxisTitleColor},
		{"axis_label_color", s.AxisLabelColor, &base.AxisLabelColor},
		{"legend_color", s.LegendColor, &base.LegendColor},
		{"grid_value_color", s.GridValueColor, &base.GridValueColor},
	} {
		if f.src == nil {
			continue
		}
		col, err := gradient.ParseHex(*f.src)
		if err != nil {
			return base, errors.Wrap(errors.ErrCodeInvalidArgument, err, "style.%s", f.name)
		}
		*f.dst = col
	}
	return base, nil
}

// BuildGradient returns the configured gradient, or nil when the config
// does not name one.
func (c *Config) BuildGradient() (*gradient.Gradient, error) {
	g := c.Gradient
	set := 0
	if g.Name != nil {
		set++
	}
	if len(g.Stops) > 0 {
		set++
	}
	if g.Hue != nil {
		set++
	}
	switch {
	case set == 0:
		return nil, nil
	case set > 1:
		return nil, errors.Invalid("gradient: set only one of name, stops or hue")
	}

	switch {
	case g.Name != nil:
		return gradient.Named(*g.Name)
	case len(g.Stops) > 0:
		spec, err := gradient.StopsFromHex(g.Stops...)
		if err != nil {
			return nil, err
		}
		return gradient.New(spec)
	default:
		dir, err := gradient.ParseDirection(g.Hue.Direction)
		if err != nil {
			return nil, err
		}
		return gradient.New(gradient.HueWheel{
			Start:      g.Hue.Start,
			End:        g.Hue.End,
			Saturation: g.Hue.Saturation,
			Brightness: g.Hue.Brightness,
			Direction:  dir,
		})
	}
}

// Titles returns the chart title and the axis title overrides.
func (c *Config) Titles() (title, xTitle, yTitle *string) {
	return c.Chart.Title, c.Chart.XTitle, c.Chart.YTitle
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func ptr[T any](v T) *T { return &v }
