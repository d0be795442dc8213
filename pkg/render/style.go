package render

import "image/color"

// Shared colors.
var (
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black = color.RGBA{0, 0, 0, 0xff}

	// AlternativeBackground replaces white behind gradients that end in white.
	AlternativeBackground = color.RGBA{210, 210, 210, 0xff}
)

// Style holds the non-geometric appearance of a chart.
type Style struct {
	// Background is chosen automatically when nil.
	Background *color.RGBA

	TitleColor     color.RGBA
	AxisTitleColor color.RGBA
	AxisLabelColor color.RGBA
	LegendColor    color.RGBA
	GridValueColor color.RGBA
}

// DefaultStyle returns black text on an automatic background.
func DefaultStyle() Style {
	return Style{
		TitleColor:     Black,
		AxisTitleColor: Black,
		AxisLabelColor: Black,
		LegendColor:    Black,
		GridValueColor: Black,
	}
}
