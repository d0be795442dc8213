// Package heatmap is the programmatic entry point for building charts.
//
// A [Chart] ties two [axis.Axis] values, a [gradient.Gradient] and a
// [layout.Options] together. Rendering a slice of [Point] values runs one
// validation pass, resolves points to grid cells, derives the value bounds,
// computes the layout and draws it:
//
//	months := axis.Ints("Month", 1, 12)
//	years := axis.Ints("Year", 2018, 2025)
//	opts := layout.DefaultOptions()
//	chart := &heatmap.Chart[int, int]{
//	    Title:   "Monthly revenue",
//	    XAxis:   months,
//	    YAxis:   years,
//	    Options: &opts,
//	}
//	img, err := chart.Render(points, fonts.Default())
//
// Points whose Value is nil mean "no data" and are skipped everywhere.
// Points keyed outside either axis are a data error.
//
// [axis.Axis]: github.com/matzehuels/heatgrid/pkg/axis.Axis
// [gradient.Gradient]: github.com/matzehuels/heatgrid/pkg/gradient.Gradient
// [layout.Options]: github.com/matzehuels/heatgrid/pkg/layout.Options
package heatmap
