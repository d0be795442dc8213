// Package layout computes the complete pixel geometry of a heatmap chart.
//
// # Overview
//
// [Compute] takes the chart's labels, resolved cells, value [grid.Bounds] and
// [Options], plus a [Measurer] that reports rendered text sizes, and returns
// an immutable [Layout]: the image size, the effective cell size, an anchor
// and size for every text element, the X-label rotation decision, the
// ordered legend entries, the wrapped title lines and the gridline rects.
//
// The computation is a fixed sequence in which every step only consumes
// values computed before it:
//
//  1. Measure axis labels, in-cell values and axis titles.
//  2. Derive the effective cell size from the configured size, the label
//     font height and the widest in-cell value.
//  3. Decide whether X labels are drawn vertically.
//  4. Generate the legend values and labels.
//  5. Accumulate horizontal offsets left to right; their sum is the width.
//  6. Word-wrap the title to the available width.
//  7. Accumulate vertical offsets top to bottom; their sum is the height.
//
// # Coordinates
//
// All coordinates are integer pixels with the origin at the top-left corner.
// Text anchors are baselines, as drawing surfaces expect them. A rotated
// [Text] is anchored at the translation origin and drawn at -90 degrees, so
// it reads bottom to top.
//
// The package performs no drawing and no I/O. A Layout may be shared by any
// number of concurrent readers.
package layout
