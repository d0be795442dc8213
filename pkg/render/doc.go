// Package render draws a computed heatmap onto a drawing surface.
//
// # Overview
//
// The package owns no geometry and no color logic. [Draw] walks a [Scene]
// (a [layout.Layout] plus the cells, value bounds, gradient and [Style]) and
// issues [Surface] calls in a fixed z-order:
//
//  1. background
//  2. title lines
//  3. legend labels, boxes, dividers and border
//  4. axis titles
//  5. axis labels
//  6. cells, flat or blended
//  7. in-cell values
//  8. gridlines
//
// Concrete surfaces live in the [sink] subpackage: a raster surface for PNG
// output and a vector surface for SVG output. Any other backend only has to
// implement the three [Surface] methods.
package render
