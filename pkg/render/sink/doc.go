// Package sink turns a [render.Scene] into a file format.
//
// # Formats
//
//   - PNG: [RenderPNG] rasterizes the scene with fogleman/gg using the
//     embedded Go fonts, optionally resampled with [WithScale].
//   - SVG: [RenderSVG] writes one element per drawing call. Blended cell
//     bitmaps are embedded as base64 PNG images.
//   - JSON: [RenderJSON] dumps the computed layout geometry for external
//     tools. It does not need a surface.
//
// PNG and SVG both go through [render.Draw], so element order and geometry
// are identical across the two formats:
//
//	img, err := sink.Rasterize(scene, fonts.Default())
//	png, err := sink.RenderPNG(scene, fonts.Default(), sink.WithScale(2))
//	svg, err := sink.RenderSVG(scene, sink.WithEmbeddedFonts(false))
//
// [render.Scene]: github.com/matzehuels/heatgrid/pkg/render.Scene
// [render.Draw]: github.com/matzehuels/heatgrid/pkg/render.Draw
package sink
