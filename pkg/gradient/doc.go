// Package gradient maps normalized values in [0,1] to colors.
//
// # Models
//
// Two gradient models are supported, selected by the [Spec] passed to [New]:
//
//   - [StopList]: an ordered list of at least two colors. A value falls
//     between two adjacent stops and each channel is interpolated linearly.
//   - [HueWheel]: a sweep around the HSB hue circle between two hues at fixed
//     saturation and brightness, in a chosen [Direction].
//
// # Canned Gradients
//
// [Named] returns one of the built-in gradients by name; [Names] lists them
// in display order:
//
//	g, _ := gradient.Named("cubehelix")
//	c, _ := g.Color(0.5)
//
// A [Gradient] is immutable after construction and safe for concurrent use.
package gradient
