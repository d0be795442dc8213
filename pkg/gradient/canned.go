package gradient

import (
	"image/color"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/heatgrid/pkg/errors"
)

// Canned gradient names, in display order.
const (
	Smooth         = "smooth"
	Extended       = "extended"
	Basic          = "basic"
	TwoColour      = "two-colour"
	ColourBlind    = "colour-blind"
	BlackRedOrange = "black-red-orange"
	WhiteHot       = "white-hot"
	Cubehelix      = "cubehelix"
	Grey           = "grey"
)

// Default is the gradient used when none is configured.
const Default = Basic

var cannedSpecs = map[string]Spec{
	Smooth: HueWheel{Start: 240, End: 360, Saturation: 1, Brightness: 1, Direction: CounterClockwise},
	Extended: mustStops(
		"#3288bd", "#65c1a5", "#91d5a6", "#c9e89a", "#eaf79b", "#fcffba",
		"#fffbba", "#fee492", "#fdc771", "#fda159", "#f46c43", "#d53e4f",
	),
	Basic:          mustStops("#1d4877", "#1b8a5a", "#fbb021", "#f68838", "#ee3e32"),
	TwoColour:      mustStops("#0000FF", "#FF0000"),
	ColourBlind:    mustStops("#e4ff7a", "#ffe81a", "#ffbd00", "#ffa000", "#fc7f00"),
	BlackRedOrange: mustStops("#000000", "#8e060a", "#fda32b"),
	WhiteHot:       mustStops("#000000", "#8e060a", "#fda32b", "#FFCF9F", "#FEF9FF"),
	Cubehelix: mustStops(
		"#000000", "#090309", "#100614", "#160a1f", "#190f2b", "#1a1536", "#1a1c3f", "#182448",
		"#152d4e", "#123752", "#104153", "#0e4b53", "#0d544f", "#0e5d4b", "#126644", "#176d3d",
		"#207336", "#2a782f", "#387b29", "#477d25", "#577d23", "#697d24", "#7b7c28", "#8d7a2f",
		"#9e7938", "#ae7745", "#bd7654", "#c87564", "#d27677", "#d9788a", "#dd7b9d", "#de80af",
		"#de86c1", "#db8dd1", "#d795de", "#d29fe9", "#cca9f1", "#c7b3f7", "#c3bdfa", "#c0c8fb",
		"#bed1fa", "#bfdaf8", "#c2e2f6", "#c7e9f3", "#cdeff1", "#d6f3f0", "#e0f7f0", "#eafaf3",
		"#f5fdf8", "#ffffff",
	),
	Grey: mustStops("#E3E3E3", "#000000"),
}

var cannedOrder = []string{
	Smooth, Extended, Basic, TwoColour, ColourBlind, BlackRedOrange, WhiteHot, Cubehelix, Grey,
}

// Names returns the canned gradient names in display order.
func Names() []string { return slices.Clone(cannedOrder) }

// NamedSpec returns the spec of a canned gradient.
func NamedSpec(name string) (Spec, error) {
	spec, ok := cannedSpecs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Invalid("unknown gradient %q (want one of %s)", name, strings.Join(cannedOrder, ", "))
	}
	return spec, nil
}

// Named returns a canned gradient by name.
func Named(name string) (*Gradient, error) {
	spec, err := NamedSpec(name)
	if err != nil {
		return nil, err
	}
	return New(spec)
}

// Canned returns the canned gradient at index i of [Names].
func Canned(i int) (*Gradient, error) {
	if i < 0 || i >= len(cannedOrder) {
		return nil, errors.Invalid("canned gradient index must be within [0,%d], got %d", len(cannedOrder)-1, i)
	}
	return Named(cannedOrder[i])
}

// ParseHex parses a "#rrggbb" or "#rgb" color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// StopsFromHex builds a StopList from hex strings.
func StopsFromHex(hexes ...string) (StopList, error) {
	colors := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return StopList{}, err
		}
		colors = append(colors, c)
	}
	return StopList{Colors: colors}, nil
}

func mustStops(hexes ...string) StopList {
	s, err := StopsFromHex(hexes...)
	if err != nil {
		panic(err)
	}
	return s
}
