package gradient

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/heatgrid/pkg/errors"
)

// Direction is the sweep direction of a [HueWheel].
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// String returns "clockwise" or "counterclockwise".
func (d Direction) String() string {
	if d == CounterClockwise {
		return "counterclockwise"
	}
	return "clockwise"
}

// ParseDirection parses "clockwise"/"cw" or "counterclockwise"/"ccw".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "clockwise", "cw", "":
		return Clockwise, nil
	case "counterclockwise", "counter-clockwise", "ccw":
		return CounterClockwise, nil
	}
	return 0, errors.Invalid("unknown hue direction %q", s)
}

// Spec describes a gradient. It is implemented only by [StopList] and [HueWheel].
type Spec interface {
	isSpec()
}

// StopList interpolates linearly between evenly spaced color stops.
type StopList struct {
	Colors []color.RGBA
}

// HueWheel sweeps the hue circle from Start to End degrees.
type HueWheel struct {
	Start      float64 // degrees, [0,360]
	End        float64 // degrees, [0,360]
	Saturation float64 // [0,1]
	Brightness float64 // [0,1]
	Direction  Direction
}

func (StopList) isSpec() {}
func (HueWheel) isSpec() {}

type kind int

const (
	kindStops kind = iota
	kindHue
)

// Gradient is a validated, immutable color mapping.
type Gradient struct {
	kind  kind
	stops []color.RGBA

	hueStart   float64 // fraction of a turn
	hueRange   float64 // fraction of a turn
	saturation float64
	brightness float64
	direction  Direction
}

// New validates spec and builds a Gradient from it.
func New(spec Spec) (*Gradient, error) {
	switch s := spec.(type) {
	case StopList:
		return newStops(s)
	case *StopList:
		if s == nil {
			break
		}
		return newStops(*s)
	case HueWheel:
		return newHue(s)
	case *HueWheel:
		if s == nil {
			break
		}
		return newHue(*s)
	}
	return nil, errors.Invalid("gradient spec is missing")
}

// Must is like New but panics on error.
func Must(spec Spec) *Gradient {
	g, err := New(spec)
	if err != nil {
		panic(err)
	}
	return g
}

func newStops(s StopList) (*Gradient, error) {
	if len(s.Colors) < 2 {
		return nil, errors.Invalid("gradient needs at least 2 color stops, got %d", len(s.Colors))
	}
	stops := make([]color.RGBA, len(s.Colors))
	copy(stops, s.Colors)
	return &Gradient{kind: kindStops, stops: stops}, nil
}

func newHue(s HueWheel) (*Gradient, error) {
	if s.Start < 0 || s.Start > 360 {
		return nil, errors.Invalid("hue start must be within [0,360], got %v", s.Start)
	}
	if s.End < 0 || s.End > 360 {
		return nil, errors.Invalid("hue end must be within [0,360], got %v", s.End)
	}
	if s.Start == s.End {
		return nil, errors.Invalid("hue start and end cannot both be %v", s.Start)
	}
	if s.Saturation < 0 || s.Saturation > 1 {
		return nil, errors.Invalid("saturation must be within [0,1], got %v", s.Saturation)
	}
	if s.Brightness < 0 || s.Brightness > 1 {
		return nil, errors.Invalid("brightness must be within [0,1], got %v", s.Brightness)
	}

	start, end := s.Start, s.End
	// Keep the sweep monotonic across the 0/360 boundary.
	switch {
	case s.Direction == Clockwise && start > end:
		end += 360
	case s.Direction == CounterClockwise && end > start:
		start += 360
	}

	return &Gradient{
		kind:       kindHue,
		hueStart:   start / 360,
		hueRange:   math.Abs(start/360 - end/360),
		saturation: s.Saturation,
		brightness: s.Brightness,
		direction:  s.Direction,
	}, nil
}

// Color returns the color for v, which must lie in [0,1].
func (g *Gradient) Color(v float64) (color.RGBA, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return color.RGBA{}, errors.Invalid("gradient value %v is out of bounds [0,1]", v)
	}
	if g.kind == kindHue {
		return g.hueColor(v), nil
	}
	return g.stopColor(v), nil
}

// MustColor is like Color but panics on an out-of-range value.
func (g *Gradient) MustColor(v float64) color.RGBA {
	c, err := g.Color(v)
	if err != nil {
		panic(err)
	}
	return c
}

func (g *Gradient) stopColor(v float64) color.RGBA {
	pos := v * float64(len(g.stops)-1)
	i := int(math.Floor(pos))
	if i >= len(g.stops)-1 {
		return g.stops[len(g.stops)-1]
	}
	return lerp(g.stops[i], g.stops[i+1], pos-float64(i))
}

// lerp truncates each channel toward zero.
func lerp(a, b color.RGBA, f float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-f) + float64(y)*f)
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

func (g *Gradient) hueColor(v float64) color.RGBA {
	hue := v * g.hueRange
	if g.direction == Clockwise {
		hue = g.hueStart + hue
	} else {
		hue = g.hueStart - hue
	}
	hue -= math.Floor(hue)
	r, gr, b := colorful.Hsv(hue*360, g.saturation, g.brightness).RGB255()
	return color.RGBA{R: r, G: gr, B: b, A: 0xff}
}

// Stops returns a copy of the color stops, or nil for a hue wheel.
func (g *Gradient) Stops() []color.RGBA {
	if g.kind != kindStops {
		return nil
	}
	out := make([]color.RGBA, len(g.stops))
	copy(out, g.stops)
	return out
}

// Sample returns n colors evenly spaced across the gradient, n >= 2.
func (g *Gradient) Sample(n int) []color.RGBA {
	if n < 2 {
		n = 2
	}
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = g.MustColor(float64(i) / float64(n-1))
	}
	return out
}

// String describes the gradient model.
func (g *Gradient) String() string {
	if g.kind == kindHue {
		return fmt.Sprintf("hue-wheel(%.0f°, %.0f°, %s)", g.hueStart*360, g.hueRange*360, g.direction)
	}
	return fmt.Sprintf("stops(%d)", len(g.stops))
}
