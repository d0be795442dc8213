package layout

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Right returns the first x coordinate past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first y coordinate past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Text is a positioned string. X and Y locate the left end of the baseline,
// or the translation origin when Rotated is set. W and H are the measured
// size before rotation.
type Text struct {
	Text    string `json:"text"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	W       int    `json:"w"`
	H       int    `json:"h"`
	Rotated bool   `json:"rotated,omitempty"`
	Font    Font   `json:"font"`
}

// Term is one addend of the running sums that produce the image size.
type Term struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Terms is an ordered list of offsets.
type Terms []Term

// Sum returns the total of all terms.
func (t Terms) Sum() int {
	n := 0
	for _, term := range t {
		n += term.Size
	}
	return n
}

// Size returns the size of the named term, or 0.
func (t Terms) Size(name string) int {
	for _, term := range t {
		if term.Name == name {
			return term.Size
		}
	}
	return 0
}
