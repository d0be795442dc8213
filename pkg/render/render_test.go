package render

import (
	"image"
	"image/color"
	"testing"
	"unicode/utf8"

	"github.com/matzehuels/heatgrid/pkg/gradient"
	"github.com/matzehuels/heatgrid/pkg/grid"
	"github.com/matzehuels/heatgrid/pkg/layout"
)

type op struct {
	kind  string
	rect  layout.Rect
	text  string
	color color.Color
}

// recorder is a Surface that remembers every call.
type recorder struct {
	ops []op
}

func (r *recorder) FillRect(rect layout.Rect, c color.Color) {
	r.ops = append(r.ops, op{kind: "rect", rect: rect, color: c})
}

func (r *recorder) DrawText(t layout.Text, c color.Color) {
	r.ops = append(r.ops, op{kind: "text", text: t.Text, color: c})
}

func (r *recorder) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	r.ops = append(r.ops, op{kind: "image", rect: layout.Rect{X: x, Y: y, W: b.Dx(), H: b.Dy()}})
}

func (r *recorder) indexOfText(s string) int {
	for i, o := range r.ops {
		if o.kind == "text" && o.text == s {
			return i
		}
	}
	return -1
}

func (r *recorder) lastIndexOfText(s string) int {
	for i := len(r.ops) - 1; i >= 0; i-- {
		if o := r.ops[i]; o.kind == "text" && o.text == s {
			return i
		}
	}
	return -1
}

var halfSize = layout.MeasureFunc(func(text string, f layout.Font) (int, int) {
	if text == "" {
		return 0, 0
	}
	return utf8.RuneCountInString(text) * int(f.Size) / 2, int(f.Size)
})

func testScene(t *testing.T, mutate func(*layout.Options)) *Scene {
	t.Helper()
	cells := []grid.Cell{
		{Col: 0, Row: 0, Value: 1, Valid: true},
		{Col: 1, Row: 0, Value: 2, Valid: true},
		{Col: 0, Row: 1, Value: 3, Valid: true},
		{Col: 1, Row: 1},
	}
	b, err := grid.ComputeBounds(cells, nil, nil)
	if err != nil {
		t.Fatalf("ComputeBounds() error = %v", err)
	}
	opts := layout.DefaultOptions()
	opts.ShowGridValues = true
	opts.ShowGridlines = true
	if mutate != nil {
		mutate(&opts)
	}
	in := layout.Input{
		Title:   "Title",
		XTitle:  "X",
		YTitle:  "Y",
		XLabels: []string{"a", "b"},
		YLabels: []string{"r", "s"},
		Cells:   cells,
		Bounds:  b,
	}
	l, err := layout.Compute(in, opts, halfSize)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	g := gradient.Must(gradient.StopList{Colors: []color.RGBA{{0, 0, 255, 255}, {255, 0, 0, 255}}})
	return NewScene(l, opts, cells, b, g, DefaultStyle())
}

func TestDrawOrder(t *testing.T) {
	s := testScene(t, nil)
	var rec recorder
	if err := Draw(&rec, s); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	first := rec.ops[0]
	if first.kind != "rect" || first.rect != (layout.Rect{W: s.Layout.Width, H: s.Layout.Height}) {
		t.Fatalf("first op = %+v, want full background", first)
	}
	if first.color != White {
		t.Errorf("background = %v, want white", first.color)
	}

	order := []string{"Title", s.Layout.Legend.Entries[0].Label.Text, "X", "Y", "a", "r"}
	prev := -1
	for _, text := range order {
		i := rec.indexOfText(text)
		if i < 0 {
			t.Fatalf("text %q never drawn", text)
		}
		if i <= prev {
			t.Errorf("text %q drawn at %d, before previous element at %d", text, i, prev)
		}
		prev = i
	}
	if i := rec.lastIndexOfText(s.Layout.Values[0].Text.Text); i <= prev {
		t.Errorf("cell value drawn at %d, before axis labels at %d", i, prev)
	}

	last := rec.ops[len(rec.ops)-1]
	if last.kind != "rect" || last.color != s.GridlineColor {
		t.Errorf("last op = %+v, want a gridline", last)
	}
}

func TestDrawSkipsInvalidCells(t *testing.T) {
	s := testScene(t, func(o *layout.Options) {
		o.ShowLegend = false
		o.ShowGridlines = false
	})
	var rec recorder
	if err := Draw(&rec, s); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	cells := map[layout.Rect]color.Color{}
	for _, o := range rec.ops {
		if o.kind == "rect" && o.rect.W == s.Layout.CellWidth && o.rect.H == s.Layout.CellHeight {
			cells[o.rect] = o.color
		}
	}
	if len(cells) != 3 {
		t.Fatalf("drew %d cells, want 3", len(cells))
	}
	if _, ok := cells[s.Layout.CellRect(1, 1)]; ok {
		t.Error("invalid cell was drawn")
	}
	if got := cells[s.Layout.CellRect(0, 0)]; got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("min cell color = %v, want blue", got)
	}
	if got := cells[s.Layout.CellRect(0, 1)]; got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("max cell color = %v, want red", got)
	}
}

func TestDrawBlended(t *testing.T) {
	s := testScene(t, func(o *layout.Options) { o.BlendColors = true })
	var rec recorder
	if err := Draw(&rec, s); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	var images []op
	for _, o := range rec.ops {
		if o.kind == "image" {
			images = append(images, o)
		}
	}
	if len(images) != 1 {
		t.Fatalf("drew %d images, want 1", len(images))
	}
	if images[0].rect != s.Layout.Grid {
		t.Errorf("blend image at %+v, want %+v", images[0].rect, s.Layout.Grid)
	}
}

func TestBackground(t *testing.T) {
	grey := color.RGBA{1, 2, 3, 255}
	tests := []struct {
		name  string
		stops []color.RGBA
		fixed *color.RGBA
		want  color.RGBA
	}{
		{"dark gradient", []color.RGBA{{0, 0, 0, 255}, {200, 0, 0, 255}}, nil, White},
		{"white top", []color.RGBA{{0, 0, 0, 255}, {250, 250, 250, 255}}, nil, AlternativeBackground},
		{"one channel low", []color.RGBA{{0, 0, 0, 255}, {250, 240, 250, 255}}, nil, White},
		{"fixed", []color.RGBA{{0, 0, 0, 255}, {250, 250, 250, 255}}, &grey, grey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scene{
				Gradient: gradient.Must(gradient.StopList{Colors: tt.stops}),
				Style:    Style{Background: tt.fixed},
			}
			if got := s.Background(); got != tt.want {
				t.Errorf("Background() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawRejectsIncompleteScene(t *testing.T) {
	var rec recorder
	if err := Draw(&rec, nil); err == nil {
		t.Error("Draw(nil scene) should fail")
	}
	if err := Draw(&rec, &Scene{Layout: &layout.Layout{}}); err == nil {
		t.Error("Draw without gradient should fail")
	}
	if err := Draw(nil, &Scene{}); err == nil {
		t.Error("Draw(nil surface) should fail")
	}
}
