package heatmap

import (
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/matzehuels/heatgrid/pkg/axis"
	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/fonts"
	"github.com/matzehuels/heatgrid/pkg/gradient"
	"github.com/matzehuels/heatgrid/pkg/layout"
)

var halfSize = layout.MeasureFunc(func(text string, f layout.Font) (int, int) {
	if text == "" {
		return 0, 0
	}
	return utf8.RuneCountInString(text) * int(f.Size) / 2, int(f.Size)
})

func ptr(v float64) *float64 { return &v }

func revenueChart(t *testing.T) (*Chart[int, int], []Point[int, int]) {
	t.Helper()
	g, err := gradient.New(gradient.StopList{Colors: []color.RGBA{
		{0x1d, 0x48, 0x77, 0xff},
		{0x1b, 0x8a, 0x5a, 0xff},
		{0xfb, 0xb0, 0x21, 0xff},
		{0xf6, 0x88, 0x38, 0xff},
		{0xee, 0x3e, 0x32, 0xff},
	}})
	if err != nil {
		t.Fatalf("gradient.New() error = %v", err)
	}
	opts := layout.DefaultOptions()
	opts.LegendSteps = 7
	opts.LowerBound = ptr(500000)
	opts.UpperBound = ptr(3500000)

	var points []Point[int, int]
	for i := range 80 {
		month, year := i%12+1, 2018+i/12
		points = append(points, P(month, year, 500000+float64(i)*3000000/79))
	}
	return &Chart[int, int]{
		Title:    "Monthly revenue",
		XAxis:    axis.Ints("Month", 1, 12),
		YAxis:    axis.Ints("Year", 2018, 2025),
		Options:  &opts,
		Gradient: g,
	}, points
}

func TestSceneMonthsByYears(t *testing.T) {
	chart, points := revenueChart(t)

	for _, tc := range []struct {
		name string
		m    layout.Measurer
	}{
		{"fixed width", halfSize},
		{"go fonts", fonts.Default()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := chart.Scene(points, tc.m)
			if err != nil {
				t.Fatalf("Scene() error = %v", err)
			}
			l := s.Layout

			if l.Columns != 12 || l.Rows != 8 {
				t.Errorf("grid = %dx%d, want 12x8", l.Columns, l.Rows)
			}
			entries := l.Legend.Entries
			if len(entries) != 7 {
				t.Fatalf("legend entries = %d, want 7", len(entries))
			}
			// Entries run top to bottom, so the minimum is last.
			if got := entries[len(entries)-1].Label.Text; !strings.HasPrefix(got, "<=") {
				t.Errorf("minimum legend label = %q, want <= prefix", got)
			}
			if got := entries[0].Label.Text; !strings.HasPrefix(got, ">=") {
				t.Errorf("maximum legend label = %q, want >= prefix", got)
			}
			for _, e := range entries[1 : len(entries)-1] {
				if strings.HasPrefix(e.Label.Text, "<=") || strings.HasPrefix(e.Label.Text, ">=") {
					t.Errorf("interior legend label %q carries a clamp prefix", e.Label.Text)
				}
			}
			if l.Width != l.Horizontal.Sum() {
				t.Errorf("Width = %d, want horizontal sum %d", l.Width, l.Horizontal.Sum())
			}
			if l.Height != l.Vertical.Sum() {
				t.Errorf("Height = %d, want vertical sum %d", l.Height, l.Vertical.Sum())
			}
		})
	}
}

func TestRender(t *testing.T) {
	chart, points := revenueChart(t)

	img, err := chart.Render(points, nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	s, err := chart.Scene(points, fonts.Default())
	if err != nil {
		t.Fatalf("Scene() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != s.Layout.Width || b.Dy() != s.Layout.Height {
		t.Errorf("image = %dx%d, want %dx%d", b.Dx(), b.Dy(), s.Layout.Width, s.Layout.Height)
	}

	first := s.Layout.CellRect(0, 0)
	want := chart.Gradient.MustColor(0)
	if got := img.RGBAAt(first.CenterX(), first.CenterY()); got != want {
		t.Errorf("first cell = %v, want %v", got, want)
	}
}

func TestSceneCells(t *testing.T) {
	opts := layout.DefaultOptions()
	chart := &Chart[string, string]{
		XAxis:   axis.Strings("", "a", "b"),
		YAxis:   axis.Strings("", "x", "y"),
		Options: &opts,
	}
	points := []Point[string, string]{
		P("a", "x", 1),
		{X: "b", Y: "x"},
		P("b", "y", 2),
		P("b", "y", 4),
		{X: "b", Y: "y"},
	}

	s, err := chart.Scene(points, halfSize)
	if err != nil {
		t.Fatalf("Scene() error = %v", err)
	}
	if len(s.Cells) != 4 {
		t.Fatalf("cells = %d, want 4", len(s.Cells))
	}
	if c := s.Cells[1]; c.Valid {
		t.Errorf("nil point produced a valid cell: %+v", c)
	}
	if c := s.Cells[3]; !c.Valid || c.Value != 4 {
		t.Errorf("cell (1,1) = %+v, want last non-nil value 4", c)
	}
	if s.Bounds.Min != 1 || s.Bounds.Max != 4 {
		t.Errorf("bounds = %+v, want 1..4", s.Bounds)
	}
	if s.Gradient == nil {
		t.Error("default gradient not applied")
	}
}

func TestSceneUniformValues(t *testing.T) {
	opts := layout.DefaultOptions()
	g := gradient.Must(gradient.StopList{Colors: []color.RGBA{{0, 0, 0, 255}, {9, 9, 9, 255}}})
	chart := &Chart[int, int]{
		XAxis:    axis.Ints("", 1, 3),
		YAxis:    axis.Ints("", 1, 1),
		Options:  &opts,
		Gradient: g,
	}
	points := []Point[int, int]{P(1, 1, 7), P(2, 1, 7), P(3, 1, 7)}

	s, err := chart.Scene(points, halfSize)
	if err != nil {
		t.Fatalf("Scene() error = %v", err)
	}
	for _, c := range s.Cells {
		col, err := s.CellColor(c.Value)
		if err != nil {
			t.Fatalf("CellColor() error = %v", err)
		}
		if col != g.MustColor(1) {
			t.Errorf("cell %d color = %v, want maximum color", c.Col, col)
		}
	}
}

func TestSceneErrors(t *testing.T) {
	opts := layout.DefaultOptions()
	bad := layout.DefaultOptions()
	bad.CellWidth = 0

	xs := axis.Strings("", "a")
	ys := axis.Strings("", "x")
	one := []Point[string, string]{P("a", "x", 1)}

	tests := []struct {
		name   string
		chart  *Chart[string, string]
		points []Point[string, string]
		code   errors.Code
	}{
		{"nil options", &Chart[string, string]{XAxis: xs, YAxis: ys}, one, errors.ErrCodeInvalidArgument},
		{"bad options", &Chart[string, string]{XAxis: xs, YAxis: ys, Options: &bad}, one, errors.ErrCodeInvalidArgument},
		{"empty x axis", &Chart[string, string]{XAxis: axis.Strings(""), YAxis: ys, Options: &opts}, one, errors.ErrCodeInvalidArgument},
		{"nil y axis", &Chart[string, string]{XAxis: xs, Options: &opts}, one, errors.ErrCodeInvalidArgument},
		{"no points", &Chart[string, string]{XAxis: xs, YAxis: ys, Options: &opts}, nil, errors.ErrCodeInvalidData},
		{"unknown x", &Chart[string, string]{XAxis: xs, YAxis: ys, Options: &opts}, []Point[string, string]{P("z", "x", 1)}, errors.ErrCodeInvalidData},
		{"unknown y", &Chart[string, string]{XAxis: xs, YAxis: ys, Options: &opts}, []Point[string, string]{P("a", "z", 1)}, errors.ErrCodeInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.chart.Scene(tt.points, halfSize)
			if !errors.Is(err, tt.code) {
				t.Errorf("Scene() error = %v, want code %s", err, tt.code)
			}
		})
	}
}
