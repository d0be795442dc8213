package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/gradient"
	"github.com/matzehuels/heatgrid/pkg/layout"
	"github.com/matzehuels/heatgrid/pkg/render"
)

const sample = `
[chart]
title = "Monthly revenue"

[layout]
cell_width = 60
show_gridlines = true
gridline_color = "#cccccc"
legend_steps = 7
lower_bound = 500000.0
blend_colors = true

[layout.fonts.title]
size = 28.0

[style]
background = "#fafafa"
legend_color = "#333333"

[gradient]
stops = ["#0000ff", "#ff0000"]
`

func TestApply(t *testing.T) {
	c, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	o := layout.DefaultOptions()
	if err := c.Apply(&o); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if o.CellWidth != 60 {
		t.Errorf("CellWidth = %d, want 60", o.CellWidth)
	}
	if o.CellHeight != layout.DefaultCellSize {
		t.Errorf("CellHeight = %d, want default", o.CellHeight)
	}
	if !o.ShowGridlines || !o.BlendColors {
		t.Error("boolean overrides not applied")
	}
	if o.GridlineColor != (color.RGBA{0xcc, 0xcc, 0xcc, 0xff}) {
		t.Errorf("GridlineColor = %v", o.GridlineColor)
	}
	if o.LegendSteps != 7 {
		t.Errorf("LegendSteps = %d, want 7", o.LegendSteps)
	}
	if o.LowerBound == nil || *o.LowerBound != 500000 {
		t.Errorf("LowerBound = %v, want 500000", o.LowerBound)
	}
	if o.UpperBound != nil {
		t.Errorf("UpperBound = %v, want unset", *o.UpperBound)
	}
	if o.Fonts.Title.Size != 28 || !o.Fonts.Title.Bold {
		t.Errorf("title font = %+v, want size 28 and default bold", o.Fonts.Title)
	}
	if err := o.Validate(); err != nil {
		t.Errorf("applied options do not validate: %v", err)
	}

	title, xTitle, _ := c.Titles()
	if title == nil || *title != "Monthly revenue" || xTitle != nil {
		t.Errorf("Titles() = %v, %v", title, xTitle)
	}
}

func TestRenderStyle(t *testing.T) {
	c, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	s, err := c.RenderStyle(render.DefaultStyle())
	if err != nil {
		t.Fatalf("RenderStyle() error = %v", err)
	}
	if s.Background == nil || *s.Background != (color.RGBA{0xfa, 0xfa, 0xfa, 0xff}) {
		t.Errorf("Background = %v", s.Background)
	}
	if s.LegendColor != (color.RGBA{0x33, 0x33, 0x33, 0xff}) {
		t.Errorf("LegendColor = %v", s.LegendColor)
	}
	if s.TitleColor != render.Black {
		t.Errorf("TitleColor = %v, want default", s.TitleColor)
	}
}

func TestBuildGradient(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantNil bool
		code    errors.Code
		check   func(*testing.T, *gradient.Gradient)
	}{
		{name: "unset", in: ``, wantNil: true},
		{name: "named", in: "[gradient]\nname = \"grey\"", check: func(t *testing.T, g *gradient.Gradient) {
			if len(g.Stops()) == 0 {
				t.Error("named gradient has no stops")
			}
		}},
		{name: "stops", in: "[gradient]\nstops = [\"#000000\", \"#ffffff\"]", check: func(t *testing.T, g *gradient.Gradient) {
			if got := g.MustColor(1); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
				t.Errorf("MustColor(1) = %v", got)
			}
		}},
		{name: "hue", in: "[gradient.hue]\nstart = 0.0\nend = 120.0\nsaturation = 1.0\nbrightness = 1.0\ndirection = \"ccw\"", check: func(t *testing.T, g *gradient.Gradient) {
			if len(g.Stops()) != 0 {
				t.Error("hue gradient should have no stops")
			}
		}},
		{name: "two kinds", in: "[gradient]\nname = \"grey\"\nstops = [\"#000000\", \"#ffffff\"]", code: errors.ErrCodeInvalidArgument},
		{name: "unknown name", in: "[gradient]\nname = \"plaid\"", code: errors.ErrCodeInvalidArgument},
		{name: "one stop", in: "[gradient]\nstops = [\"#000000\"]", code: errors.ErrCodeInvalidArgument},
		{name: "bad direction", in: "[gradient.hue]\nstart = 0.0\nend = 90.0\nsaturation = 1.0\nbrightness = 1.0\ndirection = \"up\"", code: errors.ErrCodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			g, err := c.BuildGradient()
			if tt.code != "" {
				if !errors.Is(err, tt.code) {
					t.Errorf("BuildGradient() error = %v, want code %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildGradient() error = %v", err)
			}
			if tt.wantNil {
				if g != nil {
					t.Errorf("BuildGradient() = %v, want nil", g)
				}
				return
			}
			tt.check(t, g)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"syntax", "[layout\ncell_width = 1", errors.ErrCodeInvalidFormat},
		{"type", "[layout]\ncell_width = \"wide\"", errors.ErrCodeInvalidFormat},
		{"unknown key", "[layout]\ncell_widht = 40", errors.ErrCodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want code %s", err, tt.code)
			}
		})
	}

	c, err := Decode(strings.NewReader("[style]\nbackground = \"nope\""))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if _, err := c.RenderStyle(render.DefaultStyle()); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("RenderStyle(bad hex) error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Layout.CellWidth == nil || *c.Layout.CellWidth != 60 {
		t.Errorf("cell_width = %v", c.Layout.CellWidth)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v", err)
	}
}
