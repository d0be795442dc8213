package sink

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/fonts"
	"github.com/matzehuels/heatgrid/pkg/layout"
	"github.com/matzehuels/heatgrid/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale resamples the rendered image by s (default 1, no resampling).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the scene and encodes it as PNG.
func RenderPNG(scene *render.Scene, reg *fonts.Registry, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) || math.IsInf(r.scale, 0) {
		return nil, errors.Invalid("png scale must be positive, got %v", r.scale)
	}

	img, err := Rasterize(scene, reg)
	if err != nil {
		return nil, err
	}

	var out image.Image = img
	if r.scale != 1 {
		b := img.Bounds()
		w := max(1, int(math.Round(float64(b.Dx())*r.scale)))
		h := max(1, int(math.Round(float64(b.Dy())*r.scale)))
		out = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Rasterize draws the scene into a new RGBA image of the layout's size.
func Rasterize(scene *render.Scene, reg *fonts.Registry) (*image.RGBA, error) {
	if scene == nil || scene.Layout == nil {
		return nil, errors.Invalid("scene has no layout")
	}
	if reg == nil {
		reg = fonts.Default()
	}
	s := newRasterSurface(scene.Layout.Width, scene.Layout.Height, reg)
	defer s.close()

	if err := render.Draw(s, scene); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	img, ok := s.dc.Image().(*image.RGBA)
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal, "unexpected raster type %T", s.dc.Image())
	}
	return img, nil
}

// rasterSurface draws onto a gg context. The first text error is kept and
// reported after drawing, since Surface methods do not return errors.
type rasterSurface struct {
	dc    *gg.Context
	reg   *fonts.Registry
	faces map[layout.Font]font.Face
	err   error
}

func newRasterSurface(w, h int, reg *fonts.Registry) *rasterSurface {
	return &rasterSurface{
		dc:    gg.NewContext(w, h),
		reg:   reg,
		faces: make(map[layout.Font]font.Face),
	}
}

func (s *rasterSurface) FillRect(r layout.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	s.dc.Fill()
}

func (s *rasterSurface) DrawText(t layout.Text, c color.Color) {
	if t.Text == "" {
		return
	}
	face, err := s.face(t.Font)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	x, y := float64(t.X), float64(t.Y)
	if !t.Rotated {
		s.dc.DrawString(t.Text, x, y)
		return
	}
	s.dc.Push()
	s.dc.RotateAbout(gg.Radians(-90), x, y)
	s.dc.DrawString(t.Text, x, y)
	s.dc.Pop()
}

func (s *rasterSurface) DrawImage(img image.Image, x, y int) {
	s.dc.DrawImage(img, x, y)
}

func (s *rasterSurface) face(f layout.Font) (font.Face, error) {
	if face, ok := s.faces[f]; ok {
		return face, nil
	}
	face, err := s.reg.NewFace(f)
	if err != nil {
		return nil, err
	}
	s.faces[f] = face
	return face, nil
}

func (s *rasterSurface) close() {
	for _, face := range s.faces {
		_ = face.Close()
	}
}
