package sink

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/fonts"
	"github.com/matzehuels/heatgrid/pkg/layout"
	"github.com/matzehuels/heatgrid/pkg/render"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	embedFonts bool
}

// WithEmbeddedFonts controls whether the Go fonts are embedded as @font-face
// rules (default true). Without them viewers fall back to system fonts and
// text may not match the computed layout exactly.
func WithEmbeddedFonts(embed bool) SVGOption {
	return func(r *svgRenderer) { r.embedFonts = embed }
}

// RenderSVG draws the scene as a standalone SVG document.
func RenderSVG(scene *render.Scene, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{embedFonts: true}
	for _, opt := range opts {
		opt(&r)
	}
	if scene == nil || scene.Layout == nil {
		return nil, errors.Invalid("scene has no layout")
	}
	l := scene.Layout

	var body bytes.Buffer
	s := &svgSurface{buf: &body}
	if err := render.Draw(s, scene); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	if r.embedFonts {
		renderFontFaces(&buf, usedFonts(l))
	}
	buf.Write(body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

type svgSurface struct {
	buf *bytes.Buffer
	err error
}

func (s *svgSurface) FillRect(r layout.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	fmt.Fprintf(s.buf, `  <rect x="%d" y="%d" width="%d" height="%d" %s/>`+"\n",
		r.X, r.Y, r.W, r.H, fillAttrs(c))
}

func (s *svgSurface) DrawText(t layout.Text, c color.Color) {
	if t.Text == "" {
		return
	}
	weight := "normal"
	if t.Font.Bold {
		weight = "bold"
	}
	transform := ""
	if t.Rotated {
		transform = fmt.Sprintf(` transform="rotate(-90 %d %d)"`, t.X, t.Y)
	}
	fmt.Fprintf(s.buf, `  <text x="%d" y="%d"%s font-family="%s" font-size="%g" font-weight="%s" %s>%s</text>`+"\n",
		t.X, t.Y, transform, escapeText(fonts.CSSFamily(t.Font.Family)), t.Font.Size, weight,
		fillAttrs(c), escapeText(t.Text))
}

func (s *svgSurface) DrawImage(img image.Image, x, y int) {
	var enc bytes.Buffer
	if err := imaging.Encode(&enc, img, imaging.PNG); err != nil {
		if s.err == nil {
			s.err = errors.Wrap(errors.ErrCodeInternal, err, "encode embedded image")
		}
		return
	}
	b := img.Bounds()
	fmt.Fprintf(s.buf, `  <image x="%d" y="%d" width="%d" height="%d" href="data:image/png;base64,%s"/>`+"\n",
		x, y, b.Dx(), b.Dy(), base64.StdEncoding.EncodeToString(enc.Bytes()))
}

func fillAttrs(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba.A == 0xff {
		return fmt.Sprintf(`fill="#%02x%02x%02x"`, rgba.R, rgba.G, rgba.B)
	}
	if rgba.A == 0 {
		return `fill="none"`
	}
	// color.RGBA is alpha-premultiplied; SVG wants straight color.
	a := float64(rgba.A) / 0xff
	un := func(v uint8) uint8 { return uint8(float64(v)/a + 0.5) }
	return fmt.Sprintf(`fill="#%02x%02x%02x" fill-opacity="%.3f"`, un(rgba.R), un(rgba.G), un(rgba.B), a)
}

// escapeText escapes s for use in element text and attribute values.
func escapeText(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

type fontVariant struct {
	mono bool
	bold bool
}

// usedFonts lists the font variants referenced by the layout's text.
func usedFonts(l *layout.Layout) []fontVariant {
	seen := map[fontVariant]bool{}
	add := func(t layout.Text) {
		if t.Text != "" {
			seen[fontVariant{mono: fonts.IsMono(t.Font.Family), bold: t.Font.Bold}] = true
		}
	}
	for _, t := range l.Title {
		add(t)
	}
	if l.XTitle != nil {
		add(*l.XTitle)
	}
	if l.YTitle != nil {
		add(*l.YTitle)
	}
	for _, t := range l.XLabels {
		add(t)
	}
	for _, t := range l.YLabels {
		add(t)
	}
	if l.Legend != nil {
		for _, e := range l.Legend.Entries {
			if e.ShowLabel {
				add(e.Label)
			}
		}
	}
	for _, v := range l.Values {
		add(v.Text)
	}

	out := make([]fontVariant, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b fontVariant) int {
		return variantRank(a) - variantRank(b)
	})
	return out
}

func variantRank(v fontVariant) int {
	n := 0
	if v.mono {
		n += 2
	}
	if v.bold {
		n++
	}
	return n
}

func renderFontFaces(buf *bytes.Buffer, variants []fontVariant) {
	if len(variants) == 0 {
		return
	}
	buf.WriteString("  <defs><style>\n")
	for _, v := range variants {
		family, weight := fonts.FamilySans, "normal"
		if v.mono {
			family = fonts.FamilyMono
		}
		if v.bold {
			weight = "bold"
		}
		fmt.Fprintf(buf, "    @font-face { font-family: '%s'; font-weight: %s; src: url(data:font/ttf;base64,%s) format('truetype'); }\n",
			family, weight, fonts.TTFBase64(family, v.bold))
	}
	buf.WriteString("  </style></defs>\n")
}
