// Package blend renders heatmap cells as a smoothly blended bitmap.
//
// Blending runs in two resolutions. A miniature image with one pixel per
// cell is upscaled by the blend scale with bilinear filtering, which blends
// neighboring cell colors. The bilinear pass also bleeds color into cells
// that have no data, so an opacity mask with one opaque block per valid cell
// is applied with a destination-in composite. The masked image is then
// scaled to the grid size with nearest-neighbor sampling, which keeps the
// blended edges from being smoothed a second time.
//
// Every intermediate stage is kept in the [Result] so callers and tests can
// inspect it.
package blend

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/matzehuels/heatgrid/pkg/errors"
	"github.com/matzehuels/heatgrid/pkg/grid"
)

// Input describes a blend pass.
type Input struct {
	Cells   []grid.Cell
	Columns int
	Rows    int
	// Scale is the intermediate sampling density, within [2,20].
	Scale int
	// Width and Height are the pixel size of the final bitmap.
	Width  int
	Height int
	// Color maps a cell value to its color.
	Color func(value float64) (color.RGBA, error)
}

// Result holds every stage of a blend pass.
type Result struct {
	Mini     *image.RGBA  // Columns x Rows, one pixel per cell
	Mask     *image.Alpha // Columns*Scale x Rows*Scale
	Bilinear *image.RGBA  // Mini upscaled by Scale, then masked
	Final    *image.RGBA  // Width x Height
}

// Compose runs the blend pass described by in.
func Compose(in Input) (*Result, error) {
	if in.Scale < 2 || in.Scale > 20 {
		return nil, errors.Invalid("blend scale must be within [2,20], got %d", in.Scale)
	}
	if in.Columns < 1 || in.Rows < 1 {
		return nil, errors.Invalid("blend grid must have at least one cell, got %dx%d", in.Columns, in.Rows)
	}
	if in.Width < 1 || in.Height < 1 {
		return nil, errors.Invalid("blend target must be at least 1x1, got %dx%d", in.Width, in.Height)
	}
	if in.Color == nil {
		return nil, errors.Invalid("blend color function is missing")
	}

	s := in.Scale
	mini := image.NewRGBA(image.Rect(0, 0, in.Columns, in.Rows))
	mask := image.NewAlpha(image.Rect(0, 0, in.Columns*s, in.Rows*s))
	opaque := image.NewUniform(color.Alpha{A: 0xff})

	for _, c := range in.Cells {
		if !c.Valid {
			continue
		}
		if c.Col < 0 || c.Col >= in.Columns || c.Row < 0 || c.Row >= in.Rows {
			return nil, errors.Data("cell (%d,%d) is outside the %dx%d grid", c.Col, c.Row, in.Columns, in.Rows)
		}
		col, err := in.Color(c.Value)
		if err != nil {
			return nil, err
		}
		mini.SetRGBA(c.Col, c.Row, col)
		block := image.Rect(c.Col*s, c.Row*s, (c.Col+1)*s, (c.Row+1)*s)
		draw.Draw(mask, block, opaque, image.Point{}, draw.Src)
	}

	bilinear := image.NewRGBA(mask.Bounds())
	draw.BiLinear.Scale(bilinear, bilinear.Bounds(), mini, mini.Bounds(), draw.Src, nil)
	DstIn(bilinear, mask)

	final := image.NewRGBA(image.Rect(0, 0, in.Width, in.Height))
	draw.NearestNeighbor.Scale(final, final.Bounds(), bilinear, bilinear.Bounds(), draw.Src, nil)

	return &Result{Mini: mini, Mask: mask, Bilinear: bilinear, Final: final}, nil
}

// DstIn applies a destination-in composite: every pixel of dst keeps its
// color and is scaled by the alpha of the matching mask pixel. dst is
// premultiplied, so all four channels scale together. Pixels outside mask
// become fully transparent.
func DstIn(dst *image.RGBA, mask *image.Alpha) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := uint32(0)
			if (image.Point{X: x, Y: y}).In(mask.Bounds()) {
				a = uint32(mask.AlphaAt(x, y).A)
			}
			if a == 0xff {
				continue
			}
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			for k := range px {
				px[k] = uint8(uint32(px[k]) * a / 0xff)
			}
		}
	}
}
