// Package face exposes a pixcoords table as a golang.org/x/image/font.Face,
// so a string can be drawn with font.Drawer.
package face

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/pbnjay/pixcoords"
)

// Face draws every lit cell as a Scale x Scale opaque block. The baseline
// sits under the last glyph row, so the ascent is the full glyph height and
// there is no descent.
type Face struct {
	table *pixcoords.Table
	scale int
}

var _ font.Face = (*Face)(nil)

// New returns a face for t. A scale below 1 is treated as 1.
func New(t *pixcoords.Table, scale int) *Face {
	if scale < 1 {
		scale = 1
	}
	return &Face{table: t, scale: scale}
}

func (f *Face) Close() error { return nil }

func (f *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	coords, err := f.table.Resolve(r)
	if err != nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	width, _ := f.table.Width(r)
	adv, _ := f.table.Advance(r)

	w, h := width*f.scale, f.table.Height()*f.scale
	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	for _, c := range coords {
		for dy := 0; dy < f.scale; dy++ {
			row := alpha.PixOffset(c.X*f.scale, c.Y*f.scale+dy)
			for dx := 0; dx < f.scale; dx++ {
				alpha.Pix[row+dx] = 0xff
			}
		}
	}

	x, y := dot.X.Round(), dot.Y.Round()
	dr = image.Rect(x, y-h, x+w, y)
	return dr, alpha, image.Point{}, fixed.I(adv * f.scale), true
}

func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	width, err := f.table.Width(r)
	if err != nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	adv, _ := f.table.Advance(r)
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(0, -f.table.Height()*f.scale),
		Max: fixed.P(width*f.scale, 0),
	}
	return bounds, fixed.I(adv * f.scale), true
}

func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	adv, err := f.table.Advance(r)
	if err != nil {
		return 0, false
	}
	return fixed.I(adv * f.scale), true
}

// Kern is always zero; the table has no kerning.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *Face) Metrics() font.Metrics {
	h := fixed.I(f.table.Height() * f.scale)
	return font.Metrics{
		Height:    h,
		Ascent:    h,
		CapHeight: h,
	}
}
