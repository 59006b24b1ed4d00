package image

import (
	"image"
	"image/color"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pbnjay/pixcoords/internal/bitfont"
)

// DefaultMarker is written for lit pixels unless Options.Marker is set.
const DefaultMarker = 'X'

type Options struct {
	// Offset and Size select a subregion of the sheet. A zero Size
	// component extends the region to the image edge.
	Offset image.Point
	Size   image.Point
	Marker rune
}

// Decode extracts one glyph per rune of alphabet from a sheet whose glyphs
// are separated by empty pixel columns.
func Decode(r io.Reader, alphabet string, options *Options) (*bitfont.Font, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	var offset image.Point
	var size image.Point
	marker := DefaultMarker
	if options != nil {
		offset = options.Offset
		size = options.Size
		if options.Marker != 0 {
			marker = options.Marker
		}
	}

	bounds := img.Bounds()
	bounds.Min = offset
	if size.X != 0 {
		bounds.Max.X = bounds.Min.X + size.X
	}

	if size.Y != 0 {
		bounds.Max.Y = bounds.Min.Y + size.Y
	}

	// generate a greyscale histogram of the image
	pxc := 0
	clrs := make(map[uint8]int)
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			gc := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			clrs[gc.Y]++
			pxc++
		}
	}

	// find a threshold pixel count for what colors to ignore as background
	// (ie assumes background image is fairly solid and colors occur much
	//  more often than font colors)
	pxt := pxc
	pxd := 0
	for pxd < (pxc/2) && pxt > 0 {
		pxt /= 2
		pxd = 0
		for _, n := range clrs {
			if n > pxt {
				pxd += n
			}
		}
	}
	lit := func(x, y int) bool {
		gc := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
		return clrs[gc.Y] <= pxt
	}

	height := bounds.Dy()
	glyphs := make(map[rune][]string)
	curAlpha := alphabet
	var rows []strings.Builder

	emit := func() {
		if rows == nil {
			return
		}
		if len(curAlpha) > 0 {
			glyph := make([]string, height)
			for y := range rows {
				glyph[y] = rows[y].String()
			}
			r, nbytes := utf8.DecodeRuneInString(curAlpha)
			glyphs[r] = glyph
			curAlpha = curAlpha[nbytes:]
		}
		rows = nil
	}

	// scan across the image in the crop region, saving pixels as you go.
	// an empty column of pixels is a character boundary: the glyph seen so
	// far goes to the next alphabet letter.
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		isEmpty := true
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			if lit(x, y) {
				isEmpty = false
				break
			}
		}
		if isEmpty {
			emit()
			continue
		}
		if rows == nil {
			rows = make([]strings.Builder, height)
		}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			if lit(x, y) {
				rows[y-bounds.Min.Y].WriteRune(marker)
			} else {
				rows[y-bounds.Min.Y].WriteRune(bitfont.Blank)
			}
		}
	}

	// the last glyph may run up to the edge of the region
	emit()

	return bitfont.New(glyphs)
}
