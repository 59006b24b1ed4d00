package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/pbnjay/pixcoords/internal/bitfont"
)

func assertGlyphRows(t *testing.T, ch rune, g bitfont.Glyph, values ...string) {
	t.Helper()
	if len(g.Rows) != len(values) {
		t.Fatalf("character %c: expected %d rows got %d", ch, len(values), len(g.Rows))
	}
	for i, v := range values {
		if g.Rows[i] != v {
			t.Errorf("character %c row %d: expected [%s] got [%s]", ch, i, v, g.Rows[i])
		}
	}
}

// abcSheet draws A, B and C in black on a white 16x9 sheet. The glyphs sit
// on rows 2-6 starting at columns 2, 6 and 10.
func abcSheet(t *testing.T) *bytes.Reader {
	t.Helper()
	glyphs := []struct {
		x    int
		rows []string
	}{
		{2, []string{" X ", "X X", "XXX", "X X", "X X"}},
		{6, []string{"XX ", "X X", "XX ", "X X", "XX "}},
		{10, []string{" XX ", "X  X", "X   ", "X  X", " XX "}},
	}

	img := image.NewGray(image.Rect(0, 0, 16, 9))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for _, g := range glyphs {
		for y, row := range g.rows {
			for x, c := range row {
				if c == 'X' {
					img.SetGray(g.x+x, 2+y, color.Gray{})
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParseFullRows(t *testing.T) {
	font, err := Decode(abcSheet(t), "AB", nil)
	if err != nil {
		t.Fatal(err)
	}

	if font.Height != 9 {
		t.Error("unexpected font height", font.Height)
	}

	if len(font.Glyphs) != 2 {
		t.Error("unexpected glyph count", len(font.Glyphs))
	}

	assertGlyphRows(t, 'A', font.Glyphs['A'], "   ", "   ", " X ", "X X", "XXX", "X X", "X X", "   ", "   ")
}

func TestParseNoOffset(t *testing.T) {
	font, err := Decode(abcSheet(t), "ABC", &Options{
		Offset: image.Point{0, 2},
		Size:   image.Point{0, 5},
	})
	if err != nil {
		t.Fatal(err)
	}

	if font.Width != 4 {
		t.Error("unexpected font width", font.Width)
	}

	if font.Height != 5 {
		t.Error("unexpected font height", font.Height)
	}

	if len(font.Glyphs) != 3 {
		t.Error("unexpected glyph count", len(font.Glyphs))
	}

	assertGlyphRows(t, 'A', font.Glyphs['A'], " X ", "X X", "XXX", "X X", "X X")
	assertGlyphRows(t, 'B', font.Glyphs['B'], "XX ", "X X", "XX ", "X X", "XX ")
	assertGlyphRows(t, 'C', font.Glyphs['C'], " XX ", "X  X", "X   ", "X  X", " XX ")
}

func TestParseOffset(t *testing.T) {
	font, err := Decode(abcSheet(t), "BC", &Options{
		// I only want BC so crop out A
		Offset: image.Point{6, 2},
		Size:   image.Point{0, 5},
		Marker: '#',
	})
	if err != nil {
		t.Fatal(err)
	}

	if font.Width != 4 {
		t.Error("unexpected font width", font.Width)
	}

	if len(font.Glyphs) != 2 {
		t.Error("unexpected glyph count", len(font.Glyphs))
	}

	assertGlyphRows(t, 'B', font.Glyphs['B'], "## ", "# #", "## ", "# #", "## ")
	assertGlyphRows(t, 'C', font.Glyphs['C'], " ## ", "#  #", "#   ", "#  #", " ## ")
}

func TestParseWindow(t *testing.T) {
	font, err := Decode(abcSheet(t), "BC", &Options{
		// we only want B, so crop out A and C
		Offset: image.Point{6, 2},
		Size:   image.Point{3, 5},
	})
	if err != nil {
		t.Fatal(err)
	}

	if font.Width != 3 {
		t.Error("unexpected font width", font.Width)
	}

	if font.Height != 5 {
		t.Error("unexpected font height", font.Height)
	}

	if len(font.Glyphs) != 1 {
		t.Error("unexpected glyph count", len(font.Glyphs))
	}

	assertGlyphRows(t, 'B', font.Glyphs['B'], "XX ", "X X", "XX ", "X X", "XX ")
}
