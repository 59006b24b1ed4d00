// Package bitfont holds the in-memory representation of a fixed-height
// bitmap font: one glyph per rune, each glyph a list of equal-length rows
// of cells.
package bitfont

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// Blank is the cell value of an unlit pixel. Any other rune is a lit marker.
const Blank = ' '

// ErrNoGlyphs is returned when a font would contain no glyphs at all.
var ErrNoGlyphs = errors.New("bitfont: font has no glyphs")

// RaggedGlyphError reports a glyph row whose width differs from the
// glyph's first row.
type RaggedGlyphError struct {
	Rune  rune
	Row   int
	Width int
	Want  int
}

func (e *RaggedGlyphError) Error() string {
	return fmt.Sprintf("bitfont: glyph %q row %d is %d cells wide, want %d", e.Rune, e.Row, e.Width, e.Want)
}

// GlyphHeightError reports a glyph whose row count differs from the font height.
type GlyphHeightError struct {
	Rune   rune
	Height int
	Want   int
}

func (e *GlyphHeightError) Error() string {
	return fmt.Sprintf("bitfont: glyph %q has %d rows, want %d", e.Rune, e.Height, e.Want)
}

type Glyph struct {
	Rows []string
}

// Width is the number of cells in each row.
func (g Glyph) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return utf8.RuneCountInString(g.Rows[0])
}

func (g Glyph) Height() int {
	return len(g.Rows)
}

type Font struct {
	Width, Height int
	Glyphs        map[rune]Glyph
}

// New builds a font from raw rows and validates it. The rows are copied.
func New(rows map[rune][]string) (*Font, error) {
	f := &Font{Glyphs: make(map[rune]Glyph, len(rows))}
	for r, g := range rows {
		f.Glyphs[r] = Glyph{Rows: append([]string(nil), g...)}
	}
	for _, r := range f.Runes() {
		g := f.Glyphs[r]
		if w := g.Width(); w > f.Width {
			f.Width = w
		}
		if h := g.Height(); h > f.Height {
			f.Height = h
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks that every glyph has Height rows of uniform width.
func (f *Font) Validate() error {
	if len(f.Glyphs) == 0 {
		return ErrNoGlyphs
	}
	for _, r := range f.Runes() {
		g := f.Glyphs[r]
		if g.Height() != f.Height {
			return &GlyphHeightError{Rune: r, Height: g.Height(), Want: f.Height}
		}
		want := g.Width()
		for y, row := range g.Rows {
			if w := utf8.RuneCountInString(row); w != want {
				return &RaggedGlyphError{Rune: r, Row: y, Width: w, Want: want}
			}
		}
	}
	return nil
}

// Runes returns the font's runes in ascending order.
func (f *Font) Runes() []rune {
	chs := make([]rune, 0, len(f.Glyphs))
	for ch := range f.Glyphs {
		chs = append(chs, ch)
	}
	sort.Slice(chs, func(i, j int) bool { return chs[i] < chs[j] })
	return chs
}

// Rows returns a copy of every glyph's rows, keyed by rune.
func (f *Font) Rows() map[rune][]string {
	out := make(map[rune][]string, len(f.Glyphs))
	for r, g := range f.Glyphs {
		out[r] = append([]string(nil), g.Rows...)
	}
	return out
}
