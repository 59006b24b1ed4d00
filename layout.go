package pixcoords

// Layout compiles s into one coordinate list. The input is upper-cased as a
// whole, then each glyph's coordinates are emitted in Resolve order, shifted
// right by the running offset. The offset advances by the glyph's own width
// plus the table gap, so glyphs never overlap.
//
// A character missing from the table stops layout with a
// *GlyphNotFoundError carrying the upper-cased character; there is no
// partial result. Empty input yields an empty, non-nil slice.
func (t *Table) Layout(s string) ([]Coordinate, error) {
	coords := []Coordinate{}
	xOffset := 0
	for _, r := range upper(s) {
		g, ok := t.glyphs[r]
		if !ok {
			return nil, &GlyphNotFoundError{Char: r}
		}
		for _, c := range g.coords {
			c.X += xOffset
			coords = append(coords, c)
		}
		xOffset += g.width + t.gap
	}
	return coords, nil
}

// Measure is the pixel width Layout spans for s: every advance except the
// last glyph's trailing gap. It fails the same way Layout does.
func (t *Table) Measure(s string) (int, error) {
	width := 0
	for _, r := range upper(s) {
		g, ok := t.glyphs[r]
		if !ok {
			return 0, &GlyphNotFoundError{Char: r}
		}
		width += g.width + t.gap
	}
	if width == 0 {
		return 0, nil
	}
	return width - t.gap, nil
}
