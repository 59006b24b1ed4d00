package pixcoords

import "github.com/pbnjay/pixcoords/internal/bitfont"

// compile scans rows top to bottom and cells left to right, emitting a
// coordinate for every non-blank cell.
func compile(rows []string) []Coordinate {
	var coords []Coordinate
	for y, row := range rows {
		x := 0
		for _, cell := range row {
			if cell != bitfont.Blank {
				coords = append(coords, Coordinate{X: x, Y: y, Character: string(cell)})
			}
			x++
		}
	}
	return coords
}

// Resolve returns the lit pixels of r's glyph in the glyph's own frame,
// origin at its top-left cell. Lower- and upper-case letters resolve to the
// same glyph. A missing glyph is a *GlyphNotFoundError carrying r.
func (t *Table) Resolve(r rune) ([]Coordinate, error) {
	g, err := t.fold(r)
	if err != nil {
		return nil, err
	}
	return append(make([]Coordinate, 0, len(g.coords)), g.coords...), nil
}

// Advance is the horizontal distance from r's origin to the next glyph's.
func (t *Table) Advance(r rune) (int, error) {
	g, err := t.fold(r)
	if err != nil {
		return 0, err
	}
	return g.width + t.gap, nil
}

// Width is the cell width of r's glyph.
func (t *Table) Width(r rune) (int, error) {
	g, err := t.fold(r)
	if err != nil {
		return 0, err
	}
	return g.width, nil
}

