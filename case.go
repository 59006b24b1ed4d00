package pixcoords

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upper folds s to upper case. A Caser keeps state, so each call gets its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Fold upper-cases s the way Layout, Measure and Preview do before looking
// glyphs up. Drawing Fold(s) through a face draws exactly what Layout lays out.
func (t *Table) Fold(s string) string {
	return upper(s)
}

// fold looks r up after upper-casing it. Characters whose upper-case form is
// more than one rune (ß -> SS) have no glyph.
func (t *Table) fold(r rune) (glyph, error) {
	s := upper(string(r))
	u, n := utf8.DecodeRuneInString(s)
	if n != len(s) {
		return glyph{}, &GlyphNotFoundError{Char: r}
	}
	g, ok := t.glyphs[u]
	if !ok {
		return glyph{}, &GlyphNotFoundError{Char: r}
	}
	return g, nil
}
