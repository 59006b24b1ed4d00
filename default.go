package pixcoords

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed font.txt
var defaultFontData []byte

var defaultTable = sync.OnceValue(func() *Table {
	t, err := LoadTable(bytes.NewReader(defaultFontData), FormatText)
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the embedded 6-row table: A-Z, 0-9, space and . , ! - : '
// It is loaded on first use and shared.
func Default() *Table {
	return defaultTable()
}

// ResolveGlyph resolves r against the default table.
func ResolveGlyph(r rune) ([]Coordinate, error) {
	return Default().Resolve(r)
}

// LayoutString lays s out against the default table.
func LayoutString(s string) ([]Coordinate, error) {
	return Default().Layout(s)
}

// PreviewString renders s with the default table, substituting blanks for
// unknown characters.
func PreviewString(s string) []string {
	return Default().Preview(s)
}
