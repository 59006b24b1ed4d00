package pixcoords

import "strings"

// Preview renders s as Height() text rows for display. Unlike Layout it
// never fails: a character without a glyph becomes a blank block of the
// table's blank width. Every glyph, the last included, is followed by gap
// spaces.
func (t *Table) Preview(s string) []string {
	rows := make([]strings.Builder, t.height)
	spacer := strings.Repeat(" ", t.gap)
	blank := strings.Repeat(" ", t.blankWidth)
	for _, r := range upper(s) {
		g, ok := t.glyphs[r]
		for i := range rows {
			if ok {
				rows[i].WriteString(g.rows[i])
			} else {
				rows[i].WriteString(blank)
			}
			rows[i].WriteString(spacer)
		}
	}

	out := make([]string, t.height)
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}
