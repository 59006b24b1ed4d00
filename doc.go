// Package pixcoords compiles text into sparse pixel coordinates using a
// fixed-height bitmap font.
//
// Each character is looked up in a glyph table and every lit cell of its
// bitmap becomes a [Coordinate]. [Table.Layout] places glyphs left to right,
// advancing by each glyph's own width plus a fixed gap, so the result can be
// drawn point by point:
//
//	coords, err := pixcoords.LayoutString("Hello")
//	if err != nil {
//	    var nf *pixcoords.GlyphNotFoundError
//	    if errors.As(err, &nf) {
//	        // nf.Char has no glyph
//	    }
//	}
//
// Layout and Resolve are strict: a character missing from the table is an
// error. [Table.Preview] is the lenient text renderer that substitutes a
// blank block instead.
//
// Tables are immutable once built and safe for concurrent use. The embedded
// default table is available through [Default]; others are loaded with
// [LoadTable], [OpenTable] or [NewTable].
package pixcoords
