package pixcoords

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pixcoords package.
var (
	// ErrNegativeGap is returned when a table is configured with a gap below zero.
	ErrNegativeGap = errors.New("pixcoords: gap must not be negative")

	// ErrNegativeBlankWidth is returned when the preview blank width is below zero.
	ErrNegativeBlankWidth = errors.New("pixcoords: blank width must not be negative")
)

// GlyphNotFoundError is returned when a character, after case folding, has
// no glyph in the table.
type GlyphNotFoundError struct {
	Char rune
}

func (e *GlyphNotFoundError) Error() string {
	return fmt.Sprintf("pixcoords: no glyph for %q", e.Char)
}
