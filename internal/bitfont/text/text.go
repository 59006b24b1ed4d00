// Package text reads and writes glyph tables in the bracketed row format:
//
//	A  [ ### ]
//	A  [#   #]
//	...
//
// Each line is one glyph row: the rune, two spaces, and the row between
// square brackets. Rows of one glyph are consecutive.
package text

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pbnjay/pixcoords/internal/bitfont"
)

// SyntaxError reports a malformed line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("text: line %d: %s", e.Line, e.Msg)
}

// splitRow separates "A  [row]" into its rune and row.
func splitRow(line string) (rune, string, bool) {
	c, n := utf8.DecodeRuneInString(line)
	if c == utf8.RuneError || !strings.HasPrefix(line[n:], "  [") {
		return 0, "", false
	}
	pixoffs := n + 3
	ww := strings.LastIndexByte(line[pixoffs:], ']')
	if ww < 0 {
		return 0, "", false
	}
	return c, line[pixoffs : pixoffs+ww], true
}

func Decode(r io.Reader) (*bitfont.Font, error) {
	glyphs := make(map[rune][]string)
	lastCh := rune(-1)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		c, row, ok := splitRow(line)
		if !ok {
			return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("expected `C  [row]`, got %q", line)}
		}
		if c != lastCh {
			if _, seen := glyphs[c]; seen {
				return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("rows of glyph %q are not consecutive", c)}
			}
		}
		glyphs[c] = append(glyphs[c], row)
		lastCh = c
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return bitfont.New(glyphs)
}

// Encode writes the font in rune order, the same representation Decode reads.
func Encode(w io.Writer, f *bitfont.Font) error {
	bw := bufio.NewWriter(w)
	for _, ch := range f.Runes() {
		for _, row := range f.Glyphs[ch].Rows {
			if _, err := fmt.Fprintf(bw, "%c  [%s]\n", ch, row); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
