// fontgen is a commandline tool for converting glyph tables between the
// formats pixcoords reads. A table can also be extracted from an image of a
// pixel font drawn with a solid background, single-color glyph pixels (no
// anti-aliasing) and an empty pixel column between characters:
//
//	./fontgen -img mypixelfont.png -a ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 -o myfont.json
//
// Without -o the table is dumped to stdout in the text format, one line per
// glyph row, so it can be checked by eye:
//
//	A  [ ### ]
//	A  [#   #]
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"unicode/utf8"

	// used by the image decoder
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/pbnjay/pixcoords/internal/bitfont"
	"github.com/pbnjay/pixcoords/internal/bitfont/codec"
	bimage "github.com/pbnjay/pixcoords/internal/bitfont/image"
)

var (
	imageName = flag.String("img", "", "image file to extract a glyph table from")
	startY    = flag.Int("y", 0, "starting Y position")
	height    = flag.Int("h", 0, "chop height")
	startX    = flag.Int("x", 0, "starting X position")
	width     = flag.Int("w", 0, "chop width")
	alphabet  = flag.String("a", "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", "alphabet to extract")
	marker    = flag.String("marker", "X", "lit cell marker for extracted glyphs")

	tableName = flag.String("t", "", "glyph table file to convert (.txt, .json, .yaml)")
	outName   = flag.String("o", "", "output table file, format chosen by extension")
)

// parseMarker returns the single rune of s. A blank marker could never be
// told apart from an unlit cell.
func parseMarker(s string) (rune, error) {
	m, n := utf8.DecodeRuneInString(s)
	switch {
	case n == 0:
		return 0, fmt.Errorf("-marker must not be empty")
	case m == utf8.RuneError:
		return 0, fmt.Errorf("-marker %q is not valid UTF-8", s)
	case n != len(s):
		return 0, fmt.Errorf("-marker %q must be a single character", s)
	case m == bitfont.Blank:
		return 0, fmt.Errorf("-marker must not be blank")
	}
	return m, nil
}

type source struct {
	imageName string
	tableName string
	alphabet  string
	options   bimage.Options
}

func (s source) decode() (*bitfont.Font, error) {
	var filename string
	switch {
	case s.imageName != "":
		filename = s.imageName
	case s.tableName != "":
		filename = s.tableName
	default:
		return nil, fmt.Errorf("-img or -t should be provided")
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	if s.imageName != "" {
		return bimage.Decode(f, s.alphabet, &s.options)
	}
	format, err := codec.FormatFromPath(filename)
	if err != nil {
		return nil, err
	}
	return codec.Decode(f, format)
}

func write(font *bitfont.Font, name string) error {
	if name == "" {
		return codec.Encode(os.Stdout, font, codec.FormatText)
	}
	format, err := codec.FormatFromPath(name)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := codec.Encode(f, font, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	flag.Parse()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	m, err := parseMarker(*marker)
	if err != nil {
		slog.Error("invalid flag", "error", err)
		flag.Usage()
		os.Exit(2)
	}
	src := source{
		imageName: *imageName,
		tableName: *tableName,
		alphabet:  *alphabet,
		options: bimage.Options{
			Offset: image.Point{*startX, *startY},
			Size:   image.Point{*width, *height},
			Marker: m,
		},
	}

	font, err := src.decode()
	if err != nil {
		slog.Error("error reading glyph table", "error", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := write(font, *outName); err != nil {
		slog.Error("error writing glyph table", "path", *outName, "error", err)
		os.Exit(1)
	}
	if *outName != "" {
		slog.Info("created glyph table", "path", *outName, "glyphs", len(font.Glyphs), "width", font.Width, "height", font.Height)
	}
}
