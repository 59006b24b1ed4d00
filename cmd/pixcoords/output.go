package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/pbnjay/pixcoords"
	"github.com/pbnjay/pixcoords/face"
	"github.com/pbnjay/pixcoords/internal/msgkey"
)

// message is what a caller would store: the key derived from the input,
// the input and its coordinates.
type message struct {
	Key         string                 `json:"key" yaml:"key"`
	Input       string                 `json:"input" yaml:"input"`
	Coordinates []pixcoords.Coordinate `json:"coordinates" yaml:"coordinates"`
}

func writeCoords(w io.Writer, table *pixcoords.Table, opts options) error {
	coords, err := table.Layout(opts.message)
	if err != nil {
		return err
	}
	msg := message{
		Key:         msgkey.Derive(opts.message),
		Input:       opts.message,
		Coordinates: coords,
	}
	slog.Debug("laid out message", "key", msg.Key, "pixels", len(coords))

	switch opts.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(msg)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(msg); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", opts.format)
}

func writePreview(w io.Writer, table *pixcoords.Table, opts options) error {
	rows := table.Preview(opts.message)

	width := 0
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = tw
		}
	}
	truncated := false
	for _, row := range rows {
		if width > 0 && ansi.StringWidth(row) > width {
			row = ansi.Truncate(row, width, "")
			truncated = true
		}
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	if truncated {
		slog.Warn("preview is wider than the terminal", "columns", width)
	}
	return nil
}

func writePNG(table *pixcoords.Table, opts options) error {
	// the face looks runes up one at a time, so fold the whole message first
	// or multi-rune upper-case forms (ß -> SS) would be skipped silently
	msg := table.Fold(opts.message)
	width, err := table.Measure(msg)
	if err != nil {
		return err
	}

	// one blank cell of margin on each side
	scale := opts.scale
	if scale < 1 {
		scale = 1
	}
	bounds := image.Rect(0, 0, (width+2)*scale, (table.Height()+2)*scale)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.White, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face.New(table, scale),
		Dot:  fixed.P(scale, (table.Height()+1)*scale),
	}
	d.DrawString(msg)

	f, err := os.Create(opts.outName)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	slog.Info("wrote image", "path", opts.outName, "width", bounds.Dx(), "height", bounds.Dy())
	return f.Close()
}

func writeKey(w io.Writer, opts options) error {
	_, err := fmt.Fprintln(w, msgkey.Derive(opts.message))
	return err
}
