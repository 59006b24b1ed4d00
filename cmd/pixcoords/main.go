// pixcoords turns a message into the pixel coordinates of its bitmap
// rendering. Examples:
//
//	pixcoords -m "hello world"               # {key, input, coordinates} as JSON
//	pixcoords -mode preview hello world      # text preview
//	pixcoords -mode png -o hello.png hello   # raster image
//	pixcoords -mode key hello                # lookup key only
//
// Flag defaults can be set with PIXCOORDS_FONT, PIXCOORDS_GAP,
// PIXCOORDS_SCALE and PIXCOORDS_FORMAT, directly or through a .env file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pbnjay/pixcoords"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

type options struct {
	message  string
	mode     string
	fontPath string
	gap      int
	format   string
	outName  string
	scale    int
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer, cfg config) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pixcoords", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.message, "m", "", "message text (default: remaining arguments)")
	fs.StringVar(&opts.mode, "mode", "coords", "output: coords, preview, png or key")
	fs.StringVar(&opts.fontPath, "font", cfg.fontPath, "glyph table file (.txt, .json, .yaml); empty uses the built-in font")
	fs.IntVar(&opts.gap, "gap", cfg.gap, "blank columns between characters")
	fs.StringVar(&opts.format, "format", cfg.format, "coords encoding: json or yaml")
	fs.StringVar(&opts.outName, "o", "", "output file (required for png)")
	fs.IntVar(&opts.scale, "scale", cfg.scale, "png pixels per glyph cell")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return opts, errUsage
	}
	if opts.message == "" {
		opts.message = strings.Join(fs.Args(), " ")
	}
	if opts.mode == "png" && opts.outName == "" {
		fmt.Fprintln(stderr, "-o is required with -mode png")
		fs.Usage()
		return opts, errUsage
	}
	return opts, nil
}

func loadTable(opts options) (*pixcoords.Table, error) {
	if opts.fontPath == "" {
		return pixcoords.Default().With(pixcoords.WithGap(opts.gap))
	}
	return pixcoords.OpenTable(opts.fontPath, pixcoords.WithGap(opts.gap))
}

func run(args []string, stdout, stderr io.Writer) int {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	opts, err := parseFlags(args, stderr, loadConfig())
	if err != nil {
		return exitUsage
	}
	if opts.verbose {
		level.Set(slog.LevelDebug)
		pixcoords.SetLogger(logger)
	}

	table, err := loadTable(opts)
	if err != nil {
		slog.Error("load glyph table", "font", opts.fontPath, "error", err)
		return exitError
	}

	switch opts.mode {
	case "coords":
		err = writeCoords(stdout, table, opts)
	case "preview":
		err = writePreview(stdout, table, opts)
	case "png":
		err = writePNG(table, opts)
	case "key":
		err = writeKey(stdout, opts)
	default:
		slog.Error("unknown mode", "mode", opts.mode)
		return exitUsage
	}

	var nf *pixcoords.GlyphNotFoundError
	switch {
	case errors.As(err, &nf):
		slog.Error("message cannot be laid out", "char", string(nf.Char), "input", opts.message)
		return exitError
	case err != nil:
		slog.Error(opts.mode+" failed", "error", err)
		return exitError
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
