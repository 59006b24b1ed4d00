package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pbnjay/pixcoords/internal/bitfont/codec"
)

func TestConvertTextToYAML(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "font.txt")
	document := "A  [ # ]\nA  [# #]\nB  [##]\nB  [##]\n"
	if err := os.WriteFile(in, []byte(document), 0o644); err != nil {
		t.Fatal(err)
	}

	font, err := source{tableName: in}.decode()
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "font.yaml")
	if err := write(font, out); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := codec.Decode(f, codec.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Glyphs) != 2 || got.Glyphs['A'].Rows[1] != "# #" {
		t.Errorf("unexpected glyphs %v", got.Glyphs)
	}
}

func TestParseMarker(t *testing.T) {
	for _, s := range []string{"", " ", "XY", "\xff"} {
		if _, err := parseMarker(s); err == nil {
			t.Errorf("expected an error for marker %q", s)
		}
	}
	for s, want := range map[string]rune{"X": 'X', "#": '#', "█": '█'} {
		got, err := parseMarker(s)
		if err != nil {
			t.Fatalf("marker %q: %v", s, err)
		}
		if got != want {
			t.Errorf("marker %q: expected %q got %q", s, want, got)
		}
	}
}

func TestDecodeNoInput(t *testing.T) {
	if _, err := (source{}).decode(); err == nil {
		t.Error("expected an error without an input file")
	}
}

func TestWriteUnknownExtension(t *testing.T) {
	font, err := source{tableName: "../../font.txt"}.decode()
	if err != nil {
		t.Fatal(err)
	}
	if err := write(font, filepath.Join(t.TempDir(), "font.png")); err == nil {
		t.Error("expected an error for a .png output")
	}
}
