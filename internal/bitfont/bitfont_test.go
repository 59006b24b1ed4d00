package bitfont

import (
	"errors"
	"testing"
)

func TestNewSizes(t *testing.T) {
	font, err := New(map[rune][]string{
		'A': {"X", " "},
		'B': {"  XXX", "XX   "},
	})
	if err != nil {
		t.Fatal(err)
	}

	if font.Width != 5 {
		t.Error("unexpected font width", font.Width)
	}

	if font.Height != 2 {
		t.Error("unexpected font height", font.Height)
	}

	if w := font.Glyphs['A'].Width(); w != 1 {
		t.Error("unexpected glyph width", w)
	}
}

func TestNewCopiesRows(t *testing.T) {
	rows := []string{"#", " "}
	font, err := New(map[rune][]string{'A': rows})
	if err != nil {
		t.Fatal(err)
	}
	rows[0] = "X"
	if font.Glyphs['A'].Rows[0] != "#" {
		t.Error("font shares rows with its input")
	}
}

func TestNewMultibyteMarkers(t *testing.T) {
	font, err := New(map[rune][]string{'A': {"█ █", " █ "}})
	if err != nil {
		t.Fatal(err)
	}
	if font.Width != 3 {
		t.Error("unexpected font width", font.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		rows map[rune][]string
		err  any
	}{
		{"ragged", map[rune][]string{'A': {"XX", "X"}}, new(*RaggedGlyphError)},
		{"short", map[rune][]string{'A': {"X", "X"}, 'B': {"X"}}, new(*GlyphHeightError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.As(err, tt.err) {
				t.Errorf("unexpected error type %T: %v", err, err)
			}
		})
	}

	if _, err := New(nil); !errors.Is(err, ErrNoGlyphs) {
		t.Error("expected ErrNoGlyphs, got", err)
	}
}

func TestNewAnyMarker(t *testing.T) {
	// every non-blank rune is a marker, brackets included
	font, err := New(map[rune][]string{'A': {"]#", "[]"}})
	if err != nil {
		t.Fatal(err)
	}
	if font.Glyphs['A'].Rows[0] != "]#" {
		t.Error("unexpected row", font.Glyphs['A'].Rows[0])
	}
}

func TestRunesSorted(t *testing.T) {
	font, err := New(map[rune][]string{'C': {"X"}, 'A': {"X"}, 'B': {"X"}})
	if err != nil {
		t.Fatal(err)
	}
	got := string(font.Runes())
	if got != "ABC" {
		t.Errorf("expected ABC got %q", got)
	}
}
