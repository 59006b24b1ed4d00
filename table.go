package pixcoords

import (
	"fmt"
	"io"
	"os"

	"github.com/pbnjay/pixcoords/internal/bitfont"
	"github.com/pbnjay/pixcoords/internal/bitfont/codec"
)

// Format selects a glyph table encoding.
type Format = codec.Format

const (
	// FormatText is the bracketed row format, one line per glyph row:
	//
	//	A  [ ### ]
	FormatText = codec.FormatText
	// FormatJSON is an object mapping each character to its rows.
	FormatJSON = codec.FormatJSON
	// FormatYAML is the YAML form of FormatJSON.
	FormatYAML = codec.FormatYAML
)

// Coordinate is one lit pixel. Character is the marker the glyph table
// uses for that cell.
type Coordinate struct {
	X         int    `json:"x" yaml:"x"`
	Y         int    `json:"y" yaml:"y"`
	Character string `json:"character" yaml:"character"`
}

// glyph is a table entry with its coordinates compiled in the glyph's own
// frame.
type glyph struct {
	rows   []string
	width  int
	coords []Coordinate
}

// Table is an immutable glyph table. Keys are looked up after upper-case
// folding, so tables should define upper-case characters.
type Table struct {
	glyphs     map[rune]glyph
	runes      []rune
	height     int
	gap        int
	blankWidth int
}

func newTable(f *bitfont.Font, opts []Option) (*Table, error) {
	cfg := defaultTableConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	t := &Table{
		glyphs:     make(map[rune]glyph, len(f.Glyphs)),
		runes:      f.Runes(),
		height:     f.Height,
		gap:        cfg.gap,
		blankWidth: cfg.blankWidth,
	}
	for r, g := range f.Glyphs {
		t.glyphs[r] = glyph{
			rows:   g.Rows,
			width:  g.Width(),
			coords: compile(g.Rows),
		}
	}

	Logger().Debug("pixcoords: table loaded",
		"glyphs", len(t.glyphs), "height", t.height, "width", f.Width, "gap", t.gap)
	return t, nil
}

// NewTable builds a table from rows keyed by character. Every glyph must
// have the same number of rows and every row of a glyph the same width.
func NewTable(rows map[rune][]string, opts ...Option) (*Table, error) {
	f, err := bitfont.New(rows)
	if err != nil {
		return nil, fmt.Errorf("pixcoords: %w", err)
	}
	return newTable(f, opts)
}

// LoadTable decodes a table from r.
func LoadTable(r io.Reader, format Format, opts ...Option) (*Table, error) {
	f, err := codec.Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("pixcoords: load %s table: %w", format, err)
	}
	return newTable(f, opts)
}

// OpenTable loads a table file, choosing the format from its extension
// (.txt, .json, .yaml or .yml).
func OpenTable(path string, opts ...Option) (*Table, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("pixcoords: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pixcoords: %w", err)
	}
	defer f.Close()
	return LoadTable(f, format, opts...)
}

// With returns a copy of t reconfigured by opts. Glyph data is shared,
// which is safe because neither table can modify it.
func (t *Table) With(opts ...Option) (*Table, error) {
	cfg := tableConfig{gap: t.gap, blankWidth: t.blankWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	nt := *t
	nt.gap = cfg.gap
	nt.blankWidth = cfg.blankWidth
	return &nt, nil
}

// Height is the shared row count of every glyph.
func (t *Table) Height() int { return t.height }

// Gap is the blank column count between glyphs.
func (t *Table) Gap() int { return t.gap }

// Len is the number of glyphs.
func (t *Table) Len() int { return len(t.glyphs) }

// Runes returns the defined characters in ascending order.
func (t *Table) Runes() []rune {
	return append([]rune(nil), t.runes...)
}

// Glyph returns a copy of the rows for r after case folding.
func (t *Table) Glyph(r rune) ([]string, error) {
	g, err := t.fold(r)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), g.rows...), nil
}

// Encode writes the table in the given format.
func (t *Table) Encode(w io.Writer, format Format) error {
	rows := make(map[rune][]string, len(t.glyphs))
	for r, g := range t.glyphs {
		rows[r] = g.rows
	}
	f, err := bitfont.New(rows)
	if err != nil {
		return err
	}
	return codec.Encode(w, f, format)
}
