// Package codec reads and writes glyph tables in every supported
// encoding. JSON and YAML tables are an object mapping each character to
// its list of rows:
//
//	{"A": [" ### ", "#   #", ...], ...}
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/pbnjay/pixcoords/internal/bitfont"
	"github.com/pbnjay/pixcoords/internal/bitfont/text"
)

type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// ErrUnknownFormat is returned for file names and format names that map to
// no encoding.
var ErrUnknownFormat = errors.New("codec: unknown table format")

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name ("text", "txt", "json", "yaml", "yml").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

func Decode(r io.Reader, format Format) (*bitfont.Font, error) {
	var table map[string][]string
	switch format {
	case FormatText:
		return text.Decode(r)
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&table); err != nil {
			return nil, fmt.Errorf("codec: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&table); err != nil {
			return nil, fmt.Errorf("codec: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}

	rows := make(map[rune][]string, len(table))
	for key, glyph := range table {
		r, n := utf8.DecodeRuneInString(key)
		if n == 0 || n != len(key) {
			return nil, fmt.Errorf("codec: table key %q is not a single character", key)
		}
		rows[r] = glyph
	}
	return bitfont.New(rows)
}

func Encode(w io.Writer, f *bitfont.Font, format Format) error {
	switch format {
	case FormatText:
		return text.Encode(w, f)
	case FormatJSON:
		// encoding/json sorts map keys, so the output is stable.
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(keyed(f))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlTable(f)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
}

func keyed(f *bitfont.Font) map[string][]string {
	out := make(map[string][]string, len(f.Glyphs))
	for r, g := range f.Glyphs {
		out[string(r)] = g.Rows
	}
	return out
}

// yamlTable builds a mapping node in rune order with every row quoted, so
// leading and trailing blanks survive.
func yamlTable(f *bitfont.Font) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range f.Runes() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(r), Style: yaml.DoubleQuotedStyle}
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, row := range f.Glyphs[r].Rows {
			seq.Content = append(seq.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: row,
				Style: yaml.DoubleQuotedStyle,
			})
		}
		root.Content = append(root.Content, key, seq)
	}
	return root
}
