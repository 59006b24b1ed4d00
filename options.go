package pixcoords

const (
	// DefaultGap is the number of blank columns between two glyphs.
	DefaultGap = 2

	// DefaultBlankWidth is the width of the block Preview draws for a
	// character missing from the table.
	DefaultBlankWidth = 10
)

// Option configures a Table.
type Option func(*tableConfig)

type tableConfig struct {
	gap        int
	blankWidth int
}

func defaultTableConfig() tableConfig {
	return tableConfig{
		gap:        DefaultGap,
		blankWidth: DefaultBlankWidth,
	}
}

func (c tableConfig) validate() error {
	if c.gap < 0 {
		return ErrNegativeGap
	}
	if c.blankWidth < 0 {
		return ErrNegativeBlankWidth
	}
	return nil
}

// WithGap sets the inter-character gap added to every glyph's advance.
func WithGap(n int) Option {
	return func(c *tableConfig) {
		c.gap = n
	}
}

// WithBlankWidth sets the width Preview uses for unknown characters.
func WithBlankWidth(n int) Option {
	return func(c *tableConfig) {
		c.blankWidth = n
	}
}
