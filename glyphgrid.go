package vid2ascii

import "strings"

// GlyphGrid is the pipeline's output: Height rows of exactly Width
// glyphs drawn from the active palette. Ownership transfers to the
// caller on return; the pipeline keeps no reference across frames.
type GlyphGrid struct {
	Width  int
	Height int
	Rows   [][]rune
}

// emptyGrid is the defined result for every degenerate input: zero
// dimensions and no rows, never nil-row surprises partway through.
func emptyGrid() GlyphGrid {
	return GlyphGrid{}
}

// Empty reports whether the grid holds no glyphs.
func (g GlyphGrid) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// String renders the grid as newline-delimited rows. Each row is
// terminated by a newline, including the last one; consumers that want
// no trailing separator can trim it.
func (g GlyphGrid) String() string {
	var b strings.Builder
	b.Grow(g.Height * (g.Width + 1))
	for _, row := range g.Rows {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
