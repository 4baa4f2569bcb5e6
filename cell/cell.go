// Package cell provides the colored-character model shared by chart
// rendering and terminal output: a Cell pairs one display rune with a
// foreground/background Style.
package cell

import "github.com/rivo/uniseg"

// Cell is a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Width is the display width of the rune.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// Empty returns a blank cell with the default style.
func Empty() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// New creates a cell with the given rune and the default style.
func New(r rune) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: DefaultStyle()}
}

// NewStyled creates a cell with the given rune and style.
func NewStyled(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// WithStyle returns a copy with the style replaced.
func (c Cell) WithStyle(style Style) Cell {
	c.Style = style
	return c
}

// Equals reports whether two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune &&
		c.Width == other.Width &&
		c.Style.Equals(other.Style)
}

// RuneWidth returns the display width of r in terminal columns.
func RuneWidth(r rune) int {
	if r < ' ' || r == 0x7F {
		return 0
	}
	return uniseg.StringWidth(string(r))
}
